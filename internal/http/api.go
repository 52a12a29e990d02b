package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"user-api/internal/domain"
	"user-api/internal/repository"
	"user-api/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users       service.UserService
	rootMessage string
	logger      *logrus.Logger
}

func NewHandler(users service.UserService, rootMessage string, logger *logrus.Logger) *Handler {
	return &Handler{
		users:       users,
		rootMessage: rootMessage,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.root)
	router.GET("/health", h.health)
	router.POST("/users/", h.createUser)
	router.PUT("/users/:id", h.updateUser)
}

type userCreateRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userUpdateRequest struct {
	Username string  `json:"username" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password *string `json:"password"`
}

// UserResponse is the read shape returned for every successful user
// operation. The stored password is never part of it.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validationDetail flattens a binding failure into per-field entries.
// Non-validator failures (malformed JSON, wrong types) are reported against
// the body as a whole.
func validationDetail(err error) []fieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: messageForTag(fe),
			})
		}
		return out
	}
	return []fieldError{{Field: "body", Message: err.Error()}}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "value is not a valid email address"
	default:
		return "value is invalid"
	}
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.rootMessage})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) createUser(c *gin.Context) {
	var req userCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": validationDetail(err)})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) updateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []fieldError{
			{Field: "id", Message: "value is not a valid integer"},
		}})
		return
	}

	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": validationDetail(err)})
		return
	}

	password := service.RetainPassword
	if req.Password != nil {
		password = *req.Password
	}

	user, err := h.users.Update(c.Request.Context(), id, req.Username, req.Email, password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) storageError(c *gin.Context, err error) {
	h.logger.WithField("request_id", RequestID(c)).Errorf("storage: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}
