// User registration HTTP handler.
//
// Registration only reserves a unique username; there is no login, session,
// or authorization flow anywhere in the API.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipedeck/go-recipe-backend/internal/domain"
	"github.com/recipedeck/go-recipe-backend/internal/services"
)

// UserService defines account operations consumed by HTTP handlers.
type UserService interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, username, password string) (*domain.User, error)
}

// RegisterUserRequest is the JSON payload for account registration.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required" example:"marta"`
	Password string `json:"password" binding:"required" example:"hunter2"`
}

// RegisterUser godoc
// @ID          registerUser
// @Summary     Register an account
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterUserRequest  true  "Credentials"
//
// @Success     201  {object} domain.User
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     409  {object} handlers.ErrorResponse "Username taken"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /users [post]
func (h *Handlers) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username and password are required")
		return
	}

	u, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCredentials):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrUsernameTaken):
			fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, u)
}
