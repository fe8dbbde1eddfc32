package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.UserService
}

func NewUserHandler(service port.UserService, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Gender    string `json:"gender"`
}

type userResponse struct {
	ID        uint64    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Gender    string    `json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		Gender:    user.Gender,
		CreatedAt: user.CreatedAt,
	}
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	req := registerRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	user := &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Gender:    req.Gender,
	}

	newUser, err := uh.service.RegisterUser(ctx, user)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, newUserResponse(newUser), http.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	req := loginRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, struct {
		Token string `json:"token"`
	}{Token: token})
}

func (uh *UserHandler) ListUsers(ctx *gin.Context) {
	list, err := uh.service.ListUsers(ctx)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	result := make([]userResponse, 0, len(list))
	for _, u := range list {
		result = append(result, newUserResponse(u))
	}
	uh.handleSuccess(ctx, result)
}

func (uh *UserHandler) GetUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	payload := getAuthPayload(ctx)
	if payload.UserID != id && payload.Role != domain.RoleAdmin {
		uh.handleError(ctx, domain.ErrForbidden)
		return
	}

	user, err := uh.service.GetUser(ctx, id)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}
	uh.handleSuccess(ctx, newUserResponse(user))
}

type updateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Gender    string `json:"gender"`
}

func (uh *UserHandler) UpdateUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	payload := getAuthPayload(ctx)
	if payload.UserID != id && payload.Role != domain.RoleAdmin {
		uh.handleError(ctx, domain.ErrForbidden)
		return
	}

	req := updateUserRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	user := &domain.User{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Gender:    req.Gender,
	}

	updated, err := uh.service.UpdateUser(ctx, user)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}
	uh.handleSuccess(ctx, newUserResponse(updated))
}

func (uh *UserHandler) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	err = uh.service.DeleteUser(ctx, id)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}
	uh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
