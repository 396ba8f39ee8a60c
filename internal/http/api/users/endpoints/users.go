package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/coursedesk/coursedesk/internal/db"
	"github.com/coursedesk/coursedesk/internal/http/api"
	"github.com/coursedesk/coursedesk/internal/http/api/users/packets"
	"github.com/coursedesk/coursedesk/internal/http/middleware"
	"github.com/coursedesk/coursedesk/internal/model"
)

type UserController struct {
	store db.Store
}

func newUserController(store db.Store) *UserController {
	return &UserController{store: store}
}

// UserPublicModule mounts the open registration endpoint.
func UserPublicModule(store db.Store) api.Module {
	ctl := newUserController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/users", ctl.registerUser)
	})
}

// UserModule mounts the authenticated profile endpoint.
func UserModule(store db.Store) api.Module {
	ctl := newUserController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/users", ctl.getCurrentUser)
	})
}

// POST /users
func (a *UserController) registerUser(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if errs := request.Validate(); len(errs) > 0 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Errors: errs}
	}

	// hash at the write boundary; the plaintext is never stored or logged
	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	userID, err := a.store.CreateUser(request.FirstName, request.LastName, request.EmailAddress, hashed)
	if err != nil {
		if db.IsUniqueViolation(err) {
			log.Warn().Str("email", request.EmailAddress).Msg("registration email already exists")
			return nil, &api.APIError{Code: http.StatusBadRequest, Errors: []string{"The email you entered already exists"}}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create user"}
	}

	return api.Created{
		Location: "/users",
		Body: packets.UserResponse{
			ID:           userID,
			FirstName:    request.FirstName,
			LastName:     request.LastName,
			EmailAddress: request.EmailAddress,
		},
	}, nil
}

// GET /users
func (a *UserController) getCurrentUser(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return packets.NewUserResponse(user), nil
}
