package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/http/middleware"
	"github.com/coursedesk/coursedesk/internal/model"
)

// APIError is the single error shape handlers return. Errors carries
// field-validation messages rendered as {"errors": [...]}; otherwise
// Message is rendered as {"message": "..."}.
type APIError struct {
	Code    int
	Message string
	Errors  []string
}

// Created tells the resolver to answer 201 with a Location header.
// A nil Body produces an empty response.
type Created struct {
	Location string
	Body     any
}

// NoContent tells the resolver to answer 204 with an empty body.
type NoContent struct{}

type HandlerFuncWithAuth func(ctx *gin.Context, user *model.User) (any, *APIError)
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpointWithAuth adapts an authenticated handler into a gin
// handler, forwarding any failure to the shared responder.
func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
			return
		}

		result, apiErr := h(ctx, user)
		if apiErr != nil {
			writeError(ctx, apiErr)
			return
		}

		writeResult(ctx, result)
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			writeError(ctx, apiErr)
			return
		}

		writeResult(ctx, result)
	}
}

func writeResult(ctx *gin.Context, result any) {
	switch r := result.(type) {
	case Created:
		if r.Location != "" {
			ctx.Header("Location", r.Location)
		}
		if r.Body != nil {
			ctx.JSON(http.StatusCreated, r.Body)
		} else {
			ctx.Status(http.StatusCreated)
		}
	case NoContent:
		ctx.Status(http.StatusNoContent)
	default:
		ctx.JSON(http.StatusOK, result)
	}
}

func writeError(ctx *gin.Context, apiErr *APIError) {
	if len(apiErr.Errors) > 0 {
		ctx.JSON(apiErr.Code, gin.H{"errors": apiErr.Errors})
		return
	}
	ctx.JSON(apiErr.Code, gin.H{"message": apiErr.Message})
}
