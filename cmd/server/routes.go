package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/db"
	"github.com/coursedesk/coursedesk/internal/http/api"
	courseapi "github.com/coursedesk/coursedesk/internal/http/api/courses/endpoints"
	userapi "github.com/coursedesk/coursedesk/internal/http/api/users/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, store db.Store) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
			"Location",
		},
		AllowCredentials: false,
	}))

	// open endpoints: course reads and registration
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/",
		Auth:   false,
	},
		courseapi.CoursePublicModule(store),
		userapi.UserPublicModule(store),
	)

	// endpoints behind Basic auth
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/",
		Auth:   true,
		Store:  store,
	},
		courseapi.CourseModule(store),
		userapi.UserModule(store),
	)
}
