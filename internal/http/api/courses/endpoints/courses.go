package endpoints

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/coursedesk/coursedesk/internal/db"
	"github.com/coursedesk/coursedesk/internal/http/api"
	"github.com/coursedesk/coursedesk/internal/http/api/courses/packets"
	"github.com/coursedesk/coursedesk/internal/model"
)

type CourseController struct {
	store db.Store
}

func newCourseController(store db.Store) *CourseController {
	return &CourseController{store: store}
}

// CoursePublicModule mounts the unauthenticated course reads.
func CoursePublicModule(store db.Store) api.Module {
	ctl := newCourseController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/courses", ctl.listCourses)
		c.PUBLIC_GET("/courses/:id", ctl.getCourse)
	})
}

// CourseModule mounts the mutating course endpoints (Basic auth required).
// Authentication gates these routes, but ownership does not: any
// authenticated user may update or delete any course.
func CourseModule(store db.Store) api.Module {
	ctl := newCourseController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/courses", ctl.createCourse)
		c.PUT("/courses/:id", ctl.updateCourse)
		c.DELETE("/courses/:id", ctl.deleteCourse)
	})
}

// GET /courses
func (t *CourseController) listCourses(ctx *gin.Context) (any, *api.APIError) {
	all, err := t.store.ListCourses()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list courses"}
	}

	out := make([]packets.CourseResponse, 0, len(all))
	for _, c := range all {
		out = append(out, packets.NewCourseResponse(c))
	}

	return out, nil
}

// GET /courses/:id
func (t *CourseController) getCourse(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := courseID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	course, err := t.store.GetCourseByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "Course not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not get course"}
	}

	return packets.NewCourseResponse(*course), nil
}

// POST /courses
func (t *CourseController) createCourse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if errs := request.Validate(); len(errs) > 0 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Errors: errs}
	}

	id, err := t.store.CreateCourse(request.Title, request.Description, request.EstimatedTime, request.MaterialsNeeded, request.UserID)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Errors: []string{"A valid userId is required"}}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create course"}
	}

	log.Info().Int("course_id", id).Int("user_id", user.ID).Msg("course created")
	return api.Created{Location: fmt.Sprintf("/courses/%d", id)}, nil
}

// PUT /courses/:id
func (t *CourseController) updateCourse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := courseID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	existing, err := t.store.GetCourseByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "Course not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not get course"}
	}

	var request packets.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	// partial merge: absent fields keep their stored values
	merged := packets.CreateCourseRequest{
		Title:           existing.Title,
		Description:     existing.Description,
		EstimatedTime:   existing.EstimatedTime,
		MaterialsNeeded: existing.MaterialsNeeded,
		UserID:          existing.UserID,
	}
	if request.Title != nil {
		merged.Title = *request.Title
	}
	if request.Description != nil {
		merged.Description = *request.Description
	}
	if request.EstimatedTime != nil {
		merged.EstimatedTime = request.EstimatedTime
	}
	if request.MaterialsNeeded != nil {
		merged.MaterialsNeeded = request.MaterialsNeeded
	}
	if request.UserID != nil {
		merged.UserID = *request.UserID
	}

	if errs := merged.Validate(); len(errs) > 0 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Errors: errs}
	}

	if err := t.store.UpdateCourse(id, merged.Title, merged.Description, merged.EstimatedTime, merged.MaterialsNeeded, merged.UserID); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Errors: []string{"A valid userId is required"}}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update course"}
	}

	log.Info().Int("course_id", id).Int("user_id", user.ID).Msg("course updated")
	return api.NoContent{}, nil
}

// DELETE /courses/:id
func (t *CourseController) deleteCourse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := courseID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	found, err := t.store.DeleteCourse(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete course"}
	}
	if !found {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "Course not found"}
	}

	log.Info().Int("course_id", id).Int("user_id", user.ID).Msg("course deleted")
	return api.NoContent{}, nil
}

func courseID(ctx *gin.Context) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	return id, nil
}
