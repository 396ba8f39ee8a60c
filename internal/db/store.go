// exposes a Store interface that is passed to API calls and middleware
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/coursedesk/coursedesk/internal/model"
)

type Store interface {
	// user functions
	CreateUser(firstName, lastName, email, hashedPassword string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)

	// course functions
	ListCourses() ([]model.CourseWithOwner, error)
	GetCourseByID(id int) (*model.CourseWithOwner, error)
	CreateCourse(title, description string, estimatedTime, materialsNeeded *string, userID int) (int, error)
	UpdateCourse(id int, title, description string, estimatedTime, materialsNeeded *string, userID int) error
	DeleteCourse(id int) (bool, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}
