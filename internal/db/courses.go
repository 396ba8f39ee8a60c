package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/coursedesk/coursedesk/internal/model"
)

// column list shared by the joined course reads; owner columns are
// aliased so sqlx fills the embedded Owner struct.
const courseWithOwnerColumns = `
	c.id, c.title, c.description, c.estimated_time, c.materials_needed,
	c.user_id, c.created_at, c.updated_at,
	u.id AS "owner.id",
	u.first_name AS "owner.first_name",
	u.last_name AS "owner.last_name",
	u.email_address AS "owner.email_address"
`

// returns every course joined with its owning user, in engine order.
func (s *pgStore) ListCourses() ([]model.CourseWithOwner, error) {
	var courses []model.CourseWithOwner
	err := s.db.Select(&courses, `
		SELECT `+courseWithOwnerColumns+`
		FROM courses c
		JOIN users u ON u.id = c.user_id;
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list courses")
		return nil, err
	}
	return courses, nil
}

// fetches one course with its owner. Returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetCourseByID(id int) (*model.CourseWithOwner, error) {
	var course model.CourseWithOwner
	err := s.db.Get(&course, `
		SELECT `+courseWithOwnerColumns+`
		FROM courses c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1;
		`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get course by id")
		return nil, err
	}
	return &course, nil
}

// inserts a new course, returns the new course ID.
func (s *pgStore) CreateCourse(title, description string, estimatedTime, materialsNeeded *string, userID int) (int, error) {
	query := `
	INSERT INTO courses (title, description, estimated_time, materials_needed, user_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	RETURNING id;
	`
	var newID int
	err := s.db.QueryRow(query, title, description, estimatedTime, materialsNeeded, userID).Scan(&newID)
	if err != nil {
		if !IsForeignKeyViolation(err) {
			log.Error().Err(err).Msg("failed to create course")
		}
		return 0, err
	}
	return newID, nil
}

// writes the full merged record; the caller is responsible for loading
// and merging first.
func (s *pgStore) UpdateCourse(id int, title, description string, estimatedTime, materialsNeeded *string, userID int) error {
	_, err := s.db.Exec(`
		UPDATE courses
		SET title = $2,
		description = $3,
		estimated_time = $4,
		materials_needed = $5,
		user_id = $6,
		updated_at = now()
		WHERE id = $1
		`, id, title, description, estimatedTime, materialsNeeded, userID)
	if err != nil && !IsForeignKeyViolation(err) {
		log.Error().Err(err).Msg("failed to update course")
	}
	return err
}

// removes a course. The bool reports whether a row existed.
func (s *pgStore) DeleteCourse(id int) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete course")
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
