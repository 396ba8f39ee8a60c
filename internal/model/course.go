package model

import "time"

// Course belongs to exactly one User via UserID; the FK is never null.
type Course struct {
	ID              int       `db:"id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	EstimatedTime   *string   `db:"estimated_time"`
	MaterialsNeeded *string   `db:"materials_needed"`
	UserID          int       `db:"user_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// CourseWithOwner is a course row joined with its owning user.
type CourseWithOwner struct {
	Course
	Owner User `db:"owner"`
}
