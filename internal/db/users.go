package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/coursedesk/coursedesk/internal/model"
)

// inserts a new user, returns the new user ID. The password must
// already be hashed by the caller; plaintext never reaches this layer.
func (s *pgStore) CreateUser(firstName, lastName, email, hashedPassword string) (int, error) {
	query := `
	INSERT INTO users (first_name, last_name, email_address, password, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now(), now())
	RETURNING id;
	`
	var newID int
	err := s.db.QueryRow(query, firstName, lastName, email, hashedPassword).Scan(&newID)
	if err != nil {
		if !IsUniqueViolation(err) {
			log.Error().Err(err).Msg("failed to create user")
		}
		return 0, err
	}
	return newID, nil
}

// fetches a user by email. Returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, first_name, last_name, email_address, password, created_at, updated_at
	FROM users
	WHERE email_address = $1;
	`
	err := s.db.Get(&u, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by email")
		return nil, err
	}
	return &u, nil
}

// fetches a user by ID. Returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, first_name, last_name, email_address, password, created_at, updated_at
	FROM users
	WHERE id = $1;
	`
	err := s.db.Get(&u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by id")
		return nil, err
	}
	return &u, nil
}
