package packets

import "github.com/coursedesk/coursedesk/internal/model"

// UserResponse carries a user's public fields; the password hash is
// never echoed back.
type UserResponse struct {
	ID           int    `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}
