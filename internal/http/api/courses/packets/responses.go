package packets

import "github.com/coursedesk/coursedesk/internal/model"

// OwnerResponse exposes the owning user's public fields only; the
// password hash never leaves the server.
type OwnerResponse struct {
	ID           int    `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type CourseResponse struct {
	ID              int           `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	EstimatedTime   *string       `json:"estimatedTime"`
	MaterialsNeeded *string       `json:"materialsNeeded"`
	UserID          int           `json:"userId"`
	User            OwnerResponse `json:"user"`
}

func NewCourseResponse(c model.CourseWithOwner) CourseResponse {
	return CourseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
		User: OwnerResponse{
			ID:           c.Owner.ID,
			FirstName:    c.Owner.FirstName,
			LastName:     c.Owner.LastName,
			EmailAddress: c.Owner.EmailAddress,
		},
	}
}
