package packets

type CreateCourseRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
	UserID          int     `json:"userId"`
}

// Validate returns one message per violated rule, empty when the
// payload is acceptable.
func (r CreateCourseRequest) Validate() []string {
	var errs []string
	if r.Title == "" {
		errs = append(errs, "A title is required")
	}
	if r.Description == "" {
		errs = append(errs, "A description is required")
	}
	if r.UserID == 0 {
		errs = append(errs, "A userId is required")
	}
	return errs
}

// UpdateCourseRequest carries a partial update; nil fields keep the
// stored values.
type UpdateCourseRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
	UserID          *int    `json:"userId"`
}
