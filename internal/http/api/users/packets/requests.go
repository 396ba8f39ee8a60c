package packets

type CreateUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// Validate returns one message per violated rule, empty when the
// payload is acceptable.
func (r CreateUserRequest) Validate() []string {
	var errs []string
	if r.FirstName == "" {
		errs = append(errs, "A firstName is required")
	}
	if r.LastName == "" {
		errs = append(errs, "A lastName is required")
	}
	if r.EmailAddress == "" {
		errs = append(errs, "An email address is required")
	}
	if r.Password == "" {
		errs = append(errs, "A password is required")
	}
	return errs
}
