package dashboard

import "github.com/nfrund/portview/internal/domain"

// SaveUserRequest is the body of the save action. Only the id is checked for
// presence; the profile fields are taken verbatim.
type SaveUserRequest struct {
	ID        string `form:"id" validate:"required"`
	Firstname string `form:"firstname"`
	Lastname  string `form:"lastname"`
	Address   string `form:"address"`
	City      string `form:"city"`
	Email     string `form:"email"`
}

// Profile returns the submitted profile fields.
func (r SaveUserRequest) Profile() domain.Profile {
	return domain.Profile{
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		Address:   r.Address,
		City:      r.City,
		Email:     r.Email,
	}
}

// DeleteUserRequest is the body of the delete action. The form posts all its
// fields; only the id is read.
type DeleteUserRequest struct {
	ID string `form:"id" validate:"required"`
}
