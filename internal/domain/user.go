package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// UserID identifies a user within the users collection.
//
// Source data is not consistent about the JSON type of ids, so a UserID decodes
// from either a JSON string or a JSON number. Both {"id": 7} and {"id": "7"}
// produce the UserID "7". Numbers are keyed by value: 1e2, 100.0 and 100 all
// decode to "100", and 4.50 decodes to "4.5". String ids are kept verbatim.
type UserID string

// String returns the id as a plain string.
func (id UserID) String() string { return string(id) }

// UnmarshalJSON implements json.Unmarshaler.
func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user id must be a string or a number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = UserID(strconv.FormatInt(i, 10))
		return nil
	}
	if f, err := n.Float64(); err == nil {
		*id = UserID(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
	*id = UserID(n.String())
	return nil
}

// Profile holds the editable fields of a user. None of them are validated:
// any string, including the empty one, is accepted.
type Profile struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Email     string `json:"email"`
}

// Holding is one entry of a portfolio. Symbol is expected to reference a
// Stock but nothing enforces it.
type Holding struct {
	Symbol string `json:"symbol" validate:"required"`
	Owned  int    `json:"owned"`
}

// User is a user record together with its portfolio.
type User struct {
	ID        UserID    `json:"id" validate:"required"`
	Profile   Profile   `json:"user"`
	Portfolio []Holding `json:"portfolio,omitempty" validate:"dive"`
}

// Label is the text shown for the user in the user list.
func (u User) Label() string {
	return u.Profile.Lastname + ", " + u.Profile.Firstname
}

// HasPortfolio reports whether the user owns at least one holding.
func (u User) HasPortfolio() bool {
	return len(u.Portfolio) > 0
}

// Clone returns a copy of the user that shares no memory with u.
func (u User) Clone() User {
	c := u
	if u.Portfolio != nil {
		c.Portfolio = make([]Holding, len(u.Portfolio))
		copy(c.Portfolio, u.Portfolio)
	}
	return c
}

// Validate runs the presence checks on the record.
func (u *User) Validate() error {
	if err := validatorInstance.Struct(u); err != nil {
		return fmt.Errorf("%w: user %q: %v", ErrInvalidRecord, u.ID, err)
	}
	return nil
}
