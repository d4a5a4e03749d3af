package customer

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrMissingNationalID = errors.New("national ID number is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// NationalID is the cedula/passport number, the secondary natural key used
// when a returning customer books with a new email address.
type NationalID struct {
	value string
}

func NewNationalID(s string) (NationalID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NationalID{}, ErrMissingNationalID
	}
	return NationalID{value: s}, nil
}

func (n NationalID) Value() string {
	return n.value
}
