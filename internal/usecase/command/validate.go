package command

import (
	"net/mail"
	"strings"

	"github.com/tair/storefront/pkg/apperr"
)

// MinPasswordLength is the shortest accepted plain text password
const MinPasswordLength = 8

type field struct {
	name  string
	value string
}

// requireFields fails on the first blank field
func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperr.Validationf("%s is required", f.name)
		}
	}
	return nil
}

// normalizeEmail trims and lowercases email and checks it is a bare address
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperr.Validationf("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apperr.Validationf("email %q is not a valid address", email)
	}
	return email, nil
}

func validatePassword(password string) error {
	if n := len([]rune(password)); n < MinPasswordLength {
		return apperr.Validationf("password must be at least %d characters long, got %d", MinPasswordLength, n)
	}
	return nil
}
