package client

import (
	"strings"

	"github.com/sensorfactory/nexus/internal/domain"
)

const maxFieldLength = 255

// CreateClientInput holds the fields of a new client.
type CreateClientInput struct {
	Name    string
	Contact string
	Email   string
	Phone   string
	Address string
}

// Validate validates the create input.
func (i CreateClientInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateEmail(errs, i.Email)
	errs = validateLength(errs, "contact", i.Contact)
	errs = validateLength(errs, "phone", i.Phone)
	errs = validateLength(errs, "address", i.Address)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateClientInput holds a partial client update. Nil fields are left
// unchanged.
type UpdateClientInput struct {
	ID      string
	Name    *string
	Contact *string
	Email   *string
	Phone   *string
	Address *string
}

// Validate validates the update input.
func (i UpdateClientInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Email != nil {
		errs = validateEmail(errs, *i.Email)
	}
	if i.Contact != nil {
		errs = validateLength(errs, "contact", *i.Contact)
	}
	if i.Phone != nil {
		errs = validateLength(errs, "phone", *i.Phone)
	}
	if i.Address != nil {
		errs = validateLength(errs, "address", *i.Address)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	if strings.TrimSpace(name) == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	return validateLength(errs, "name", name)
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	if email != "" && !strings.Contains(email, "@") {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return validateLength(errs, "email", email)
}

func validateLength(errs []domain.FieldError, field, v string) []domain.FieldError {
	if len(v) > maxFieldLength {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
