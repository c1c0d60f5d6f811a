package inventory

import (
	"strings"

	"github.com/sensorfactory/nexus/internal/domain"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 2000
)

// CreateSensorInput holds the fields of a new catalog sensor.
type CreateSensorInput struct {
	Name        string
	Type        domain.SensorType
	Price       float64
	Stock       int
	Description string
}

// Validate validates the create input.
func (i CreateSensorInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateType(errs, i.Type)
	errs = validatePrice(errs, i.Price)
	errs = validateStock(errs, i.Stock)
	errs = validateDescription(errs, i.Description)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSensorInput holds a partial sensor update. Nil fields are left
// unchanged.
type UpdateSensorInput struct {
	ID          string
	Name        *string
	Type        *domain.SensorType
	Price       *float64
	Stock       *int
	Description *string
}

// Validate validates the update input.
func (i UpdateSensorInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Type != nil {
		errs = validateType(errs, *i.Type)
	}
	if i.Price != nil {
		errs = validatePrice(errs, *i.Price)
	}
	if i.Stock != nil {
		errs = validateStock(errs, *i.Stock)
	}
	if i.Description != nil {
		errs = validateDescription(errs, *i.Description)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	switch {
	case strings.TrimSpace(name) == "":
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	case len(name) > maxNameLength:
		return append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}

func validateType(errs []domain.FieldError, t domain.SensorType) []domain.FieldError {
	if t == "" {
		return append(errs, domain.FieldError{Field: "type", Message: "required"})
	}
	if !t.IsValid() {
		return append(errs, domain.FieldError{Field: "type", Message: "unknown sensor type"})
	}
	return errs
}

func validatePrice(errs []domain.FieldError, price float64) []domain.FieldError {
	if price < 0 {
		return append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	return errs
}

func validateStock(errs []domain.FieldError, stock int) []domain.FieldError {
	if stock < 0 {
		return append(errs, domain.FieldError{Field: "stock", Message: "must not be negative"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, d string) []domain.FieldError {
	if len(d) > maxDescriptionLength {
		return append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	return errs
}
