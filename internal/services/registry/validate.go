package registry

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mcoot/recruitment-api/internal/model"
)

// candidateFields mirrors the client-supplied fields that carry presence rules.
// Field names in errors use the JSON names clients send.
type candidateFields struct {
	FirstName string `json:"firstName" validate:"required,notblank"`
	LastName  string `json:"lastName" validate:"required,notblank"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// validateCandidate checks required fields and reports the first offending one
func (s *Service) validateCandidate(c *model.Candidate) error {
	err := s.validate.Struct(candidateFields{
		FirstName: c.FirstName,
		LastName:  c.LastName,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	ve := &model.ValidationError{Field: fe.Field()}
	if fe.Tag() == "notblank" {
		ve.Reason = "must not be blank"
	}
	return ve
}
