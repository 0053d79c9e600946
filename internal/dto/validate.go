package dto

import (
	"github.com/go-playground/validator/v10"

	"ufcdash/internal/apierror"
)

var validate = validator.New()

// check runs struct-tag validation and converts violations into the
// per-field map the UI renders one message per violation from.
func check(op string, req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	fields := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return apierror.Validation(op, fields)
}
