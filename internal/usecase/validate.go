package usecase

import (
	"github.com/starkspartacus/job-sub000/pkg/apperror"
	"github.com/starkspartacus/job-sub000/pkg/validation"
)

var validate = validation.New()

const invalidFieldsMessage = "Certains champs sont invalides"

// validateStruct runs the validator tags on v and returns a 400 with field messages.
func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		fields := validation.FieldErrors(err)
		if fields == nil {
			return apperror.BadRequest(err.Error())
		}
		return apperror.Validation(invalidFieldsMessage, fields)
	}
	return nil
}

func validateLocation(country, city, commune string) error {
	if fields := validation.LocationErrors(country, city, commune); fields != nil {
		return apperror.Validation(invalidFieldsMessage, fields)
	}
	return nil
}
