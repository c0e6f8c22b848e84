package validation

import (
	"errors"

	"github.com/starkspartacus/job-sub000/pkg/location"
)

// LocationErrors reports the first location level that does not exist in the
// table, keyed by its json field. A valid location yields nil.
func LocationErrors(country, city, commune string) map[string]string {
	err := location.Validate(country, city, commune)
	if err == nil {
		return nil
	}
	field := "country"
	switch {
	case errors.Is(err, location.ErrUnknownCommune):
		field = "commune"
	case errors.Is(err, location.ErrUnknownCity):
		field = "city"
	case errors.Is(err, location.ErrMissingParent):
		if city == "" {
			field = "city"
		}
	}
	return map[string]string{field: Label(field) + " : valeur inconnue"}
}
