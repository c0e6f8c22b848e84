package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters, spaces and the punctuation found in names: . ' -
	nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

	// E164-like phone once separators are stripped: optional +, 8-15 digits
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

// New returns a validator that reports json field names and knows the custom tags.
func New() *validator.Validate {
	v := validator.New()
	Configure(v)
	return v
}

// Configure reports errors under json field names and adds the custom rules.
// It is also applied to gin's binding engine.
func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	RegisterValidators(v)
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
}

// ValidName rejects digits and symbols. Empty passes; combine with required.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

// ValidPhone accepts international numbers written with common separators.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(NormalizePhone(val))
}

// NormalizePhone strips separators so "+225 07 01-02-03-04" and "+2250701020304" compare equal.
func NormalizePhone(phone string) string {
	return phoneSeparators.Replace(strings.TrimSpace(phone))
}

// NoEmoji rejects emoji and other pictographic symbols.
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}
