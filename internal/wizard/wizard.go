// Package wizard validates the three-step sign-up form.
package wizard

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/validation"
)

type Step int

const (
	StepAccount Step = iota + 1
	StepProfile
	StepConfirmation
)

const LastStep = StepConfirmation

func (s Step) Valid() bool {
	return s >= StepAccount && s <= LastStep
}

func (s Step) String() string {
	switch s {
	case StepAccount:
		return "account"
	case StepProfile:
		return "profile"
	case StepConfirmation:
		return "confirmation"
	}
	return "unknown"
}

// Form is the accumulated payload posted at the end.
type Form = domain.RegistrationRequest

// FieldErrors maps json field names to messages. Empty means the step is valid.
type FieldErrors map[string]string

var ErrUnknownStep = errors.New("unknown step")

type accountStep struct {
	Email           string `json:"email" validate:"required,email,max=255"`
	Phone           string `json:"phone" validate:"omitempty,valid_phone"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,oneof=candidate employer"`
}

type candidateStep struct {
	FirstName         string   `json:"first_name" validate:"required,min=2,max=50,valid_name"`
	LastName          string   `json:"last_name" validate:"required,min=2,max=50,valid_name"`
	Title             string   `json:"title" validate:"max=100,no_emoji"`
	ExperienceLevel   string   `json:"experience_level" validate:"required,oneof=debutant junior intermediaire senior expert"`
	Availability      string   `json:"availability" validate:"required,oneof=immediate one_month three_months negotiable"`
	Skills            []string `json:"skills" validate:"max=30,dive,min=1,max=50"`
	Languages         []string `json:"languages" validate:"max=10,dive,min=1,max=30"`
	SalaryExpectation *int64   `json:"salary_expectation" validate:"omitempty,min=0"`
	Country           string   `json:"country" validate:"required"`
	City              string   `json:"city" validate:"required"`
	Commune           string   `json:"commune"`
}

type employerStep struct {
	CompanyName string `json:"company_name" validate:"required,min=2,max=120,no_emoji"`
	CompanyType string `json:"company_type" validate:"required,oneof=hotel restaurant bar traiteur resort agence_evenementielle autre"`
	CompanySize string `json:"company_size" validate:"required,oneof=1-10 11-50 51-200 200+"`
	Address     string `json:"address" validate:"max=255"`
	Website     string `json:"website" validate:"omitempty,url"`
	Description string `json:"description" validate:"max=2000"`
	Country     string `json:"country" validate:"required"`
	City        string `json:"city" validate:"required"`
	Commune     string `json:"commune"`
}

type confirmationStep struct {
	AcceptTerms bool `json:"accept_terms" validate:"eq=true"`
}

var validate = validation.New()

// ValidateStep checks only the fields owned by step. The profile step reads
// the role chosen in the account step.
func ValidateStep(step Step, f *Form) (FieldErrors, error) {
	switch step {
	case StepAccount:
		return check(accountStep{
			Email:           strings.TrimSpace(f.Email),
			Phone:           f.Phone,
			Password:        f.Password,
			ConfirmPassword: f.ConfirmPassword,
			Role:            f.Role,
		}), nil
	case StepProfile:
		return validateProfile(f), nil
	case StepConfirmation:
		return check(confirmationStep{AcceptTerms: f.AcceptTerms}), nil
	}
	return nil, ErrUnknownStep
}

func validateProfile(f *Form) FieldErrors {
	var errs FieldErrors
	switch f.Role {
	case domain.RoleCandidate:
		errs = check(candidateStep{
			FirstName:         strings.TrimSpace(f.FirstName),
			LastName:          strings.TrimSpace(f.LastName),
			Title:             f.Title,
			ExperienceLevel:   f.ExperienceLevel,
			Availability:      f.Availability,
			Skills:            f.Skills,
			Languages:         f.Languages,
			SalaryExpectation: f.SalaryExpectation,
			Country:           f.Country,
			City:              f.City,
			Commune:           f.Commune,
		})
	case domain.RoleEmployer:
		errs = check(employerStep{
			CompanyName: strings.TrimSpace(f.CompanyName),
			CompanyType: f.CompanyType,
			CompanySize: f.CompanySize,
			Address:     f.Address,
			Website:     f.Website,
			Description: f.Description,
			Country:     f.Country,
			City:        f.City,
			Commune:     f.Commune,
		})
	default:
		return FieldErrors{"role": validation.Label("role") + " : choisissez candidat ou employeur à l'étape précédente"}
	}

	mergeLocation(errs, f.Country, f.City, f.Commune)
	return errs
}

// mergeLocation adds a location error on the first level that does not exist,
// unless that field already has one.
func mergeLocation(errs FieldErrors, country, city, commune string) {
	for field, msg := range validation.LocationErrors(country, city, commune) {
		if _, exists := errs[field]; !exists {
			errs[field] = msg
		}
	}
}

func check(step interface{}) FieldErrors {
	errs := FieldErrors{}
	err := validate.Struct(step)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = err.Error()
		return errs
	}
	for k, v := range validation.FieldErrors(err) {
		errs[k] = v
	}
	return errs
}

// ValidateAll runs every step in order and stops at the first one that fails.
// It returns 0 and no errors when the whole form is valid.
func ValidateAll(f *Form) (Step, FieldErrors) {
	for step := StepAccount; step <= LastStep; step++ {
		errs, _ := ValidateStep(step, f)
		if len(errs) > 0 {
			return step, errs
		}
	}
	return 0, nil
}

// Wizard tracks the current step of one sign-up session.
type Wizard struct {
	current Step
}

func New() *Wizard {
	return &Wizard{current: StepAccount}
}

// Resume starts at step, clamped to the valid range.
func Resume(step Step) *Wizard {
	if step < StepAccount {
		step = StepAccount
	}
	if step > LastStep {
		step = LastStep
	}
	return &Wizard{current: step}
}

func (w *Wizard) Current() Step {
	return w.current
}

// Advance validates the current step and moves forward only if it passes.
// On the last step a successful call marks the wizard done.
func (w *Wizard) Advance(f *Form) FieldErrors {
	if w.Done() {
		return nil
	}
	errs, _ := ValidateStep(w.current, f)
	if len(errs) > 0 {
		return errs
	}
	w.current++
	return nil
}

// Back moves to the previous step; it never goes below the first.
func (w *Wizard) Back() {
	if w.current > StepAccount {
		w.current--
	}
}

// Done reports whether every step has been passed.
func (w *Wizard) Done() bool {
	return w.current > LastStep
}
