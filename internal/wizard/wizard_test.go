package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starkspartacus/job-sub000/internal/domain"
)

func validCandidate() *Form {
	return &Form{
		Email:           "awa.kone@example.com",
		Phone:           "+225 07 01 02 03 04",
		Password:        "motdepasse1",
		ConfirmPassword: "motdepasse1",
		Role:            domain.RoleCandidate,
		FirstName:       "Awa",
		LastName:        "Koné",
		ExperienceLevel: "junior",
		Availability:    "immediate",
		Skills:          []string{"Service en salle", "Barista"},
		Country:         "Côte d'Ivoire",
		City:            "Abidjan",
		Commune:         "Cocody",
		AcceptTerms:     true,
	}
}

func validEmployer() *Form {
	return &Form{
		Email:           "rh@hotel-ivoire.ci",
		Password:        "motdepasse1",
		ConfirmPassword: "motdepasse1",
		Role:            domain.RoleEmployer,
		CompanyName:     "Hôtel Ivoire",
		CompanyType:     "hotel",
		CompanySize:     "200+",
		Country:         "Côte d'Ivoire",
		City:            "Abidjan",
		Commune:         "Cocody",
		Website:         "https://hotel-ivoire.ci",
		AcceptTerms:     true,
	}
}

func TestValidateAllAcceptsCompleteForms(t *testing.T) {
	step, errs := ValidateAll(validCandidate())
	assert.Zero(t, step)
	assert.Empty(t, errs)

	step, errs = ValidateAll(validEmployer())
	assert.Zero(t, step)
	assert.Empty(t, errs)
}

func TestValidateStepAccount(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *Form)
		field  string
	}{
		{"missing email", func(f *Form) { f.Email = "" }, "email"},
		{"bad email", func(f *Form) { f.Email = "awa@" }, "email"},
		{"short password", func(f *Form) { f.Password, f.ConfirmPassword = "abc", "abc" }, "password"},
		{"confirmation mismatch", func(f *Form) { f.ConfirmPassword = "autrechose" }, "confirm_password"},
		{"missing role", func(f *Form) { f.Role = "" }, "role"},
		{"unknown role", func(f *Form) { f.Role = "admin" }, "role"},
		{"bad phone", func(f *Form) { f.Phone = "12ab" }, "phone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validCandidate()
			tt.mutate(f)
			errs, err := ValidateStep(StepAccount, f)
			require.NoError(t, err)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateStepProfileBranchesOnRole(t *testing.T) {
	t.Run("candidate ignores employer fields", func(t *testing.T) {
		f := validCandidate()
		f.CompanyName = ""
		errs, _ := ValidateStep(StepProfile, f)
		assert.Empty(t, errs)
	})

	t.Run("candidate requires names", func(t *testing.T) {
		f := validCandidate()
		f.FirstName = ""
		f.LastName = "K0né"
		errs, _ := ValidateStep(StepProfile, f)
		assert.Equal(t, "Prénom : champ obligatoire", errs["first_name"])
		assert.Contains(t, errs, "last_name")
	})

	t.Run("employer requires company fields", func(t *testing.T) {
		f := validEmployer()
		f.CompanyName = ""
		f.CompanySize = "5000"
		errs, _ := ValidateStep(StepProfile, f)
		assert.Contains(t, errs, "company_name")
		assert.Contains(t, errs, "company_size")
		assert.NotContains(t, errs, "first_name")
	})

	t.Run("unknown commune", func(t *testing.T) {
		f := validEmployer()
		f.Commune = "Yopougon-Nord"
		errs, _ := ValidateStep(StepProfile, f)
		assert.Equal(t, map[string]string{"commune": "Commune : valeur inconnue"}, map[string]string(errs))
	})

	t.Run("city from another country", func(t *testing.T) {
		f := validCandidate()
		f.Country, f.City, f.Commune = "Sénégal", "Abidjan", ""
		errs, _ := ValidateStep(StepProfile, f)
		assert.Contains(t, errs, "city")
	})

	t.Run("no role chosen", func(t *testing.T) {
		f := validCandidate()
		f.Role = ""
		errs, _ := ValidateStep(StepProfile, f)
		assert.Contains(t, errs, "role")
	})
}

func TestValidateStepConfirmation(t *testing.T) {
	f := validCandidate()
	f.AcceptTerms = false
	errs, _ := ValidateStep(StepConfirmation, f)
	assert.Equal(t, "Conditions d'utilisation : doit être accepté", errs["accept_terms"])

	_, err := ValidateStep(Step(9), f)
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestValidateAllReportsFirstFailingStep(t *testing.T) {
	f := validEmployer()
	f.CompanyType = ""
	f.AcceptTerms = false

	step, errs := ValidateAll(f)
	assert.Equal(t, StepProfile, step)
	assert.Contains(t, errs, "company_type")
	assert.NotContains(t, errs, "accept_terms")
}

func TestWizardAdvance(t *testing.T) {
	f := validCandidate()
	f.FirstName = ""
	w := New()

	require.Empty(t, w.Advance(f))
	assert.Equal(t, StepProfile, w.Current())

	errs := w.Advance(f)
	assert.Contains(t, errs, "first_name")
	assert.Equal(t, StepProfile, w.Current(), "blocked on field error")

	f.FirstName = "Awa"
	require.Empty(t, w.Advance(f))
	assert.Equal(t, StepConfirmation, w.Current())
	assert.False(t, w.Done())

	require.Empty(t, w.Advance(f))
	assert.True(t, w.Done())

	w.Back()
	assert.Equal(t, StepConfirmation, w.Current())
	w.Back()
	w.Back()
	w.Back()
	assert.Equal(t, StepAccount, w.Current())
}

func TestResumeClamps(t *testing.T) {
	assert.Equal(t, StepAccount, Resume(0).Current())
	assert.Equal(t, StepConfirmation, Resume(7).Current())
	assert.Equal(t, "profile", StepProfile.String())
}
