package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/internal/usecase"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
	"github.com/starkspartacus/job-sub000/pkg/auth"
	"github.com/starkspartacus/job-sub000/pkg/email"
	"github.com/starkspartacus/job-sub000/pkg/security"
)

type authFixture struct {
	users  *MockUserRepo
	mailer *MockMailer
	tokens *auth.TokenIssuer
	uc     domain.AuthUsecase
}

func newAuthFixture(maxAttempts int) *authFixture {
	f := &authFixture{
		users:  new(MockUserRepo),
		mailer: new(MockMailer),
		tokens: auth.NewTokenIssuer("test-secret", time.Hour),
	}
	cfg := security.DefaultLoginTrackerConfig()
	cfg.MaxAttempts = maxAttempts
	tracker := security.NewLoginTracker(cfg, security.NewMemoryStore(), security.NopSecurityLogger())
	f.uc = usecase.NewAuthUsecase(f.users, f.tokens, tracker, f.mailer, security.NopSecurityLogger(), "https://emploi.example/")
	return f
}

func candidateRegistration() *domain.RegistrationRequest {
	return &domain.RegistrationRequest{
		Email:           "  Awa.Kone@Example.com ",
		Phone:           "+225 07 01 02 03 04",
		Password:        "motdepasse1",
		ConfirmPassword: "motdepasse1",
		Role:            domain.RoleCandidate,
		FirstName:       "Awa",
		LastName:        "Koné",
		ExperienceLevel: "junior",
		Availability:    "immediate",
		Country:         "Côte d'Ivoire",
		City:            "Abidjan",
		Commune:         "Cocody",
		AcceptTerms:     true,
	}
}

func employerRegistration() *domain.RegistrationRequest {
	return &domain.RegistrationRequest{
		Email:           "rh@hotel-ivoire.ci",
		Password:        "motdepasse1",
		ConfirmPassword: "motdepasse1",
		Role:            domain.RoleEmployer,
		CompanyName:     "Hôtel Ivoire",
		CompanyType:     "hotel",
		CompanySize:     "200+",
		Country:         "Sénégal",
		City:            "Dakar",
		AcceptTerms:     true,
	}
}

func appErr(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var ae *apperror.AppError
	require.True(t, errors.As(err, &ae), "expected *apperror.AppError, got %T: %v", err, err)
	return ae
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("candidate is created with a candidate profile only", func(t *testing.T) {
		f := newAuthFixture(5)
		f.users.On("EmailExists", ctx, "awa.kone@example.com").Return(false, nil)
		f.users.On("PhoneExists", ctx, "+2250701020304").Return(false, nil)
		f.users.On("CreateWithProfile", ctx,
			mock.MatchedBy(func(u *domain.User) bool {
				return u.Email == "awa.kone@example.com" && u.Role == domain.RoleCandidate &&
					u.PasswordHash != "motdepasse1" && u.Phone != nil && *u.Phone == "+2250701020304"
			}),
			mock.MatchedBy(func(c *domain.CandidateProfile) bool {
				return c != nil && c.FirstName == "Awa" && c.City == "Abidjan"
			}),
			(*domain.EmployerProfile)(nil),
		).Return(nil)
		f.mailer.On("IsConfigured").Return(true)
		f.mailer.On("SendWelcomeEmail", "awa.kone@example.com", email.WelcomeEmailData{
			Name:         "Awa",
			DashboardURL: "https://emploi.example/dashboard/candidate",
		}).Return(nil)

		res, err := f.uc.Register(ctx, candidateRegistration())
		require.NoError(t, err)
		assert.Equal(t, "/dashboard/candidate", res.RedirectTo)
		assert.NotEmpty(t, res.Token)

		claims, err := f.tokens.Parse(res.Token)
		require.NoError(t, err)
		assert.Equal(t, res.User.ID, claims.Subject)
		assert.Equal(t, domain.RoleCandidate, claims.Role)
		f.users.AssertExpectations(t)
		f.mailer.AssertExpectations(t)
	})

	t.Run("employer is created with an employer profile only", func(t *testing.T) {
		f := newAuthFixture(5)
		f.users.On("EmailExists", ctx, "rh@hotel-ivoire.ci").Return(false, nil)
		f.users.On("CreateWithProfile", ctx, mock.Anything,
			(*domain.CandidateProfile)(nil),
			mock.MatchedBy(func(e *domain.EmployerProfile) bool {
				return e != nil && e.CompanyName == "Hôtel Ivoire" && e.CompanyType == "hotel"
			}),
		).Return(nil)
		f.mailer.On("IsConfigured").Return(false)

		res, err := f.uc.Register(ctx, employerRegistration())
		require.NoError(t, err)
		assert.Equal(t, "/dashboard/employer", res.RedirectTo)
		f.users.AssertNotCalled(t, "PhoneExists", mock.Anything, mock.Anything)
		f.mailer.AssertNotCalled(t, "SendWelcomeEmail", mock.Anything, mock.Anything)
	})

	t.Run("invalid step is reported with its fields before touching the store", func(t *testing.T) {
		f := newAuthFixture(5)
		req := candidateRegistration()
		req.ConfirmPassword = "autre-chose"

		_, err := f.uc.Register(ctx, req)
		ae := appErr(t, err)
		assert.Equal(t, http.StatusBadRequest, ae.Code)
		assert.Contains(t, ae.Message, "Étape 1")
		assert.Contains(t, ae.Fields, "confirm_password")
		f.users.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email and phone are both reported as 409", func(t *testing.T) {
		f := newAuthFixture(5)
		f.users.On("EmailExists", ctx, "awa.kone@example.com").Return(true, nil)
		f.users.On("PhoneExists", ctx, "+2250701020304").Return(true, nil)

		_, err := f.uc.Register(ctx, candidateRegistration())
		ae := appErr(t, err)
		assert.Equal(t, http.StatusConflict, ae.Code)
		assert.Contains(t, ae.Fields, "email")
		assert.Contains(t, ae.Fields, "phone")
		f.users.AssertNotCalled(t, "CreateWithProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unique violation during insert maps to 409", func(t *testing.T) {
		f := newAuthFixture(5)
		f.users.On("EmailExists", ctx, mock.Anything).Return(false, nil)
		f.users.On("PhoneExists", ctx, mock.Anything).Return(false, nil)
		f.users.On("CreateWithProfile", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.DuplicateError{Field: "email"})

		_, err := f.uc.Register(ctx, candidateRegistration())
		ae := appErr(t, err)
		assert.Equal(t, http.StatusConflict, ae.Code)
		assert.Contains(t, ae.Fields, "email")
	})

	t.Run("mail failure does not fail registration", func(t *testing.T) {
		f := newAuthFixture(5)
		f.users.On("EmailExists", ctx, mock.Anything).Return(false, nil)
		f.users.On("CreateWithProfile", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.mailer.On("IsConfigured").Return(true)
		f.mailer.On("SendWelcomeEmail", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		_, err := f.uc.Register(ctx, employerRegistration())
		assert.NoError(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	meta := domain.LoginMeta{IP: "10.0.0.1", UserAgent: "test", RequestID: "req-1"}

	hash, err := auth.HashPassword("motdepasse1")
	require.NoError(t, err)
	phone := "+2250701020304"
	user := &domain.User{ID: "u-1", Email: "awa@example.com", Phone: &phone, PasswordHash: hash, Role: domain.RoleEmployer}

	t.Run("email login redirects by role", func(t *testing.T) {
		f := newAuthFixture(5)
		f.users.On("GetByEmail", ctx, "awa@example.com").Return(user, nil)

		res, err := f.uc.Login(ctx, &domain.LoginRequest{Identifier: "Awa@Example.com", Password: "motdepasse1"}, meta)
		require.NoError(t, err)
		assert.Equal(t, "/dashboard/employer", res.RedirectTo)
		assert.Equal(t, "u-1", res.User.ID)
	})

	t.Run("phone login normalizes separators", func(t *testing.T) {
		f := newAuthFixture(5)
		f.users.On("GetByPhone", ctx, "+2250701020304").Return(user, nil)

		_, err := f.uc.Login(ctx, &domain.LoginRequest{Identifier: "+225 07-01-02-03-04", Password: "motdepasse1"}, meta)
		assert.NoError(t, err)
	})

	t.Run("unknown user and wrong password give the same 401", func(t *testing.T) {
		f := newAuthFixture(5)
		f.users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)
		f.users.On("GetByEmail", ctx, "awa@example.com").Return(user, nil)

		_, errUnknown := f.uc.Login(ctx, &domain.LoginRequest{Identifier: "ghost@example.com", Password: "x"}, meta)
		_, errWrong := f.uc.Login(ctx, &domain.LoginRequest{Identifier: "awa@example.com", Password: "mauvais"}, meta)

		assert.Equal(t, http.StatusUnauthorized, appErr(t, errUnknown).Code)
		assert.Equal(t, http.StatusUnauthorized, appErr(t, errWrong).Code)
		assert.Equal(t, appErr(t, errUnknown).Message, appErr(t, errWrong).Message)
	})

	t.Run("repeated failures block the identifier", func(t *testing.T) {
		f := newAuthFixture(2)
		f.users.On("GetByEmail", ctx, "awa@example.com").Return(user, nil)
		req := &domain.LoginRequest{Identifier: "awa@example.com", Password: "mauvais"}

		_, err := f.uc.Login(ctx, req, meta)
		assert.Equal(t, http.StatusUnauthorized, appErr(t, err).Code)

		_, err = f.uc.Login(ctx, req, meta)
		assert.Equal(t, http.StatusTooManyRequests, appErr(t, err).Code)

		// even the right password is refused while blocked
		_, err = f.uc.Login(ctx, &domain.LoginRequest{Identifier: "awa@example.com", Password: "motdepasse1"}, meta)
		assert.Equal(t, http.StatusTooManyRequests, appErr(t, err).Code)
	})

	t.Run("phone spellings share one failure counter", func(t *testing.T) {
		f := newAuthFixture(3)
		f.users.On("GetByPhone", ctx, "+2250701020304").Return(user, nil)

		spellings := []string{"+2250701020304", "+225 07 01 02 03 04", "+225-0701020304"}
		for i, phone := range spellings {
			// a fresh IP each time so only the identifier counter can trip
			m := meta
			m.IP = fmt.Sprintf("10.0.1.%d", i+1)
			_, err := f.uc.Login(ctx, &domain.LoginRequest{Identifier: phone, Password: "mauvais"}, m)
			require.Error(t, err)
		}

		m := meta
		m.IP = "10.0.2.1"
		_, err := f.uc.Login(ctx, &domain.LoginRequest{Identifier: "+225 0701 0203 04", Password: "motdepasse1"}, m)
		assert.Equal(t, http.StatusTooManyRequests, appErr(t, err).Code)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		f := newAuthFixture(5)
		f.users.On("GetByEmail", ctx, "awa@example.com").Return(nil, errors.New("connection refused"))

		_, err := f.uc.Login(ctx, &domain.LoginRequest{Identifier: "awa@example.com", Password: "motdepasse1"}, meta)
		assert.Equal(t, http.StatusInternalServerError, appErr(t, err).Code)
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(5)
	f.users.On("GetByID", ctx, "gone").Return(nil, domain.ErrNotFound)

	_, err := f.uc.GetCurrentUser(ctx, "gone")
	assert.Equal(t, http.StatusUnauthorized, appErr(t, err).Code)
}
