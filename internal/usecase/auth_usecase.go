package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/internal/wizard"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
	"github.com/starkspartacus/job-sub000/pkg/auth"
	"github.com/starkspartacus/job-sub000/pkg/email"
	"github.com/starkspartacus/job-sub000/pkg/logger"
	"github.com/starkspartacus/job-sub000/pkg/security"
	"github.com/starkspartacus/job-sub000/pkg/validation"
)

// Mailer sends transactional emails. *email.EmailService satisfies it.
type Mailer interface {
	IsConfigured() bool
	SendWelcomeEmail(to string, data email.WelcomeEmailData) error
}

const invalidCredentialsMessage = "Identifiant ou mot de passe incorrect"

type authUsecase struct {
	userRepo    domain.UserRepository
	tokens      *auth.TokenIssuer
	tracker     *security.LoginTracker
	mailer      Mailer
	secLogger   *security.SecurityLogger
	frontendURL string
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	tokens *auth.TokenIssuer,
	tracker *security.LoginTracker,
	mailer Mailer,
	secLogger *security.SecurityLogger,
	frontendURL string,
) domain.AuthUsecase {
	if secLogger == nil {
		secLogger = security.NopSecurityLogger()
	}
	return &authUsecase{
		userRepo:    userRepo,
		tokens:      tokens,
		tracker:     tracker,
		mailer:      mailer,
		secLogger:   secLogger,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// Register validates every wizard step, then creates the user and its role
// profile in one transaction.
func (u *authUsecase) Register(ctx context.Context, req *domain.RegistrationRequest) (*domain.AuthResult, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = validation.NormalizePhone(req.Phone)

	if step, fields := wizard.ValidateAll(req); len(fields) > 0 {
		return nil, apperror.Validation(fmt.Sprintf("Étape %d : certains champs sont invalides", step), fields)
	}

	conflicts := map[string]string{}
	exists, err := u.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		conflicts["email"] = validation.Label("email") + " : déjà utilisé"
	}
	if req.Phone != "" {
		exists, err = u.userRepo.PhoneExists(ctx, req.Phone)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if exists {
			conflicts["phone"] = validation.Label("phone") + " : déjà utilisé"
		}
	}
	if len(conflicts) > 0 {
		for field := range conflicts {
			u.secLogger.LogRegistrationConflict(ctx, identifierFor(req, field), field)
		}
		return nil, conflictError(conflicts)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}

	candidate, employer := profilesFor(req, user)
	if err := u.userRepo.CreateWithProfile(ctx, user, candidate, employer); err != nil {
		var dup *domain.DuplicateError
		if errors.As(err, &dup) {
			u.secLogger.LogRegistrationConflict(ctx, identifierFor(req, dup.Field), dup.Field)
			return nil, conflictError(map[string]string{dup.Field: validation.Label(dup.Field) + " : déjà utilisé"})
		}
		return nil, apperror.Internal(err)
	}

	u.sendWelcome(req, user)

	result, err := u.issue(user)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("user registered", "user_id", user.ID, "role", user.Role)
	return result, nil
}

func (u *authUsecase) Login(ctx context.Context, req *domain.LoginRequest, meta domain.LoginMeta) (*domain.AuthResult, error) {
	identifier := canonicalIdentifier(req.Identifier)
	if identifier == "" || req.Password == "" {
		return nil, apperror.Unauthorized(invalidCredentialsMessage)
	}

	blocked, err := u.tracker.IsBlocked(ctx, identifier, meta.IP)
	if err != nil {
		logger.Log.Warn("login tracker unavailable", "error", err)
	}
	if blocked {
		u.secLogger.LogLoginBlocked(ctx, identifier, meta.IP, meta.UserAgent, meta.RequestID)
		return nil, apperror.TooManyRequests("Trop de tentatives échouées. Réessayez plus tard.")
	}

	user, err := u.lookup(ctx, identifier)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		auth.BurnCompare(req.Password)
		return nil, u.failLogin(ctx, identifier, meta)
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, u.failLogin(ctx, identifier, meta)
	}

	if err := u.tracker.ClearAttempts(ctx, identifier, meta.IP); err != nil {
		logger.Log.Warn("failed to clear login attempts", "error", err)
	}
	u.secLogger.LogLoginSuccess(ctx, user.ID, meta.IP, meta.UserAgent, meta.RequestID)

	return u.issue(user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Session invalide")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// canonicalIdentifier lowercases emails and normalizes phone numbers so every
// spelling of one account shares a lookup key and a failed-login counter.
func canonicalIdentifier(raw string) string {
	identifier := strings.TrimSpace(raw)
	if strings.Contains(identifier, "@") {
		return strings.ToLower(identifier)
	}
	return validation.NormalizePhone(identifier)
}

// lookup expects a canonical identifier: emails contain "@", everything else is a phone.
func (u *authUsecase) lookup(ctx context.Context, identifier string) (*domain.User, error) {
	if strings.Contains(identifier, "@") {
		return u.userRepo.GetByEmail(ctx, identifier)
	}
	return u.userRepo.GetByPhone(ctx, identifier)
}

func (u *authUsecase) failLogin(ctx context.Context, identifier string, meta domain.LoginMeta) error {
	blocked, _, err := u.tracker.RecordFailedAttempt(ctx, identifier, meta.IP, meta.UserAgent, meta.RequestID)
	if err != nil {
		logger.Log.Warn("failed to record login attempt", "error", err)
	}
	if blocked {
		return apperror.TooManyRequests("Trop de tentatives échouées. Réessayez plus tard.")
	}
	return apperror.Unauthorized(invalidCredentialsMessage)
}

func (u *authUsecase) issue(user *domain.User) (*domain.AuthResult, error) {
	token, expiresAt, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{
		Token:      token,
		ExpiresAt:  expiresAt,
		User:       user,
		RedirectTo: domain.DashboardPath(user.Role),
	}, nil
}

// sendWelcome is best effort: a mail failure never fails the registration.
func (u *authUsecase) sendWelcome(req *domain.RegistrationRequest, user *domain.User) {
	if u.mailer == nil || !u.mailer.IsConfigured() {
		return
	}
	name := req.FirstName
	if user.Role == domain.RoleEmployer {
		name = req.CompanyName
	}
	data := email.WelcomeEmailData{
		Name:         name,
		IsEmployer:   user.Role == domain.RoleEmployer,
		DashboardURL: u.frontendURL + domain.DashboardPath(user.Role),
	}
	if err := u.mailer.SendWelcomeEmail(user.Email, data); err != nil {
		logger.Log.Warn("welcome email not sent", "user_id", user.ID, "error", err)
	}
}

func profilesFor(req *domain.RegistrationRequest, user *domain.User) (*domain.CandidateProfile, *domain.EmployerProfile) {
	if req.Role == domain.RoleEmployer {
		return nil, &domain.EmployerProfile{
			UserID:      user.ID,
			CompanyName: strings.TrimSpace(req.CompanyName),
			CompanyType: req.CompanyType,
			CompanySize: req.CompanySize,
			Address:     req.Address,
			Country:     req.Country,
			City:        req.City,
			Commune:     req.Commune,
			Description: req.Description,
			Website:     req.Website,
			Phone:       user.Phone,
			CreatedAt:   user.CreatedAt,
			UpdatedAt:   user.UpdatedAt,
		}
	}
	return &domain.CandidateProfile{
		UserID:            user.ID,
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Title:             req.Title,
		Skills:            req.Skills,
		Languages:         req.Languages,
		ExperienceLevel:   req.ExperienceLevel,
		Availability:      req.Availability,
		SalaryExpectation: req.SalaryExpectation,
		Phone:             user.Phone,
		Country:           req.Country,
		City:              req.City,
		Commune:           req.Commune,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}, nil
}

func identifierFor(req *domain.RegistrationRequest, field string) string {
	if field == "phone" {
		return req.Phone
	}
	return req.Email
}

func conflictError(fields map[string]string) *apperror.AppError {
	e := apperror.Conflict("Un compte existe déjà avec ces informations")
	e.Fields = fields
	return e
}
