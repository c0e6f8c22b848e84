package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
	"github.com/starkspartacus/job-sub000/pkg/security"
)

type candidateUsecase struct {
	repo      domain.CandidateRepository
	secLogger *security.SecurityLogger
}

func NewCandidateUsecase(repo domain.CandidateRepository, secLogger *security.SecurityLogger) domain.CandidateUsecase {
	if secLogger == nil {
		secLogger = security.NopSecurityLogger()
	}
	return &candidateUsecase{
		repo:      repo,
		secLogger: secLogger,
	}
}

// profileFor resolves the caller's own profile. Every owner operation goes through it.
func (u *candidateUsecase) profileFor(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	return candidateFor(ctx, u.repo, userID)
}

func candidateFor(ctx context.Context, repo domain.CandidateRepository, userID string) (*domain.CandidateProfile, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	profile, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profil candidat introuvable")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *candidateUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.CandidateDetail, error) {
	profile, err := u.profileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail := &domain.CandidateDetail{CandidateProfile: *profile}
	if detail.Experiences, err = u.repo.ListExperiences(ctx, profile.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	if detail.Educations, err = u.repo.ListEducations(ctx, profile.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	if detail.Certifications, err = u.repo.ListCertifications(ctx, profile.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	if detail.SkillRecords, err = u.repo.ListSkills(ctx, profile.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	return detail, nil
}

// UpdateMyProfile replaces the editable fields. Identity, contact and file URLs
// are kept from the stored profile.
func (u *candidateUsecase) UpdateMyProfile(ctx context.Context, userID string, input *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	current, err := u.profileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if err := validateLocation(input.Country, input.City, input.Commune); err != nil {
		return nil, err
	}

	updated := *current
	updated.FirstName = input.FirstName
	updated.LastName = input.LastName
	updated.Title = input.Title
	updated.Bio = input.Bio
	updated.Skills = input.Skills
	updated.Languages = input.Languages
	updated.ExperienceLevel = input.ExperienceLevel
	updated.Availability = input.Availability
	updated.SalaryExpectation = input.SalaryExpectation
	updated.Country = input.Country
	updated.City = input.City
	updated.Commune = input.Commune
	updated.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, &updated); err != nil {
		return nil, apperror.Internal(err)
	}
	return &updated, nil
}

func (u *candidateUsecase) AddExperience(ctx context.Context, userID string, e *domain.Experience) error {
	profile, err := u.profileFor(ctx, userID)
	if err != nil {
		return err
	}
	if err := validateStruct(e); err != nil {
		return err
	}
	e.CandidateID = profile.ID
	return wrapRepoErr(u.repo.AddExperience(ctx, e))
}

func (u *candidateUsecase) AddEducation(ctx context.Context, userID string, e *domain.Education) error {
	profile, err := u.profileFor(ctx, userID)
	if err != nil {
		return err
	}
	if err := validateStruct(e); err != nil {
		return err
	}
	e.CandidateID = profile.ID
	return wrapRepoErr(u.repo.AddEducation(ctx, e))
}

func (u *candidateUsecase) AddCertification(ctx context.Context, userID string, c *domain.Certification) error {
	profile, err := u.profileFor(ctx, userID)
	if err != nil {
		return err
	}
	if err := validateStruct(c); err != nil {
		return err
	}
	c.CandidateID = profile.ID
	return wrapRepoErr(u.repo.AddCertification(ctx, c))
}

func (u *candidateUsecase) AddSkill(ctx context.Context, userID string, s *domain.Skill) error {
	profile, err := u.profileFor(ctx, userID)
	if err != nil {
		return err
	}
	s.Name = strings.TrimSpace(s.Name)
	if err := validateStruct(s); err != nil {
		return err
	}
	s.CandidateID = profile.ID
	err = u.repo.AddSkill(ctx, s)
	if errors.Is(err, domain.ErrDuplicate) {
		e := apperror.Conflict("Compétence déjà ajoutée")
		e.Fields = map[string]string{"name": "Nom : compétence déjà ajoutée"}
		return e
	}
	return wrapRepoErr(err)
}

// DeleteSubRecord only removes rows owned by the caller; someone else's id reads as not found.
func (u *candidateUsecase) DeleteSubRecord(ctx context.Context, userID string, kind domain.SubRecordKind, id int64) error {
	if !kind.Valid() {
		return apperror.BadRequest("Type d'élément inconnu")
	}
	profile, err := u.profileFor(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.repo.DeleteSubRecord(ctx, kind, profile.ID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Élément introuvable")
		}
		return apperror.Internal(err)
	}
	return nil
}

// Search never fails on a filter that matches nothing; it returns an empty page.
func (u *candidateUsecase) Search(ctx context.Context, filter domain.CandidateFilter) (*domain.PaginatedResult[domain.PublicCandidate], error) {
	page, pageSize, offset := domain.Pagination(filter.Page, filter.PageSize)
	profiles, total, err := u.repo.Search(ctx, normalizeCandidateFilter(filter), pageSize, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	items := make([]domain.PublicCandidate, 0, len(profiles))
	for i := range profiles {
		items = append(items, toPublicCandidate(&profiles[i], 0))
	}
	return domain.NewPaginatedResult(items, total, page, pageSize), nil
}

func (u *candidateUsecase) GetPublic(ctx context.Context, id int64) (*domain.PublicCandidate, error) {
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidat introuvable")
		}
		return nil, apperror.Internal(err)
	}
	counts, err := u.repo.CountSubRecords(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	pub := toPublicCandidate(profile, counts[domain.KindExperience])
	return &pub, nil
}

func normalizeCandidateFilter(f domain.CandidateFilter) domain.CandidateFilter {
	f.Term = strings.TrimSpace(f.Term)
	return f
}

// toPublicCandidate drops contact data and shortens the last name to an initial.
func toPublicCandidate(p *domain.CandidateProfile, experienceCount int) domain.PublicCandidate {
	return domain.PublicCandidate{
		ID:                p.ID,
		FirstName:         p.FirstName,
		LastInitial:       initial(p.LastName),
		Title:             p.Title,
		Bio:               p.Bio,
		Skills:            nonNilStrings(p.Skills),
		Languages:         nonNilStrings(p.Languages),
		ExperienceLevel:   p.ExperienceLevel,
		Availability:      p.Availability,
		Country:           p.Country,
		City:              p.City,
		Commune:           p.Commune,
		PhotoURL:          p.PhotoURL,
		ExperienceCount:   experienceCount,
		SalaryExpectation: p.SalaryExpectation,
	}
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return ""
	}
	return strings.ToUpper(string(r)) + "."
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func wrapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Ressource introuvable")
	default:
		return apperror.Internal(err)
	}
}
