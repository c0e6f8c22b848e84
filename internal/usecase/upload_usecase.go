package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
	"github.com/starkspartacus/job-sub000/pkg/logger"
	"github.com/starkspartacus/job-sub000/pkg/security"
	"github.com/starkspartacus/job-sub000/pkg/storage"
)

type uploadUsecase struct {
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
	store         storage.ObjectStore
	limiter       *security.UploadLimiter
	secLogger     *security.SecurityLogger
	maxBytes      int
}

func NewUploadUsecase(
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	store storage.ObjectStore,
	limiter *security.UploadLimiter,
	secLogger *security.SecurityLogger,
	maxBytes int,
) domain.UploadUsecase {
	if secLogger == nil {
		secLogger = security.NopSecurityLogger()
	}
	return &uploadUsecase{
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		store:         store,
		limiter:       limiter,
		secLogger:     secLogger,
		maxBytes:      maxBytes,
	}
}

// roleForKind is the only role allowed to upload each kind.
var roleForKind = map[security.UploadKind]string{
	security.KindAvatar: domain.RoleCandidate,
	security.KindCV:     domain.RoleCandidate,
	security.KindLogo:   domain.RoleEmployer,
}

// Upload validates the file, shrinks images, stores it and writes the public
// URL onto the caller's profile.
func (u *uploadUsecase) Upload(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	kind, ok := security.ParseUploadKind(req.Kind)
	if !ok {
		return nil, apperror.BadRequest("Type de fichier inconnu (avatar, cv ou logo)")
	}
	if roleForKind[kind] != req.Role {
		return nil, apperror.Forbidden("Ce type de fichier n'est pas disponible pour votre compte")
	}
	if len(req.Data) == 0 {
		return nil, apperror.BadRequest("Fichier vide")
	}
	if u.maxBytes > 0 && len(req.Data) > u.maxBytes {
		u.secLogger.LogUploadRejected(ctx, req.UserID, string(kind), "too_large")
		return nil, apperror.New(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Fichier trop volumineux (maximum %d Mo)", u.maxBytes/(1<<20)), nil)
	}

	if u.limiter != nil {
		allowed, retryAfter, err := u.limiter.AllowUpload(ctx, req.IP, req.UserID)
		if err != nil {
			logger.Log.Warn("upload limiter unavailable", "error", err)
		}
		if !allowed {
			u.secLogger.LogUploadRejected(ctx, req.UserID, string(kind), "rate_limited")
			return nil, apperror.TooManyRequests(fmt.Sprintf("Trop d'envois. Réessayez dans %d secondes.", int(retryAfter.Seconds())+1))
		}
	}

	check := security.ValidateFile(kind, req.Filename, req.Data)
	if !check.Valid {
		u.secLogger.LogUploadRejected(ctx, req.UserID, string(kind), check.Error)
		return nil, apperror.Validation("Fichier refusé", map[string]string{"file": check.Error})
	}

	data, ext, contentType := req.Data, check.Extension, check.DetectedMIME
	if kind.IsImage() {
		compressed, err := storage.CompressImage(data, storage.MaxImageDimension, storage.JPEGQuality)
		if errors.Is(err, storage.ErrImageTooLarge) {
			u.secLogger.LogUploadRejected(ctx, req.UserID, string(kind), "image_too_large")
			return nil, apperror.Validation("Fichier refusé", map[string]string{"file": "dimensions de l'image trop grandes"})
		}
		if err != nil {
			u.secLogger.LogUploadRejected(ctx, req.UserID, string(kind), "undecodable_image")
			return nil, apperror.Validation("Fichier refusé", map[string]string{"file": "image illisible"})
		}
		data, ext, contentType = compressed, ".jpg", "image/jpeg"
	}

	key := storage.ObjectKey(string(kind), req.UserID, ext)
	url, err := u.store.Put(ctx, key, contentType, data)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) || errors.Is(err, storage.ErrNotConfigured) {
			return nil, apperror.Unavailable("Stockage indisponible, réessayez plus tard", err)
		}
		return nil, apperror.Internal(err)
	}

	if err := u.attach(ctx, kind, req.UserID, url); err != nil {
		if delErr := u.store.Delete(ctx, key); delErr != nil {
			logger.Log.Warn("orphaned upload not removed", "key", key, "error", delErr)
		}
		return nil, wrapRepoErr(err)
	}

	logger.Log.Info("file uploaded", "user_id", req.UserID, "kind", kind, "key", key, "size", len(data))
	return &domain.UploadResult{
		URL:         url,
		Key:         key,
		ContentType: contentType,
		Size:        len(data),
	}, nil
}

func (u *uploadUsecase) attach(ctx context.Context, kind security.UploadKind, userID, url string) error {
	switch kind {
	case security.KindAvatar:
		return u.candidateRepo.UpdateFileURL(ctx, userID, "photo_url", url)
	case security.KindCV:
		return u.candidateRepo.UpdateFileURL(ctx, userID, "cv_url", url)
	default:
		return u.employerRepo.UpdateLogoURL(ctx, userID, url)
	}
}
