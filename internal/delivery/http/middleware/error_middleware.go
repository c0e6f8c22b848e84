package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starkspartacus/job-sub000/internal/delivery/http/response"
	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
	"github.com/starkspartacus/job-sub000/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		var dup *domain.DuplicateError
		switch {
		case errors.As(err, &appErr):
			if appErr.Code >= http.StatusInternalServerError {
				logError(c, appErr.Code, err)
			}
			var details interface{}
			if len(appErr.Fields) > 0 {
				details = appErr.Fields
			}
			response.Error(c, appErr.Code, appErr.Message, details)
		case errors.As(err, &dup):
			response.Error(c, http.StatusConflict, "Un enregistrement existe déjà avec ces informations", map[string]string{dup.Field: "déjà utilisé"})
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Ressource introuvable", nil)
		default:
			// SECURITY: Never expose internal error details to clients.
			logError(c, http.StatusInternalServerError, err)
			response.Error(c, http.StatusInternalServerError, "Une erreur inattendue est survenue. Réessayez plus tard.", nil)
		}
	}
}

func logError(c *gin.Context, status int, err error) {
	logger.Log.Error("request failed",
		"status", status,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", c.GetString(string(domain.KeyRequestID)),
		"error", err,
	)
}
