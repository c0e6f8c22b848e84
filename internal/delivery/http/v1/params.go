package v1

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
	"github.com/starkspartacus/job-sub000/pkg/validation"
)

// pathID parses a positive int64 path parameter, reporting a 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.Error(apperror.BadRequest("Identifiant invalide"))
		return 0, false
	}
	return id, true
}

// pageParams reads page and page_size; bad values fall back to the defaults.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(domain.DefaultPageSize)))
	return page, pageSize
}

func bindError(err error) *apperror.AppError {
	if fields := validation.FieldErrors(err); fields != nil {
		return apperror.Validation("Certains champs sont invalides", fields)
	}
	return apperror.BadRequest("Requête invalide : " + err.Error())
}

const dateLayout = "2006-01-02"

// dateField parses YYYY-MM-DD (or RFC3339) into errs under field. Empty is nil.
func dateField(errs map[string]string, field, value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	errs[field] = validation.Label(field) + " : date invalide (AAAA-MM-JJ)"
	return nil
}

func currentUserID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}
