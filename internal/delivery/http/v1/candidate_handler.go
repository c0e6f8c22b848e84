package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/starkspartacus/job-sub000/internal/delivery/http/response"
	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(public, candidateOnly, employerOnly *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	// Static segments (me, export) take precedence over :id in gin's tree
	me := candidateOnly.Group("/candidates/me")
	{
		me.GET("", handler.GetProfile)
		me.PUT("", handler.UpdateProfile)
		me.POST("/:kind", handler.AddSubRecord)
		me.DELETE("/:kind/:id", handler.DeleteSubRecord)
	}

	employerOnly.GET("/candidates/export", handler.Export)

	publicCandidates := public.Group("/candidates")
	{
		publicCandidates.GET("", handler.Search)
		publicCandidates.GET("/:id", handler.GetPublic)
	}
}

// ProfileRequest holds the fields a candidate may edit on their own profile.
type ProfileRequest struct {
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	Title             string   `json:"title"`
	Bio               string   `json:"bio"`
	Skills            []string `json:"skills"`
	Languages         []string `json:"languages"`
	ExperienceLevel   string   `json:"experience_level"`
	Availability      string   `json:"availability"`
	SalaryExpectation *int64   `json:"salary_expectation"`
	Country           string   `json:"country"`
	City              string   `json:"city"`
	Commune           string   `json:"commune"`
}

// SubRecordRequest is the union of the experience, education, certification
// and skill forms. Dates are YYYY-MM-DD.
type SubRecordRequest struct {
	Position    string `json:"position"`
	Employer    string `json:"employer"`
	City        string `json:"city"`
	Description string `json:"description"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	URL         string `json:"url"`
	Level       string `json:"level"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IssuedAt    string `json:"issued_at"`
	ExpiresAt   string `json:"expires_at"`
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// GetProfile godoc
// @Summary      Get candidate profile
// @Description  Get the profile of the currently logged-in candidate with experiences, educations, certifications and skills
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateDetail}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	profile, err := h.candidateUC.GetMyProfile(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profil candidat", profile)
}

// UpdateProfile godoc
// @Summary      Update candidate profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        profile  body      ProfileRequest  true  "Editable profile fields"
// @Success      200      {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /candidates/me [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	profile := &domain.CandidateProfile{
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Title:             strings.TrimSpace(req.Title),
		Bio:               strings.TrimSpace(req.Bio),
		Skills:            trimAll(req.Skills),
		Languages:         trimAll(req.Languages),
		ExperienceLevel:   req.ExperienceLevel,
		Availability:      req.Availability,
		SalaryExpectation: req.SalaryExpectation,
		Country:           req.Country,
		City:              req.City,
		Commune:           req.Commune,
	}

	updated, err := h.candidateUC.UpdateMyProfile(c, currentUserID(c), profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profil mis à jour", updated)
}

// AddSubRecord godoc
// @Summary      Add an experience, education, certification or skill
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        kind    path      string            true  "experiences, educations, certifications or skills"
// @Param        record  body      SubRecordRequest  true  "Record fields for the kind"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /candidates/me/{kind} [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddSubRecord(c *gin.Context) {
	kind := domain.SubRecordKind(c.Param("kind"))
	if !kind.Valid() {
		c.Error(apperror.NotFound("Section de profil inconnue"))
		return
	}

	var req SubRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := currentUserID(c)
	dateErrs := map[string]string{}
	var (
		record interface{}
		err    error
	)
	switch kind {
	case domain.KindExperience:
		e := &domain.Experience{
			Position:    strings.TrimSpace(req.Position),
			Employer:    strings.TrimSpace(req.Employer),
			City:        strings.TrimSpace(req.City),
			Description: strings.TrimSpace(req.Description),
			StartDate:   requiredDate(dateErrs, "start_date", req.StartDate),
			EndDate:     dateField(dateErrs, "end_date", req.EndDate),
		}
		if len(dateErrs) == 0 {
			err = h.candidateUC.AddExperience(c, userID, e)
		}
		record = e
	case domain.KindEducation:
		e := &domain.Education{
			School:    strings.TrimSpace(req.School),
			Degree:    strings.TrimSpace(req.Degree),
			Field:     strings.TrimSpace(req.Field),
			StartDate: requiredDate(dateErrs, "start_date", req.StartDate),
			EndDate:   dateField(dateErrs, "end_date", req.EndDate),
		}
		if len(dateErrs) == 0 {
			err = h.candidateUC.AddEducation(c, userID, e)
		}
		record = e
	case domain.KindCertification:
		cert := &domain.Certification{
			Name:      strings.TrimSpace(req.Name),
			Issuer:    strings.TrimSpace(req.Issuer),
			URL:       strings.TrimSpace(req.URL),
			IssuedAt:  requiredDate(dateErrs, "issued_at", req.IssuedAt),
			ExpiresAt: dateField(dateErrs, "expires_at", req.ExpiresAt),
		}
		if len(dateErrs) == 0 {
			err = h.candidateUC.AddCertification(c, userID, cert)
		}
		record = cert
	case domain.KindSkill:
		s := &domain.Skill{
			Name:  strings.TrimSpace(req.Name),
			Level: req.Level,
		}
		err = h.candidateUC.AddSkill(c, userID, s)
		record = s
	}

	if len(dateErrs) > 0 {
		c.Error(apperror.Validation("Certains champs sont invalides", dateErrs))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Élément ajouté", record)
}

// requiredDate is dateField with the zero time for empty input; the usecase
// reports the missing value through the required rule.
func requiredDate(errs map[string]string, field, value string) time.Time {
	if t := dateField(errs, field, value); t != nil {
		return *t
	}
	return time.Time{}
}

// DeleteSubRecord godoc
// @Summary      Delete an experience, education, certification or skill
// @Tags         candidates
// @Produce      json
// @Param        kind  path      string  true  "experiences, educations, certifications or skills"
// @Param        id    path      int     true  "Record ID"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /candidates/me/{kind}/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteSubRecord(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	kind := domain.SubRecordKind(c.Param("kind"))
	if err := h.candidateUC.DeleteSubRecord(c, currentUserID(c), kind, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Élément supprimé", nil)
}

func candidateFilter(c *gin.Context) domain.CandidateFilter {
	page, pageSize := pageParams(c)
	return domain.CandidateFilter{
		Term:            c.Query("q"),
		ExperienceLevel: c.Query("experience_level"),
		Availability:    c.Query("availability"),
		Country:         c.Query("country"),
		City:            c.Query("city"),
		Commune:         c.Query("commune"),
		Page:            page,
		PageSize:        pageSize,
	}
}

// SearchCandidates godoc
// @Summary      Search candidates
// @Description  Public candidate directory. Contact details and full last names are hidden.
// @Tags         candidates
// @Produce      json
// @Param        q                 query     string  false  "Search term"
// @Param        experience_level  query     string  false  "Experience level"
// @Param        availability      query     string  false  "Availability"
// @Param        country           query     string  false  "Country"
// @Param        city              query     string  false  "City"
// @Param        commune           query     string  false  "Commune"
// @Param        page              query     int     false  "Page number"
// @Param        page_size         query     int     false  "Page size"
// @Success      200               {object}  response.Response{data=domain.PaginatedResult[domain.PublicCandidate]}
// @Router       /candidates [get]
func (h *CandidateHandler) Search(c *gin.Context) {
	result, err := h.candidateUC.Search(c, candidateFilter(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidats", result)
}

// GetPublicCandidate godoc
// @Summary      Get a public candidate profile
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.PublicCandidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetPublic(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	candidate, err := h.candidateUC.GetPublic(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profil candidat", candidate)
}

// ExportCandidates godoc
// @Summary      Export candidates to Excel
// @Description  Downloads the candidate search results as an xlsx workbook (employers only)
// @Tags         candidates
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        q                 query     string  false  "Search term"
// @Param        experience_level  query     string  false  "Experience level"
// @Param        availability      query     string  false  "Availability"
// @Param        country           query     string  false  "Country"
// @Param        city              query     string  false  "City"
// @Success      200               {file}    binary
// @Failure      403               {object}  response.Response
// @Router       /candidates/export [get]
// @Security     BearerAuth
func (h *CandidateHandler) Export(c *gin.Context) {
	data, err := h.candidateUC.Export(c, currentUserID(c), candidateFilter(c))
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("candidats-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
