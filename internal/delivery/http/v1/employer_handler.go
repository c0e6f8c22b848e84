package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/starkspartacus/job-sub000/internal/delivery/http/response"
	"github.com/starkspartacus/job-sub000/internal/domain"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
}

func NewEmployerHandler(public, employerOnly *gin.RouterGroup, employerUC domain.EmployerUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	me := employerOnly.Group("/employers/me")
	{
		me.GET("", handler.GetProfile)
		me.PUT("", handler.UpdateProfile)
		me.GET("/jobs", handler.ListJobs)
	}

	public.GET("/employers/:id", handler.GetPublic)
}

type CompanyRequest struct {
	CompanyName string  `json:"company_name"`
	CompanyType string  `json:"company_type"`
	CompanySize string  `json:"company_size"`
	Address     string  `json:"address"`
	Country     string  `json:"country"`
	City        string  `json:"city"`
	Commune     string  `json:"commune"`
	Description string  `json:"description"`
	Website     string  `json:"website"`
	Phone       *string `json:"phone"`
}

// GetEmployerProfile godoc
// @Summary      Get company profile
// @Tags         employers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EmployerProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/me [get]
// @Security     BearerAuth
func (h *EmployerHandler) GetProfile(c *gin.Context) {
	profile, err := h.employerUC.GetMyProfile(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profil entreprise", profile)
}

// UpdateEmployerProfile godoc
// @Summary      Update company profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        company  body      CompanyRequest  true  "Company fields"
// @Success      200      {object}  response.Response{data=domain.EmployerProfile}
// @Failure      400      {object}  response.Response
// @Router       /employers/me [put]
// @Security     BearerAuth
func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	profile := &domain.EmployerProfile{
		CompanyName: strings.TrimSpace(req.CompanyName),
		CompanyType: req.CompanyType,
		CompanySize: req.CompanySize,
		Address:     strings.TrimSpace(req.Address),
		Country:     req.Country,
		City:        req.City,
		Commune:     req.Commune,
		Description: strings.TrimSpace(req.Description),
		Website:     strings.TrimSpace(req.Website),
		Phone:       req.Phone,
	}

	updated, err := h.employerUC.UpdateMyProfile(c, currentUserID(c), profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profil entreprise mis à jour", updated)
}

// ListEmployerJobs godoc
// @Summary      List the employer's jobs
// @Description  Every status by default; filter with status=draft|active|closed
// @Tags         employers
// @Produce      json
// @Param        status     query     string  false  "Job status"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response{data=domain.PaginatedResult[domain.Job]}
// @Failure      400        {object}  response.Response
// @Router       /employers/me/jobs [get]
// @Security     BearerAuth
func (h *EmployerHandler) ListJobs(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := h.employerUC.ListMyJobs(c, currentUserID(c), c.Query("status"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Mes offres", result)
}

// GetPublicEmployer godoc
// @Summary      Company page
// @Description  Public company profile with its active jobs
// @Tags         employers
// @Produce      json
// @Param        id   path      int  true  "Employer ID"
// @Success      200  {object}  response.Response{data=domain.EmployerPublic}
// @Failure      404  {object}  response.Response
// @Router       /employers/{id} [get]
func (h *EmployerHandler) GetPublic(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	employer, err := h.employerUC.GetPublic(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Entreprise", employer)
}
