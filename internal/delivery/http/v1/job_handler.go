package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/starkspartacus/job-sub000/internal/delivery/http/response"
	"github.com/starkspartacus/job-sub000/internal/domain"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, employerOnly *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public routes only ever see active jobs
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.Search)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	employerJobs := employerOnly.Group("/jobs")
	{
		employerJobs.POST("", handler.Create)
		employerJobs.PUT("/:id", handler.Update)
		employerJobs.PATCH("/:id/status", handler.ChangeStatus)
		employerJobs.DELETE("/:id", handler.Delete)
	}
}

type JobRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	ContractType    string   `json:"contract_type"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryMin       *int64   `json:"salary_min"`
	SalaryMax       *int64   `json:"salary_max"`
	Requirements    []string `json:"requirements"`
	Country         string   `json:"country"`
	City            string   `json:"city"`
	Commune         string   `json:"commune"`
	Status          string   `json:"status"`
}

func (r *JobRequest) toJob() *domain.Job {
	requirements := make([]string, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		if req = strings.TrimSpace(req); req != "" {
			requirements = append(requirements, req)
		}
	}
	return &domain.Job{
		Title:           strings.TrimSpace(r.Title),
		Description:     strings.TrimSpace(r.Description),
		Category:        r.Category,
		ContractType:    r.ContractType,
		ExperienceLevel: r.ExperienceLevel,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		Requirements:    requirements,
		Country:         r.Country,
		City:            r.City,
		Commune:         r.Commune,
		Status:          domain.JobStatus(r.Status),
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateJob godoc
// @Summary      Create a new job
// @Description  Create a job offer for the employer's company. Status defaults to draft.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	job := req.toJob()
	if err := h.jobUC.CreateJob(c, currentUserID(c), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Offre créée", job)
}

// SearchJobs godoc
// @Summary      Search active jobs
// @Description  Full-text and faceted search over active job offers
// @Tags         jobs
// @Produce      json
// @Param        q                 query     string  false  "Search term"
// @Param        category          query     string  false  "Category"
// @Param        contract_type     query     string  false  "Contract type"
// @Param        experience_level  query     string  false  "Experience level"
// @Param        country           query     string  false  "Country"
// @Param        city              query     string  false  "City"
// @Param        commune           query     string  false  "Commune"
// @Param        page              query     int     false  "Page number"
// @Param        page_size         query     int     false  "Page size"
// @Success      200               {object}  response.Response{data=domain.PaginatedResult[domain.JobWithEmployer]}
// @Router       /jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	page, pageSize := pageParams(c)
	filter := domain.JobFilter{
		Term:            c.Query("q"),
		Category:        c.Query("category"),
		ContractType:    c.Query("contract_type"),
		ExperienceLevel: c.Query("experience_level"),
		Country:         c.Query("country"),
		City:            c.Query("city"),
		Commune:         c.Query("commune"),
		Page:            page,
		PageSize:        pageSize,
	}

	result, err := h.jobUC.Search(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offres d'emploi", result)
}

// GetJobDetails godoc
// @Summary      Get active job details
// @Description  Job offer with the company card. Drafts and closed offers are not found.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobWithEmployer}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobUC.GetPublicJob(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Détail de l'offre", job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Replace the editable fields of one of the employer's jobs. Status is changed separately.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	job := req.toJob()
	job.ID = id
	if err := h.jobUC.UpdateJob(c, currentUserID(c), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offre mise à jour", job)
}

// ChangeJobStatus godoc
// @Summary      Publish, close or unpublish a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id      path      int            true  "Job ID"
// @Param        status  body      StatusRequest  true  "draft, active or closed"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{id}/status [patch]
// @Security     BearerAuth
func (h *JobHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	status := domain.JobStatus(req.Status)
	if err := h.jobUC.ChangeStatus(c, currentUserID(c), id, status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Statut mis à jour", gin.H{"id": id, "status": status})
}

// DeleteJob godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.jobUC.DeleteJob(c, currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offre supprimée", nil)
}
