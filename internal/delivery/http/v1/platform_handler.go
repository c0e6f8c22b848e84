package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starkspartacus/job-sub000/internal/delivery/http/response"
	"github.com/starkspartacus/job-sub000/internal/domain"
)

// HealthChecker reports per-dependency status and whether all are healthy.
type HealthChecker interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type PlatformHandler struct {
	dashboardUC domain.DashboardUsecase
	health      HealthChecker
}

func NewPlatformHandler(public, protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase, health HealthChecker) {
	handler := &PlatformHandler{dashboardUC: dashboardUC, health: health}

	public.GET("/health", handler.Health)
	public.GET("/stats", handler.Stats)
	public.GET("/meta/options", handler.Options)

	protected.GET("/dashboard", handler.Dashboard)
}

// Health godoc
// @Summary      Health check
// @Description  Database, cache and storage status. 503 when any is failing.
// @Tags         platform
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *PlatformHandler) Health(c *gin.Context) {
	status, ok := h.health.Check(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusServiceUnavailable, "Service dégradé", status)
		return
	}
	response.Success(c, http.StatusOK, "System operational", status)
}

// PlatformStats godoc
// @Summary      Home page counters
// @Tags         platform
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PlatformStats}
// @Router       /stats [get]
func (h *PlatformHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUC.GetPlatformStats(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Statistiques", stats)
}

// MetaOptions godoc
// @Summary      Select options
// @Description  Categories, contract types, levels and the other value/label lists used by forms and filters
// @Tags         platform
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.MetaOptions}
// @Router       /meta/options [get]
func (h *PlatformHandler) Options(c *gin.Context) {
	response.Success(c, http.StatusOK, "Options", domain.AllOptions())
}

// Dashboard godoc
// @Summary      Role dashboard
// @Description  Profile completeness and counts for candidates, job counters and latest jobs for employers
// @Tags         platform
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Dashboard}
// @Failure      401  {object}  response.Response
// @Router       /dashboard [get]
// @Security     BearerAuth
func (h *PlatformHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.dashboardUC.GetDashboard(c, currentUserID(c), c.GetString(string(domain.KeyUserRole)))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Tableau de bord", dashboard)
}
