package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starkspartacus/job-sub000/internal/delivery/http/response"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
	"github.com/starkspartacus/job-sub000/pkg/location"
)

type LocationHandler struct{}

func NewLocationHandler(public *gin.RouterGroup) {
	handler := &LocationHandler{}

	locations := public.Group("/locations")
	{
		locations.GET("", handler.Table)
		locations.GET("/countries", handler.Countries)
		locations.GET("/cities", handler.Cities)
		locations.GET("/communes", handler.Communes)
		locations.POST("/select", handler.Select)
	}
}

// SelectRequest changes one level of a picker. Lower levels are cleared.
type SelectRequest struct {
	location.Selection
	Level string `json:"level" binding:"required"`
	Value string `json:"value"`
}

type SelectResult struct {
	Selection location.Selection `json:"selection"`
	Options   location.Options   `json:"options"`
}

// LocationTable godoc
// @Summary      Full location table
// @Tags         locations
// @Produce      json
// @Success      200  {object}  response.Response{data=[]location.Country}
// @Router       /locations [get]
func (h *LocationHandler) Table(c *gin.Context) {
	response.Success(c, http.StatusOK, "Localisations", location.Table())
}

// ListCountries godoc
// @Summary      List countries
// @Tags         locations
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Router       /locations/countries [get]
func (h *LocationHandler) Countries(c *gin.Context) {
	response.Success(c, http.StatusOK, "Pays", location.Countries())
}

// ListCities godoc
// @Summary      List the cities of a country
// @Tags         locations
// @Produce      json
// @Param        country  query     string  true  "Country"
// @Success      200      {object}  response.Response{data=[]string}
// @Router       /locations/cities [get]
func (h *LocationHandler) Cities(c *gin.Context) {
	response.Success(c, http.StatusOK, "Villes", location.Cities(c.Query("country")))
}

// ListCommunes godoc
// @Summary      List the communes of a city
// @Tags         locations
// @Produce      json
// @Param        country  query     string  true  "Country"
// @Param        city     query     string  true  "City"
// @Success      200      {object}  response.Response{data=[]string}
// @Router       /locations/communes [get]
func (h *LocationHandler) Communes(c *gin.Context) {
	response.Success(c, http.StatusOK, "Communes", location.Communes(c.Query("country"), c.Query("city")))
}

// SelectLocation godoc
// @Summary      Apply a cascading selection change
// @Description  Sets country, city or commune, clears the levels below and returns the new options
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        change  body      SelectRequest  true  "Current selection, level and value"
// @Success      200     {object}  response.Response{data=SelectResult}
// @Failure      400     {object}  response.Response
// @Router       /locations/select [post]
func (h *LocationHandler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	sel := req.Selection
	if !sel.Apply(location.Level(req.Level), req.Value) {
		c.Error(apperror.BadRequest("Niveau inconnu : country, city ou commune"))
		return
	}

	response.Success(c, http.StatusOK, "Sélection", SelectResult{Selection: sel, Options: sel.Options()})
}
