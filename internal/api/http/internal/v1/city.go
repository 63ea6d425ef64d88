package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/addresses/cities/internal/domain"
)

func (h *Handler) initCitiesRoutes(api *gin.RouterGroup) {
	cities := api.Group("/cities", h.translateErrors)
	h.citiesPath = strings.TrimSuffix(cities.BasePath(), "/")

	cities.GET("/:id", h.getCity)
	cities.HEAD("/:id", h.headCity)
	cities.POST("", h.createCity)
}

type createCityRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"Springfield"`
} // @name CreateCityRequest

// @Summary Get City
// @Tags Cities
// @Description Get a city by its id
// @ModuleID getCity
// @Accept  json
// @Produce  json
// @Param id path int true "City id"
// @Success 200 {object} domain.City
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{id} [get]
func (h *Handler) getCity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, CityInvalidIDCode)
		return
	}
	if id < 1 {
		errorResponse(c, http.StatusNotFound, CityNotFoundCode)
		return
	}

	city, err := h.cities.Find(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, city)
}

// headCity answers every HEAD with an empty 204 and never touches storage.
//
// @Summary Head City
// @Tags Cities
// @Description Always returns an empty result
// @ModuleID headCity
// @Param id path int true "City id"
// @Success 204
// @Router /cities/{id} [head]
func (h *Handler) headCity(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// @Summary Create City
// @Tags Cities
// @Description Store a new city; any id in the body is ignored
// @ModuleID createCity
// @Accept  json
// @Produce  json
// @Param input body createCityRequest true "City"
// @Success 201 {object} domain.City
// @Header 201 {string} Location "/api/cities/{id}"
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities [post]
func (h *Handler) createCity(c *gin.Context) {
	var req createCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	saved, err := h.cities.Add(c.Request.Context(), &domain.City{Name: req.Name})
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.logger.Info("city created", zap.Int64("id", saved.ID))

	c.Header("Location", h.citiesPath+"/"+strconv.FormatInt(saved.Key(), 10))
	c.JSON(http.StatusCreated, saved)
}
