package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/addresses/cities/internal/repository"
)

// @title Cities API
// @version 1.0
// @description City resources backed by a pluggable repository.

// @BasePath /api

type Handler struct {
	logger *zap.Logger
	cities repository.Cities

	citiesPath string
}

// NewHandler panics when a collaborator is missing: that is a wiring bug, not
// a request error.
func NewHandler(logger *zap.Logger, cities repository.Cities) *Handler {
	if logger == nil {
		panic("v1: logger is required")
	}
	if cities == nil {
		panic("v1: cities repository is required")
	}

	return &Handler{
		logger: logger.Named("cities"),
		cities: cities,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initCitiesRoutes(api)
}
