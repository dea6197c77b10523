package refdata

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /reference
func (h *Handler) GetBundle(c *gin.Context) {
	bundle, err := h.service.LoadAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reference data"})
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// GET /reference/governorates?country=EG
func (h *Handler) GetGovernorates(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "country is required"})
		return
	}

	governorates, err := h.service.GovernoratesByCountry(c.Request.Context(), country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load governorates"})
		return
	}

	c.JSON(http.StatusOK, governorates)
}

// GET /reference/cities?governorate=1
func (h *Handler) GetCities(c *gin.Context) {
	governorateID, err := strconv.Atoi(c.Query("governorate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid governorate id"})
		return
	}

	cities, err := h.service.CitiesByGovernorate(c.Request.Context(), governorateID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cities"})
		return
	}

	c.JSON(http.StatusOK, cities)
}
