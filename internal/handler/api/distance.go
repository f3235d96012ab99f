package api

import (
	"errors"
	"net/http"

	resdto "mechmobile/internal/handler/dto/response"
	"mechmobile/internal/infra/geo"
	"mechmobile/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DistanceHandler struct {
	distanceUseCase usecase.DistanceUseCase
}

func NewDistanceHandler(distanceUseCase usecase.DistanceUseCase) *DistanceHandler {
	return &DistanceHandler{
		distanceUseCase: distanceUseCase,
	}
}

// @Summary Resolve travel distance
// @Description Resolve the road distance from the shop to a customer address
// @Tags distance
// @Produce json
// @Param address query string true "Customer address"
// @Success 200 {object} resdto.DistanceResponse
// @Failure 400 {object} map[string]string
// @Router /distance [get]
func (h *DistanceHandler) GetDistance(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Address is required",
		})
		return
	}

	distanceRM, err := h.distanceUseCase.Resolve(c.Request.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrSuperseded):
			// A newer lookup replaced this one while it waited out the
			// debounce window.
			c.JSON(http.StatusConflict, gin.H{
				"error": "Lookup superseded by a newer request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDistanceRM(distanceRM))
}
