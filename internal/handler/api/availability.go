package api

import (
	"net/http"
	"time"

	resdto "mechmobile/internal/handler/dto/response"
	"mechmobile/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
	location            *time.Location
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase, location *time.Location) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
		location:            location,
	}
}

// @Summary Get slot availability
// @Description Get the three canonical time slots for a date with availability
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date is required",
		})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	slotsRM, err := h.availabilityUseCase.GetSlots(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SlotResponse, len(slotsRM))
	for i, rm := range slotsRM {
		response[i] = resdto.FromSlotRM(rm)
	}

	c.JSON(http.StatusOK, response)
}
