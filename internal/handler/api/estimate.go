package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "mechmobile/internal/handler/dto/request"
	resdto "mechmobile/internal/handler/dto/response"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EstimateHandler struct {
	estimateUseCase usecase.EstimateUseCase
	location        *time.Location
}

func NewEstimateHandler(estimateUseCase usecase.EstimateUseCase, location *time.Location) *EstimateHandler {
	return &EstimateHandler{
		estimateUseCase: estimateUseCase,
		location:        location,
	}
}

// @Summary Create estimate
// @Description Price a service selection and persist the quote
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEstimateRequest true "Estimate request"
// @Success 201 {object} resdto.EstimateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var req reqdto.CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput(h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	result, err := h.estimateUseCase.CreateEstimate(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoServiceSelected):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "At least one service must be selected",
			})
		case errors.Is(err, errs.ErrMissingRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Required field missing",
			})
		case errors.Is(err, errs.ErrTermsNotAccepted):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Terms and conditions must be accepted",
			})
		case errors.Is(err, errs.ErrInvalidVIN):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "VIN must not exceed 17 characters",
			})
		case errors.Is(err, errs.ErrInsufficientLead):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Appointments require at least 72 hours notice",
			})
		case errors.Is(err, errs.ErrOutsideServiceArea):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Address is outside the 100 km service area",
			})
		case errors.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEstimateResult(result))
}
