package api

import (
	"net/http"

	resdto "mechmobile/internal/handler/dto/response"
	"mechmobile/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List services
// @Description List the service catalog with bilingual names and options
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Failure 500 {object} map[string]string
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	servicesRM, err := h.catalogUseCase.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ServiceResponse, len(servicesRM))
	for i, rm := range servicesRM {
		response[i] = resdto.FromServiceRM(rm)
	}

	c.JSON(http.StatusOK, response)
}
