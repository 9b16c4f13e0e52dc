package api

import (
	"errors"
	"net/http"

	"chershare/internal/domain/account"
	resdto "chershare/internal/handler/dto/response"
	"chershare/internal/handler/httperr"
	"chershare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	resourceQueries queries.ResourceQueries
}

func NewResourceHandler(resourceQueries queries.ResourceQueries) *ResourceHandler {
	return &ResourceHandler{
		resourceQueries: resourceQueries,
	}
}

// @Summary Get resource metadata
// @Description Return the initializer payload of a resource exactly as supplied
// @Tags resources
// @Produce json
// @Param id path string true "Resource account ID"
// @Success 200 {object} resdto.ResourceMetadataResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c *gin.Context) {
	resourceID, err := account.NewID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID format", nil)
		return
	}

	metadata, err := h.resourceQueries.GetMetadata(c.Request.Context(), resourceID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceMetadata(metadata))
}
