package api

import (
	"errors"
	"net/http"

	"chershare/internal/domain/pricing"
	reqdto "chershare/internal/handler/dto/request"
	resdto "chershare/internal/handler/dto/response"
	"chershare/internal/handler/middleware"
	"chershare/internal/usecase/commands"
	"chershare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FactoryHandler struct {
	factoryCommands commands.FactoryCommands
	factoryQueries  queries.FactoryQueries
}

func NewFactoryHandler(factoryCommands commands.FactoryCommands, factoryQueries queries.FactoryQueries) *FactoryHandler {
	return &FactoryHandler{
		factoryCommands: factoryCommands,
		factoryQueries:  factoryQueries,
	}
}

// @Summary Create resource
// @Description Start provisioning a new resource instance under the factory's namespace
// @Tags factory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceRequest true "Resource creation request"
// @Success 202 {object} resdto.CreateResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /factory/resources [post]
func (h *FactoryHandler) CreateResource(c *gin.Context) {
	callerID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateResourceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.factoryCommands.CreateResource(c.Request.Context(), callerID, commands.CreateResourceParams{
		Name:          req.Name,
		Owner:         req.Owner,
		InitParams:    req.InitParams,
		AttachedFunds: pricing.Amount(req.AttachedFunds),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Resource name already taken",
			})
		case errors.Is(err, commands.ErrInvalidName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid resource name",
			})
		case errors.Is(err, commands.ErrInvalidOwner):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid owner account",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid resource parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Provisioning continues asynchronously; the attempt id lets the
	// caller correlate the eventual outcome event.
	c.JSON(http.StatusAccepted, resdto.CreateResourceResponse{
		AttemptID: result.AttemptID,
		Status:    "pending",
	})
}

// @Summary Transfer factory ownership
// @Description Hand the factory to a new owner account; owner-only
// @Tags factory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetOwnerRequest true "Ownership transfer request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /factory/owner [put]
func (h *FactoryHandler) SetOwner(c *gin.Context) {
	callerID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SetOwnerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.factoryCommands.SetOwner(c.Request.Context(), callerID, req.NewOwner, pricing.Amount(req.AttachedFunds))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDepositRequired):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "A non-zero deposit is required",
			})
		case errors.Is(err, commands.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the factory owner can call this method",
			})
		case errors.Is(err, commands.ErrSameOwner):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "New owner must differ from the caller",
			})
		case errors.Is(err, commands.ErrInvalidOwner):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid owner account",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get factory info
// @Description Return the factory's current owner
// @Tags factory
// @Produce json
// @Success 200 {object} resdto.FactoryInfoResponse
// @Router /factory [get]
func (h *FactoryHandler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FactoryInfoResponse{
		Owner: h.factoryQueries.Owner().String(),
	})
}

// @Summary Check resource name
// @Description Report whether a resource with this name has been provisioned
// @Tags factory
// @Produce json
// @Param name path string true "Resource name"
// @Success 200 {object} resdto.ContainsResourceResponse
// @Router /factory/resources/{name} [get]
func (h *FactoryHandler) ContainsResource(c *gin.Context) {
	name := c.Param("name")
	c.JSON(http.StatusOK, resdto.ContainsResourceResponse{
		Name:   name,
		Exists: h.factoryQueries.ContainsResource(name),
	})
}
