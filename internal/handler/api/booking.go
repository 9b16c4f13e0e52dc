package api

import (
	"errors"
	"net/http"
	"strconv"

	"chershare/internal/domain/account"
	"chershare/internal/domain/pricing"
	reqdto "chershare/internal/handler/dto/request"
	resdto "chershare/internal/handler/dto/response"
	"chershare/internal/handler/middleware"
	"chershare/internal/usecase/commands"
	"chershare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book a slot
// @Description Book a time slot on a resource; attached funds must cover the quoted price
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource account ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resources/{id}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	callerID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resourceID, err := account.NewID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Book(c.Request.Context(), callerID, commands.BookParams{
		ResourceID:    resourceID,
		BeginMs:       *req.BeginMs,
		EndMs:         *req.EndMs,
		AttachedFunds: pricing.Amount(req.AttachedFunds),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		case errors.Is(err, commands.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking interval",
			})
		case errors.Is(err, commands.ErrDurationTooShort):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking shorter than the resource's minimum duration",
			})
		case errors.Is(err, commands.ErrBookingCollision):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested slot collides with an existing booking",
			})
		case errors.Is(err, commands.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Attached funds below the booking price",
			})
		case errors.Is(err, commands.ErrPricingOverflow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking price exceeds representable range",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookResult(result))
}

// @Summary Cancel a booking
// @Description Cancel an existing booking; the refund follows the resource's pricing policy
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource account ID"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.CancellationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id}/bookings/{bookingId} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	callerID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resourceID, err := account.NewID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	result, err := h.bookingCommands.Cancel(c.Request.Context(), callerID, resourceID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrCancelForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the booking's consumer may cancel it",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Quote a slot
// @Description Compute the price Book would charge for the slot, without booking it
// @Tags bookings
// @Produce json
// @Param id path string true "Resource account ID"
// @Param begin_ms query int true "Slot begin (epoch ms)"
// @Param end_ms query int true "Slot end (epoch ms)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id}/quote [get]
func (h *BookingHandler) GetQuote(c *gin.Context) {
	resourceID, err := account.NewID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	price, err := h.bookingQueries.Quote(c.Request.Context(), resourceID, *req.BeginMs, *req.EndMs)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		case errors.Is(err, queries.ErrQuoteFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot cannot be priced",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.QuoteResponse{Price: uint64(price)})
}

// @Summary List bookings
// @Description List the committed bookings of a resource
// @Tags bookings
// @Produce json
// @Param id path string true "Resource account ID"
// @Success 200 {array} resdto.BookingListItem
// @Failure 400 {object} map[string]string
// @Router /resources/{id}/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	resourceID, err := account.NewID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	views, err := h.bookingQueries.ListByResource(c.Request.Context(), resourceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListItem, len(views))
	for i, v := range views {
		response[i] = resdto.FromBookingView(v)
	}

	c.JSON(http.StatusOK, response)
}
