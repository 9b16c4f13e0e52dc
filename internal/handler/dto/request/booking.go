package request

// Begin/End are pointers so an explicit epoch-0 begin binds: with plain
// int64 the required validator treats zero as missing.
type CreateBookingRequest struct {
	BeginMs       *int64 `json:"begin_ms" binding:"required"`
	EndMs         *int64 `json:"end_ms" binding:"required"`
	AttachedFunds uint64 `json:"attached_funds"`
}

type QuoteRequest struct {
	BeginMs *int64 `form:"begin_ms" binding:"required"`
	EndMs   *int64 `form:"end_ms" binding:"required"`
}
