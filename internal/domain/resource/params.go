package resource

import (
	"errors"
	"strings"

	"chershare/internal/domain/pricing"
)

var (
	ErrEmptyTitle          = errors.New("resource title cannot be empty")
	ErrTitleTooLong        = errors.New("resource title is too long (max 255 characters)")
	ErrNegativeMinDuration = errors.New("minimum booking duration cannot be negative")
)

const MaxTitleLength = 255

// InitParams is the full initializer payload of a resource instance.
// Coordinates are opaque display values for off-system indexers and
// never enter any arithmetic.
type InitParams struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Contact       string         `json:"contact"`
	Coordinates   [2]float64     `json:"coordinates"`
	MinDurationMs int64          `json:"min_duration_ms"`
	ImageURLs     []string       `json:"image_urls"`
	Tags          []string       `json:"tags"`
	Pricing       pricing.Policy `json:"pricing"`
}

func (p InitParams) Validate() error {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if p.MinDurationMs < 0 {
		return ErrNegativeMinDuration
	}
	return p.Pricing.Validate()
}
