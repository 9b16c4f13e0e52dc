//go:build unit || e2e

package builder

import (
	"chershare/internal/domain/account"
	"chershare/internal/domain/pricing"
	"chershare/internal/domain/resource"
)

type ResourceBuilder struct {
	ID            string
	Title         string
	Description   string
	Contact       string
	Coordinates   [2]float64
	MinDurationMs int64
	ImageURLs     []string
	Tags          []string
	Pricing       pricing.Policy
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:            "bike-shed.factory.test",
		Title:         "Bike shed",
		Description:   "Covered shed with two stands",
		Contact:       "shed@example.com",
		Coordinates:   [2]float64{52.52, 13.405},
		MinDurationMs: 3_600_000, // one hour
		ImageURLs:     []string{"https://example.com/shed.jpg"},
		Tags:          []string{"bike", "storage"},
		Pricing:       pricing.FlatRent(1),
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) WithTitle(title string) *ResourceBuilder {
	b.Title = title
	return b
}

func (b *ResourceBuilder) WithMinDuration(ms int64) *ResourceBuilder {
	b.MinDurationMs = ms
	return b
}

func (b *ResourceBuilder) WithPricing(p pricing.Policy) *ResourceBuilder {
	b.Pricing = p
	return b
}

func (b *ResourceBuilder) BuildParams() resource.InitParams {
	return resource.InitParams{
		Title:         b.Title,
		Description:   b.Description,
		Contact:       b.Contact,
		Coordinates:   b.Coordinates,
		MinDurationMs: b.MinDurationMs,
		ImageURLs:     b.ImageURLs,
		Tags:          b.Tags,
		Pricing:       b.Pricing,
	}
}

func (b *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	id, err := account.NewID(b.ID)
	if err != nil {
		return nil, err
	}
	return resource.New(id, b.BuildParams())
}

func (b *ResourceBuilder) BuildRequestDTO() map[string]any {
	return map[string]any{
		"begin_ms":       int64(10_000_000),
		"end_ms":         int64(13_600_000),
		"attached_funds": uint64(10_000_000),
	}
}
