package queries

import (
	"context"

	"chershare/internal/domain/account"
	"chershare/internal/domain/factory"
	"chershare/internal/domain/resource"
	"chershare/internal/pkg/errs"
)

// ResourceMetadata is the initializer payload read back verbatim.
type ResourceMetadata struct {
	ID     account.ID          `json:"id"`
	Params resource.InitParams `json:"params"`
}

type ResourceQueries interface {
	GetMetadata(ctx context.Context, resourceID account.ID) (*ResourceMetadata, error)
}

type resourceQueriesImpl struct {
	registry *resource.Registry
}

func NewResourceQueries(registry *resource.Registry) ResourceQueries {
	return &resourceQueriesImpl{registry: registry}
}

func (q *resourceQueriesImpl) GetMetadata(_ context.Context, resourceID account.ID) (*ResourceMetadata, error) {
	res, err := q.registry.Get(resourceID)
	if err != nil {
		return nil, errs.Mark(err, ErrResourceNotFound)
	}
	return &ResourceMetadata{ID: res.ID(), Params: res.Params()}, nil
}

type FactoryQueries interface {
	ContainsResource(name string) bool
	Owner() account.ID
}

type factoryQueriesImpl struct {
	coordinator *factory.Coordinator
}

func NewFactoryQueries(coordinator *factory.Coordinator) FactoryQueries {
	return &factoryQueriesImpl{coordinator: coordinator}
}

func (q *factoryQueriesImpl) ContainsResource(name string) bool {
	return q.coordinator.Contains(name)
}

func (q *factoryQueriesImpl) Owner() account.ID {
	return q.coordinator.Owner()
}
