package response

import (
	"chershare/internal/domain/resource"
	"chershare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceMetadataResponse struct {
	ID     string              `json:"id"`
	Params resource.InitParams `json:"params"`
}

type CreateResourceResponse struct {
	AttemptID uuid.UUID `json:"attemptId"`
	Status    string    `json:"status"`
}

type FactoryInfoResponse struct {
	Owner string `json:"owner"`
}

type ContainsResourceResponse struct {
	Name   string `json:"name"`
	Exists bool   `json:"exists"`
}

func FromResourceMetadata(m *queries.ResourceMetadata) *ResourceMetadataResponse {
	return &ResourceMetadataResponse{
		ID:     m.ID.String(),
		Params: m.Params,
	}
}
