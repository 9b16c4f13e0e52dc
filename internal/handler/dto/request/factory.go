package request

import (
	"chershare/internal/domain/resource"
)

type CreateResourceRequest struct {
	Name          string              `json:"name" binding:"required"`
	Owner         string              `json:"owner" binding:"required"`
	AttachedFunds uint64              `json:"attached_funds"`
	InitParams    resource.InitParams `json:"init_params" binding:"required"`
}

type SetOwnerRequest struct {
	NewOwner      string `json:"new_owner" binding:"required"`
	AttachedFunds uint64 `json:"attached_funds"`
}
