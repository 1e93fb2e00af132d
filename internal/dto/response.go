package dto

import "admin-console/pkg/types"

type PaginatedSuccessResponse[T any] struct {
	Status     bool              `json:"status"`
	Message    string            `json:"message"`
	Data       []T               `json:"data"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
}
