package entities

import (
	"admin-console/pkg/types"
)

type Permission struct {
	ID          uint64 `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`

	types.BaseEntity
}
