package asset

import "time"

type AssetStatus string

const (
	AssetStatusAvailable AssetStatus = "available"
	AssetStatusAssigned  AssetStatus = "assigned"
	AssetStatusRetired   AssetStatus = "retired"
)

type Asset struct {
	ID       string
	Tag      string
	Name     string
	Category string
	Status   AssetStatus

	AssignedTo *string // employee ID
	AssignedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	AssignedToName *string
}
