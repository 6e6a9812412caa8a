package asset

import "errors"

var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrAssetNotAvailable = errors.New("asset is not available for assignment")
	ErrAssetNotAssigned  = errors.New("asset is not currently assigned")
	ErrAssetTagExists    = errors.New("asset tag already exists")
)
