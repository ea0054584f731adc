package catalog

import "github.com/pkg/errors"

var (
	ErrContentNotFound      = errors.New("content not found")
	ErrSeasonNotFound       = errors.New("season not found")
	ErrStorageNotConfigured = errors.New("storage not configured")
)
