// Package storage implements the persistence gateway: an opaque key-value
// store over SQLite holding the three serialized application records.
package storage

import "context"

// Record keys. Each key maps to one JSON document that is always read and
// replaced wholesale.
const (
	KeyActiveSprint     = "active_sprint"
	KeyCompletedSprints = "completed_sprints"
	KeyDailyCheckins    = "daily_checkins"
)

// Gateway defines the key-value operations the sprint store depends on.
//
//go:generate mockgen -source=gateway.go -destination=../sprint/mock_gateway_test.go -package=sprint
type Gateway interface {
	// Get returns the stored value for key, with ok=false when absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes the value under key. Removing an absent key is not
	// an error.
	Remove(ctx context.Context, key string) error
}

var _ Gateway = (*DB)(nil)
