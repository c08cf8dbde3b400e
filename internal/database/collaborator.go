// Package database provides the optional data store checked by the /test
// endpoint.  The service itself stores nothing; the store is only opened
// so operators can check that DATABASE_URL points somewhere reachable.
package database

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotConfigured is returned by Connect when DATABASE_URL is empty.
var ErrNotConfigured = errors.New("database not configured")

// ErrNotInitialized is returned when a store has no live handle.
var ErrNotInitialized = errors.New("database handle not initialized")

// Collaborator is the capability the diagnostic handler needs.
type Collaborator interface {
	IsAvailable() bool
	ListCollections(ctx context.Context) ([]string, error)
	Close(ctx context.Context) error
}

// Connect opens the store named by rawURL within timeout.  mongodb:// and
// mongodb+srv:// URLs select MongoDB; anything else is handed to the MySQL
// driver.
//
// An empty rawURL yields (nil, ErrNotConfigured).  A failed connection
// yields a Collaborator without a handle together with the error, so the
// caller can keep serving and report the store as uninitialized.
func Connect(ctx context.Context, rawURL, name string, timeout time.Duration) (Collaborator, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if isMongoURL(rawURL) {
		s, err := OpenMongo(ctx, rawURL, name)
		if err != nil {
			return &MongoStore{}, err
		}
		return s, nil
	}
	s, err := OpenMySQL(ctx, rawURL, name)
	if err != nil {
		return &MySQLStore{}, err
	}
	return s, nil
}

func isMongoURL(u string) bool {
	l := strings.ToLower(u)
	return strings.HasPrefix(l, "mongodb://") || strings.HasPrefix(l, "mongodb+srv://")
}

func timeUntil(t time.Time) time.Duration {
	d := time.Until(t)
	if d <= 0 {
		return time.Millisecond
	}
	return d
}
