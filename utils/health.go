package utils

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of the service's backing stores.
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	Cache        bool      `json:"cache"`
	SessionStore bool      `json:"sessionStore"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks against Mongo and both
// Redis clients and updates the in-memory snapshot.
func StartHealthMonitor(mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := HealthStatus{
				Mongo:        mongoClient.Ping(ctx, nil) == nil,
				Cache:        GetCacheClient().Ping(ctx).Err() == nil,
				SessionStore: GetSessionCacheClient().Ping(ctx).Err() == nil,
				CheckedAt:    time.Now(),
			}

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
