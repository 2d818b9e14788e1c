package store

import (
	"fmt"

	"github.com/robohr/ai-service/config"
	"github.com/robohr/ai-service/internal"
	"github.com/robohr/ai-service/pkg/models"
)

var log = internal.GetLogger()

const (
	StoreTypeMemory   = "memory"
	StoreTypePostgres = "postgres"
)

// NewHistoryStore creates a command history store based on the store.type
// config value.
func NewHistoryStore(cfg *config.Config) (models.HistoryStore, error) {
	switch cfg.Store.Type {
	case StoreTypeMemory, "":
		return NewMemoryStore(defaultMemoryCapacity), nil
	case StoreTypePostgres:
		db := NewPostgresConn(cfg.Store.Postgres.DSN)
		if cfg.Log.Level == "debug" {
			pgDebugLogging(db)
		}
		return NewPostgresStore(db)
	default:
		return nil, fmt.Errorf("store.type (%s) is not supported", cfg.Store.Type)
	}
}
