package services

import (
	"context"
	"fmt"

	"github.com/localnerve/enxovaldb/internal/config"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/sirupsen/logrus"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Store        string            `json:"store"`
	Documents    string            `json:"documents"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every check passed.
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthCheck pings the document store and loads every document the service serves.
func HealthCheck(ctx context.Context, cfg *config.Config, docs store.DocumentStore, log logrus.FieldLogger) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: map[string]string{"store_type": cfg.StoreType},
	}

	if err := docs.Ping(ctx); err != nil {
		result.Status = "unhealthy"
		result.Store = "unreachable"
		result.Details["store_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Store ping failed: %v", err)
		log.WithError(err).Warn("Health check failed - store ping")
		return result
	}
	result.Store = "ok"
	if cfg.StoreType == config.StoreSQL {
		result.Details["database_type"] = cfg.DBType
		result.Details["database_name"] = cfg.DBDatabase
	} else {
		result.Details["data_dir"] = cfg.DataDir
	}

	result.Documents = "ok"
	for _, name := range store.Names {
		if _, err := docs.Load(ctx, name); err != nil {
			result.Status = "unhealthy"
			result.Documents = "error"
			result.Details[name+"_error"] = err.Error()
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("Document %s unreadable: %v", name, err)
			} else {
				result.ErrorMessage += fmt.Sprintf("; document %s unreadable: %v", name, err)
			}
			log.WithError(err).WithField("document", name).Warn("Health check failed - document load")
		}
	}

	if result.Healthy() {
		log.Debug("Health check passed - all systems operational")
	}

	return result
}
