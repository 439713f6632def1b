// Package testutil starts throwaway databases for integration tests and local development.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/localnerve/enxovaldb/internal/config"
	"github.com/localnerve/enxovaldb/internal/database"
	"github.com/localnerve/enxovaldb/internal/logger"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Default images per DB_TYPE. DB_IMAGE overrides them.
var defaultImages = map[string]string{
	"postgres": "postgres:16-alpine",
	"mariadb":  "mariadb:11",
	"mysql":    "mysql:8.4",
}

var defaultPorts = map[string]string{
	"postgres": "5432",
	"mariadb":  "3306",
	"mysql":    "3306",
}

// dataDirs are mounted as tmpfs, the data does not outlive the container.
var dataDirs = map[string]string{
	"postgres": "/var/lib/postgresql/data",
	"mariadb":  "/var/lib/mysql",
	"mysql":    "/var/lib/mysql",
}

const (
	testDatabase = "enxovaldb"
	testUser     = "enxoval"
	testPassword = "enxoval-secret"
)

// DatabaseContainer is a running database and the config that reaches it from the host.
type DatabaseContainer struct {
	Container testcontainers.Container
	Config    *config.Config
}

// Terminate stops and removes the container.
func (d *DatabaseContainer) Terminate(t *testing.T) {
	if d == nil || d.Container == nil {
		return
	}
	if err := d.Container.Terminate(context.Background()); err != nil {
		logMessage(t, "Failed to terminate database container: %v", err)
	}
}

// StartDatabase runs a database of dbType and waits until it accepts connections.
func StartDatabase(ctx context.Context, t *testing.T, dbType string) (*DatabaseContainer, error) {
	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = defaultImages[dbType]
	}
	if image == "" {
		return nil, fmt.Errorf("no container image for DB_TYPE %s", dbType)
	}

	tcpDbPort, err := nat.NewPort("tcp", defaultPorts[dbType])
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	hostConfigModifier := func(hostConfig *container.HostConfig) {
		hostConfig.Tmpfs = map[string]string{dataDirs[dbType]: "rw"}
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:              image,
			ExposedPorts:       []string{string(tcpDbPort)},
			Env:                getDBInitEnvMap(dbType),
			HostConfigModifier: hostConfigModifier,
			WaitingFor:         wait.ForListeningPort(tcpDbPort).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", image, err)
	}
	dc := &DatabaseContainer{Container: dbContainer}

	dbHost, err := dbContainer.Host(ctx)
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	dbPort, err := dbContainer.MappedPort(ctx, tcpDbPort)
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	dc.Config = &config.Config{
		StoreType:         config.StoreSQL,
		DBType:            dbType,
		DBHost:            dbHost,
		DBPort:            dbPort.Port(),
		DBDatabase:        testDatabase,
		DBUser:            testUser,
		DBPassword:        testPassword,
		DBConnectionLimit: 5,
		LogLevel:          "warn",
		LogFormat:         "text",
	}

	if err := waitForDatabase(dc.Config); err != nil {
		dc.Terminate(t)
		return nil, err
	}

	logMessage(t, "Database %s listening on %s:%s", image, dbHost, dbPort.Port())
	return dc, nil
}

// waitForDatabase retries until the server finishes its init scripts.
// The port opens before the database accepts logins.
func waitForDatabase(cfg *config.Config) error {
	var err error
	for i := 0; i < 30; i++ {
		db, connErr := database.Connect(cfg, logger.Discard())
		if connErr == nil {
			database.Close(db)
			return nil
		}
		err = connErr
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database not ready after 30 seconds: %w", err)
}

func getDBInitEnvMap(dbType string) map[string]string {
	switch dbType {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_USER":     testUser,
			"POSTGRES_DB":       testDatabase,
		}
	case "mariadb", "mysql":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": testPassword,
			"MYSQL_DATABASE":      testDatabase,
			"MYSQL_USER":          testUser,
			"MYSQL_PASSWORD":      testPassword,
		}
	}
	return nil
}

func logMessage(t *testing.T, format string, args ...interface{}) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
