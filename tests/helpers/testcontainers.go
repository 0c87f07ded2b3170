// This file is a helper for running tests with testcontainers.
// It is used by the integration tests and by the standalone testcontainers
// executable for local development.
// Expects environment variables to be loaded from .env files.
//

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestContainers holds the database container and its network.
type TestContainers struct {
	Network     *testcontainers.DockerNetwork
	DBContainer testcontainers.Container
	DBHost      string
	DBPort      string
}

// Terminate tears down the containers and network. Safe to call with a nil
// *testing.T from the standalone executable.
func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database container: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// CreateDBContainer starts a MariaDB container configured from the
// environment and waits until the content database accepts connections.
// The mapped host and port are recorded on the returned TestContainers.
func CreateDBContainer(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	tc := &TestContainers{}

	dbImage := envOr("DB_IMAGE", "mariadb:11")
	dbDatabase := envOr("DB_DATABASE", "sitecms_test")
	dbUser := envOr("DB_USER", "sitecms")
	dbPassword := envOr("DB_PASSWORD", "sitecms")
	rootPassword := envOr("DB_ROOT_PASSWORD", "root")
	dbPortNumber := envOr("DB_PORT", "3306")

	nw, err := network.New(ctx)
	if err != nil {
		exitWithError(t, err, "Failed to create network")
		return nil, err
	}
	tc.Network = nw

	tcpDbPort, err := nat.NewPort("tcp", dbPortNumber)
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to create DB port")
		return nil, err
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        dbImage,
			ExposedPorts: []string{string(tcpDbPort)},
			Env: map[string]string{
				"MARIADB_ROOT_PASSWORD": rootPassword,
				"MARIADB_DATABASE":      dbDatabase,
				"MARIADB_USER":          dbUser,
				"MARIADB_PASSWORD":      dbPassword,
			},
			WaitingFor: wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:   []string{nw.Name},
		},
		Started: true,
	})
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to start database container")
		return nil, err
	}
	tc.DBContainer = dbContainer

	host, err := dbContainer.Host(ctx)
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to resolve database host")
		return nil, err
	}
	mappedPort, err := dbContainer.MappedPort(ctx, tcpDbPort)
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to resolve database port")
		return nil, err
	}
	tc.DBHost = host
	tc.DBPort = mappedPort.Port()

	if err := waitForDatabase(dbUser, dbPassword, host, tc.DBPort, dbDatabase); err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Database never became ready")
		return nil, err
	}

	logMessage(t, "DB_URL=%s:%s", host, tc.DBPort)
	return tc, nil
}

// waitForDatabase polls until the database answers a ping. The listening
// port opens before MariaDB finishes its init scripts, so a plain port wait
// is not enough.
func waitForDatabase(user, password, host, port, database string) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", user, password, host, port, database)
	deadline := time.Now().Add(60 * time.Second)

	for time.Now().Before(deadline) {
		db, err := sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			_ = db.Close()
			if err == nil {
				return nil
			}
		}
		time.Sleep(time.Second)
	}
	return fmt.Errorf("database at %s:%s not ready after 60s", host, port)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func logMessage(t *testing.T, format string, args ...interface{}) {
	if t != nil {
		t.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func exitWithError(t *testing.T, err error, message string) {
	if t != nil {
		t.Fatalf("%s: %v", message, err)
		return
	}
	log.Fatalf("%s: %v", message, err)
}
