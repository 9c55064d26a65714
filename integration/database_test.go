//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestJumplabWithMySQL tests the jumplab CLI with a MySQL run-tracking backend.
func TestJumplabWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "jumplab",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/jumplab?parseTime=true", host, port.Port())
	runTrackingScenario(t, "mysql", connStr)
}

// TestJumplabWithPostgres tests the jumplab CLI with a PostgreSQL run-tracking backend.
func TestJumplabWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("postgres://postgres@%s:%s/postgres?sslmode=disable", host, port.Port())
	runTrackingScenario(t, "postgresql", connStr)
}

// runTrackingScenario drives a full tracked session against one backend:
// clear, analyze, predict, then inspect and export the recorded runs.
func runTrackingScenario(t *testing.T, backend, connStr string) {
	t.Helper()

	// Set environment variables
	_ = os.Setenv("JUMPLAB_RUN_BACKEND", backend)
	_ = os.Setenv("JUMPLAB_RUN_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("JUMPLAB_RUN_BACKEND") }()
	defer func() { _ = os.Unsetenv("JUMPLAB_RUN_DB_CONNECT") }()

	dataDir := t.TempDir()
	dataset := writeDatasetCSV(t, dataDir)

	// Start from a clean slate
	err := runJumplabCommand(t, "runs", "clear")
	require.NoError(t, err)

	// Fit per-level transfer models; each fit is tracked
	err = runJumplabCommand(t, "transfer", dataset)
	require.NoError(t, err)

	// Produce a tracked bootstrap prediction
	err = runJumplabCommand(t, "predict", dataset, "--jump-height", "45", "--boot", "200")
	require.NoError(t, err)

	// Inspect the store
	err = runJumplabCommand(t, "runs", "status")
	require.NoError(t, err)

	// Export everything to Parquet
	exportBase := dataDir + "/export"
	err = runJumplabCommand(t, "runs", "export", "--output-file", exportBase)
	require.NoError(t, err)
	_, err = os.Stat(exportBase + ".runs.parquet")
	require.NoError(t, err)

	// Clear again to leave the database empty
	err = runJumplabCommand(t, "runs", "clear")
	require.NoError(t, err)
}

func runJumplabCommand(t *testing.T, args ...string) error {
	jumplabPath := getJumplabBinary()
	cmd := exec.Command(jumplabPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
