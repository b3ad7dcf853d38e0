//go:build e2e

package platform_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/bettoyou/bettoyou/pkg/platformsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testImageName = "bettoyou-platform-test:latest"

// TestMain builds the image once for the whole suite and removes it after.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Platform Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Platform Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/platform/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// baseEnv runs the service on SQLite with a mock verifier that never fails
// and answers immediately.
func baseEnv() map[string]string {
	return map[string]string{
		"STORE_DRIVER":              "sqlite",
		"DATABASE_FILE":             "/tmp/platform.db",
		"TOKEN_ISSUER":              "bettoyou-platform",
		"SIGNING_KEYS":              "1",
		"WORLDID_APP_ID":            "app_staging_e2e",
		"WORLDID_ACTION":            "verify-user",
		"WORLDID_MOCK_FAILURE_RATE": "0",
		"WORLDID_MOCK_LATENCY":      "0s",
		"ENV":                       "test",
		"LOG_LEVEL":                 "info",
		"LOG_FORMAT":                "json",
	}
}

// setupPlatformContainer starts the service with relaxed rate limits.
func setupPlatformContainer(t *testing.T) string {
	t.Helper()

	env := baseEnv()
	// Suites sign in far more often than the production limit allows.
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"

	return startContainer(t, env)
}

// setupPlatformContainerWithDefaultRateLimits keeps the production limits,
// for tests that exercise rate limiting itself.
func setupPlatformContainerWithDefaultRateLimits(t *testing.T) string {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/readyz").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// signInAs signs in through the mock verifier and, unless userType is
// empty, selects the role.
func signInAs(t *testing.T, client *platformsdk.Client, userType string) *platformsdk.Session {
	t.Helper()

	sess, err := client.SignInWithWorldID(t.Context(), platformsdk.WorldIDProof{
		MerkleRoot:        "0x1",
		Proof:             "0x2",
		VerificationLevel: "orb",
	})
	require.NoError(t, err)
	require.NotEmpty(t, sess.AccessToken())

	if userType != "" {
		cur, err := sess.SelectUserType(t.Context(), userType)
		require.NoError(t, err)
		require.Equal(t, userType, cur.UserType)
	}
	return sess
}

func assertHealthy(t *testing.T, health *platformsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
