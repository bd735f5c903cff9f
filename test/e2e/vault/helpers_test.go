package vault_test

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/passkeep/pkg/cryptox"
	"github.com/aussiebroadwan/passkeep/pkg/vaultsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared assertions for the vault end-to-end tests.
 * The image is built once from cmd/passkeep/Dockerfile in TestMain.
 */

const (
	testImageName = "passkeep-test:latest"

	defaultPassword = "passw0rd!"
)

// encryptionKey is generated once per run and shared by every container.
var encryptionKey string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		fmt.Fprintln(os.Stdout, "skipping container tests in -short mode")
		os.Exit(0)
	}

	key, err := cryptox.GenerateKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate encryption key: %v\n", err)
		os.Exit(1)
	}
	encryptionKey = key

	fmt.Fprintf(os.Stdout, "Building passkeep Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up passkeep Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/passkeep/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// baseEnv is the container environment shared by every test.
func baseEnv() map[string]string {
	return map[string]string{
		"VAULT_ENCRYPTION_KEY": encryptionKey,
		"VAULT_JWT_SECRET":     "e2e-jwt-secret-that-is-long-enough-1234",
		"VAULT_ISSUER":         "passkeep-e2e",
		"ENV":                  "test",
		"LOG_LEVEL":            "info",
		"LOG_FORMAT":           "json",
	}
}

// relaxedLimits lifts the rate limits so tests can make rapid requests.
func relaxedLimits(env map[string]string) map[string]string {
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"
	return env
}

// startVault runs the image with env and returns its base URL.
func startVault(t *testing.T, env map[string]string, opts ...testcontainers.CustomizeRequestOption) string {
	t.Helper()
	ctx := context.Background()

	gcr := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	}
	for _, opt := range opts {
		require.NoError(t, opt(&gcr))
	}

	container, err := testcontainers.GenericContainer(ctx, gcr)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// setupVaultContainer starts a vault with relaxed rate limits and the log
// notifier.
func setupVaultContainer(t *testing.T) *vaultsdk.Client {
	t.Helper()
	return vaultsdk.NewClient(startVault(t, relaxedLimits(baseEnv())))
}

// signup registers username and logs in.
func signup(t *testing.T, client *vaultsdk.Client, username string) *vaultsdk.Session {
	t.Helper()

	created, err := client.Register(t.Context(), vaultsdk.RegisterRequest{
		Email:    username + "@mail.ru",
		Username: username,
		Password: defaultPassword,
	})
	require.NoError(t, err)
	require.Positive(t, created.ID)

	session, err := client.Login(t.Context(), username, defaultPassword)
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken())
	return session
}

// requireAPIError checks err is an *APIError with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *vaultsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *vaultsdk.APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode, "unexpected status: %s", apiErr)
	require.Equal(t, code, apiErr.Code)
}

func assertHealthy(t *testing.T, health *vaultsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
