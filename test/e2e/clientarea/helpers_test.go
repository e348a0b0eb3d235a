package clientarea_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientarea/pkg/areasdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testImageName = "clientarea-test:latest"

	registrationToken = "test-registration-token-12345"
	publicBaseURL     = "https://area.example.com"
	defaultPassword   = "Passw0rd-for-tests"
)

// TestMain builds the service image once for every test in the package.
func TestMain(m *testing.M) {
	if os.Getenv("CLIENTAREA_E2E") == "" {
		fmt.Fprintln(os.Stdout, "CLIENTAREA_E2E not set, skipping container tests")
		os.Exit(0)
	}

	fmt.Fprintf(os.Stdout, "Building client area Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up client area Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/clientarea/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	_ = exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName).Run()
}

// setupContainer starts the service with relaxed rate limits unless
// strictLimits is set, and returns its base URL.
func setupContainer(t *testing.T, strictLimits bool) string {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"PUBLIC_BASE_URL":    publicBaseURL,
		"REGISTRATION_TOKEN": registrationToken,
		"AUTH_NUM_KEYS":      "1",
		"ENV":                "test",
		"LOG_LEVEL":          "info",
		"LOG_FORMAT":         "json",
	}
	if !strictLimits {
		for _, profile := range []string{"STRICT", "MODERATE", "LENIENT"} {
			env["RATELIMIT_"+profile+"_REQUESTS"] = "1000"
			env["RATELIMIT_"+profile+"_BURST"] = "1000"
		}
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
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

// registerAndLogin creates a professional and returns its session.
func registerAndLogin(t *testing.T, client *areasdk.SDKClient, username string) *areasdk.Session {
	t.Helper()

	p, err := client.Register(t.Context(), registrationToken, areasdk.RegisterRequest{
		Username: username,
		Password: defaultPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.Code)

	session, err := client.Login(t.Context(), username, defaultPassword)
	require.NoError(t, err)
	return session
}

func createClient(t *testing.T, session *areasdk.Session, first, last string) *areasdk.Client {
	t.Helper()

	c, err := session.CreateClient(t.Context(), areasdk.CreateClientRequest{
		FirstName:  first,
		LastName:   last,
		Phone:      "+39 347 123 4567",
		HasConsent: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, c.UniqueCode)
	return c
}
