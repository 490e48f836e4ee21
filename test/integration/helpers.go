//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	AccountSID string
	AuthToken  string
	BaseURL    string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		BaseURL:    os.Getenv("TWILIO_BASE_URL"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("TWILIO_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the twilio binary.
func getBinaryPath() string {
	if path := os.Getenv("TWILIO_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../twilio",
		"./twilio",
		"../twilio",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "twilio" // Fallback to PATH
}

// SkipIfMissingConfig skips the test when credentials or the binary are missing.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.AccountSID == "" || config.AuthToken == "" {
		t.Skip("TWILIO_ACCOUNT_SID or TWILIO_AUTH_TOKEN not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("twilio binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the twilio binary.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a twilio command with the configured credentials and
// returns its output. The config file is pointed at a scratch location so
// a developer's ~/.twilio settings never leak into the run.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithToken(runner.config.AuthToken, args...)
}

// RunWithToken is Run with a different auth token.
func (runner *CommandRunner) RunWithToken(token string, args ...string) (stdout, stderr string, err error) {
	global := []string{
		"--config", runner.t.TempDir() + "/config.yml",
		"--account-sid", runner.config.AccountSID,
		"--auth-token", token,
		"--no-color",
	}

	if runner.config.BaseURL != "" {
		global = append(global, "--base-url", runner.config.BaseURL)
	}

	cmd := exec.Command(runner.config.BinaryPath, append(global, args...)...)
	cmd.Env = filteredEnv()

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// filteredEnv drops TWILIO_* variables so flags are the only credentials.
func filteredEnv() []string {
	env := make([]string, 0, len(os.Environ()))

	for _, entry := range os.Environ() {
		if !strings.HasPrefix(entry, "TWILIO_") {
			env = append(env, entry)
		}
	}

	return env
}
