package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
)

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.Len(t, cmd.Commands(), 2)

	show := requireSubcommand(t, cmd, "show")
	assert.NotNil(t, show.RunE)

	set := requireSubcommand(t, cmd, "set")
	assert.Equal(t, "set KEY VALUE", set.Use)
	assert.NotNil(t, set.Args)
}

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		value   string
		check   func(t *testing.T, config *Config)
		wantErr error
	}{
		{
			name:  "account sid",
			key:   "account_sid",
			value: "AC123",
			check: func(t *testing.T, config *Config) { assert.Equal(t, "AC123", config.AccountSID) },
		},
		{
			name:  "output",
			key:   "output",
			value: "yaml",
			check: func(t *testing.T, config *Config) { assert.Equal(t, "yaml", config.Output) },
		},
		{
			name:    "bad output",
			key:     "output",
			value:   "xml",
			wantErr: constants.ErrUnsupportedOutputFormat,
		},
		{
			name:  "retries",
			key:   "retries",
			value: "5",
			check: func(t *testing.T, config *Config) { assert.Equal(t, 5, config.Retries) },
		},
		{
			name:    "negative retries",
			key:     "retries",
			value:   "-1",
			wantErr: constants.ErrInvalidRetries,
		},
		{
			name:  "no color",
			key:   "no_color",
			value: "true",
			check: func(t *testing.T, config *Config) { assert.True(t, config.NoColor) },
		},
		{
			name:    "unknown key",
			key:     "space",
			value:   "dev",
			wantErr: constants.ErrUnknownConfigKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := &Config{}

			err := setConfigValue(config, tt.key, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			tt.check(t, config)
		})
	}
}

func TestSaveAndReadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".twilio", "config.yml")

	config, err := readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, config)

	require.NoError(t, setConfigValue(config, "account_sid", "AC123"))
	require.NoError(t, setConfigValue(config, "auth_token", "secret"))
	require.NoError(t, saveConfig(config, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	reread, err := readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "AC123", reread.AccountSID)
	assert.Equal(t, "secret", reread.AuthToken)
}

func TestReadConfigFile_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("account_sid: [unterminated"), constants.ConfigFilePerm))

	_, err := readConfigFile(path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewVersionCommand("1.2.3", "abc123", "2026-01-01"), "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "1.2.3"`)
	assert.Contains(t, out, `"api_version": "2010-04-01"`)

	out, err = execute(t, NewVersionCommand("1.2.3", "abc123", "2026-01-01"))
	require.NoError(t, err)
	assert.Contains(t, out, "abc123")

	_, err = execute(t, NewVersionCommand("1.2.3", "abc123", "2026-01-01"), "-o", "xml")
	require.ErrorIs(t, err, constants.ErrUnsupportedOutputFormat)
}
