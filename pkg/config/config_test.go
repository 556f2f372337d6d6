package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "https://acct.api-us1.com/api/3")
	t.Setenv(EnvAPIKey, "key-123")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://acct.api-us1.com/api/3", cfg.APIBaseURL)
	assert.Equal(t, "key-123", cfg.APIKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{
			name:   "missing base url",
			cfg:    Config{APIKey: "k"},
			errMsg: "ACTIVECAMPAIGN_API_BASE_URL is required",
		},
		{
			name:   "relative base url",
			cfg:    Config{APIBaseURL: "api/3", APIKey: "k"},
			errMsg: "ACTIVECAMPAIGN_API_BASE_URL must be an absolute URL",
		},
		{
			name:   "missing api key",
			cfg:    Config{APIBaseURL: "https://acct.api-us1.com/api/3"},
			errMsg: "ACTIVECAMPAIGN_API_KEY is required",
		},
		{
			name:   "api key with newline",
			cfg:    Config{APIBaseURL: "https://acct.api-us1.com/api/3", APIKey: "abc\ndef"},
			errMsg: "ACTIVECAMPAIGN_API_KEY is not a valid header value",
		},
		{
			name: "valid",
			cfg:  Config{APIBaseURL: "https://acct.api-us1.com/api/3", APIKey: "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestMustLoad_PanicsWhenMissing(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvAPIKey, "")

	assert.Panics(t, func() { MustLoad() })
}
