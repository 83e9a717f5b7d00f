package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/omni-notify/internal/domain/notification"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("OMNI_ENABLED", "")
	t.Setenv("OMNI_HOST", "")
	t.Setenv("API_PORT", "")

	cfg := New()

	assert.Equal(t, "8080", cfg.API.Port)
	assert.False(t, cfg.Omni.Enabled)
	assert.Equal(t, "phone_number", cfg.Omni.RecipientType)
	assert.Equal(t, 10*time.Second, cfg.Omni.Timeout)
	assert.Equal(t, time.Minute, cfg.Omni.CacheTTL)
	assert.Equal(t, 100, cfg.Worker.BatchSize)
}

func TestNew_OmniFromEnv(t *testing.T) {
	t.Setenv("OMNI_ENABLED", "yes")
	t.Setenv("OMNI_HOST", "http://omni:8882")
	t.Setenv("OMNI_API_KEY", "secret")
	t.Setenv("OMNI_INSTANCE", "whatsapp-1")
	t.Setenv("OMNI_RECIPIENT", "5551234567")
	t.Setenv("OMNI_TIMEOUT", "3s")
	t.Setenv("OMNI_INSTANCES_CACHE_TTL", "not-a-duration")
	t.Setenv("NOTIFY_MAX_WORKERS", "x")

	cfg := New()

	assert.True(t, cfg.Omni.Enabled)
	assert.Equal(t, "http://omni:8882", cfg.Omni.Host)
	assert.Equal(t, "secret", cfg.Omni.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Omni.Timeout)
	assert.Equal(t, time.Minute, cfg.Omni.CacheTTL, "invalid duration falls back to default")
	assert.Equal(t, 4, cfg.Worker.MaxWorkers, "invalid int falls back to default")
	assert.NoError(t, cfg.Omni.Validate())
}

func TestOmniConfig_Validate(t *testing.T) {
	assert.NoError(t, OmniConfig{}.Validate(), "disabled config is valid")

	err := OmniConfig{Enabled: true, Host: "omni:8882", RecipientType: "fax"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with http://")
	assert.Contains(t, err.Error(), "instance is required")
	assert.Contains(t, err.Error(), "recipient is required")
	assert.Contains(t, err.Error(), `omni recipient type "fax"`)
	assert.ErrorIs(t, err, notification.ErrUnknownRecipientType)

	ok := OmniConfig{Enabled: true, Host: "https://omni", Instance: "dc", Recipient: "u1", RecipientType: "UserId"}
	assert.NoError(t, ok.Validate())
}

func TestOmniConfig_RecipientTypeMatchesDomain(t *testing.T) {
	for _, rt := range []string{"phone_number", "PhoneNumber", "phone", " user_id ", "UserId", "user", "fax", ""} {
		cfg := OmniConfig{Enabled: true, Host: "http://omni", Instance: "wa", Recipient: "1", RecipientType: rt}
		_, parseErr := notification.ParseRecipientType(rt)

		if parseErr != nil {
			assert.ErrorIs(t, cfg.Validate(), notification.ErrUnknownRecipientType, rt)
		} else {
			assert.NoError(t, cfg.Validate(), rt)
		}
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{}
	cfg.DB.Host = "localhost"
	cfg.DB.Port = 5432
	cfg.DB.User = "u"
	cfg.DB.Password = "p"
	cfg.DB.Name = "n"
	cfg.DB.SSLMode = "disable"

	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=n sslmode=disable", cfg.PostgresDSN())
}

func TestLoadProjectSettings(t *testing.T) {
	t.Setenv("TEST_OMNI_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
omni_enabled: true
omni_config:
  host: http://localhost:8882
  api_key: ${TEST_OMNI_KEY}
  instance: discord-bot
  recipient: user_abc123
  recipient_type: UserId
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ps, err := LoadProjectSettings(path)
	require.NoError(t, err)
	require.NotNil(t, ps.OmniConfig)
	assert.True(t, ps.OmniEnabled)
	assert.Equal(t, "from-env", ps.OmniConfig.APIKey)

	cfg := &Config{}
	cfg.Omni.Host = "http://env-host"
	cfg.Omni.RecipientType = "phone_number"
	cfg.Omni.Timeout = 5 * time.Second
	cfg.ApplyProjectSettings(ps)

	assert.True(t, cfg.Omni.Enabled)
	assert.Equal(t, "http://localhost:8882", cfg.Omni.Host)
	assert.Equal(t, "discord-bot", cfg.Omni.Instance)
	assert.Equal(t, "UserId", cfg.Omni.RecipientType)
	assert.Equal(t, 5*time.Second, cfg.Omni.Timeout)
	assert.NoError(t, cfg.Omni.Validate())
}

func TestLoadProjectSettings_MissingAndInvalid(t *testing.T) {
	ps, err := LoadProjectSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Nil(t, ps)

	cfg := &Config{}
	cfg.Omni.Enabled = true
	cfg.ApplyProjectSettings(ps)
	assert.True(t, cfg.Omni.Enabled, "nil settings leave env config alone")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("omni_enabled: [unclosed"), 0o644))
	_, err = LoadProjectSettings(bad)
	assert.Error(t, err)
}

func TestProjectSettings_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	in := &ProjectSettings{
		OmniEnabled: true,
		OmniConfig: &OmniConfig{
			Host: "http://omni", Instance: "wa", Recipient: "1", RecipientType: "phone_number",
		},
	}
	require.NoError(t, in.Save(path))

	out, err := LoadProjectSettings(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
