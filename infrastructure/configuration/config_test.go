package configuration_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yt-analyze/infrastructure/configuration"
)

// chdir moves into an empty temp dir so no config or env file from the repo is picked up
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "APP_PORT", "PORT", "YOUTUBE_API_KEY", "YOUTUBE_TIMEOUT_SECONDS",
		"YOUTUBE_API_ENDPOINT", "YTDLP_PATH", "YTDLP_COOKIE_FILE", "RENDER_LOCALE",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t)

	c, err := configuration.Load()
	require.NoError(t, err)

	assert.Equal(t, configuration.DefaultPort, c.App.Port)
	assert.Equal(t, "", c.YouTube.APIKey)
	assert.False(t, c.YouTube.HasAPIKey())
	assert.Equal(t, 15*time.Second, c.YouTube.Timeout())
	assert.Equal(t, "yt-dlp", c.Ytdlp.Path)
	assert.Equal(t, "zh", c.Render.Locale)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	chdir(t)
	t.Setenv("YOUTUBE_API_KEY", " secret ")
	t.Setenv("PORT", "8080")
	t.Setenv("YOUTUBE_TIMEOUT_SECONDS", "5")
	t.Setenv("YTDLP_COOKIE_FILE", "/tmp/cookies.txt")
	t.Setenv("RENDER_LOCALE", "en")

	c, err := configuration.Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", c.YouTube.APIKey)
	assert.True(t, c.YouTube.HasAPIKey())
	assert.Equal(t, 8080, c.App.Port)
	assert.Equal(t, 5*time.Second, c.YouTube.Timeout())
	assert.Equal(t, "/tmp/cookies.txt", c.Ytdlp.CookieFile)
	assert.Equal(t, "en", c.Render.Locale)
}

func TestLoad_AppPortWinsOverPort(t *testing.T) {
	clearEnv(t)
	chdir(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("PORT", "8080")

	c, err := configuration.Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, c.App.Port)
}

func TestLoad_ConfigFileAndEnvFile(t *testing.T) {
	clearEnv(t)
	dir := chdir(t)

	configJSON := `{"youtube":{"apiKey":"from-file","timeoutSeconds":7},"render":{"locale":"en"},"ytdlp":{"cookieFile":"cookies.txt"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(configJSON), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RENDER_LOCALE=zh\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("RENDER_LOCALE") })

	c, err := configuration.Load()
	require.NoError(t, err)

	assert.Equal(t, "from-file", c.YouTube.APIKey)
	assert.Equal(t, 7*time.Second, c.YouTube.Timeout())
	assert.Equal(t, "cookies.txt", c.Ytdlp.CookieFile)
	// .env sets the variable, and the environment outranks the config file
	assert.Equal(t, "zh", c.Render.Locale)
}

func TestLoad_PlaceholderKey(t *testing.T) {
	clearEnv(t)
	chdir(t)
	t.Setenv("YOUTUBE_API_KEY", "YOUR_API_KEY")

	c, err := configuration.Load()
	require.NoError(t, err)
	assert.False(t, c.YouTube.HasAPIKey())
	assert.Equal(t, "", c.YouTube.Credential())
}

func TestYouTube_Credential(t *testing.T) {
	assert.Equal(t, "real-key", configuration.YouTube{APIKey: "real-key"}.Credential())
	assert.Equal(t, "", configuration.YouTube{APIKey: "YOUR_API_KEY"}.Credential())
	assert.Equal(t, "", configuration.YouTube{}.Credential())
}

func TestLoadWithFlags(t *testing.T) {
	clearEnv(t)
	chdir(t)
	t.Setenv("YOUTUBE_API_KEY", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("key", "", "api key")
	flags.String("locale", "", "label locale")
	require.NoError(t, configuration.BindFlag(flags, "key", "youtube.apiKey"))
	require.NoError(t, configuration.BindFlag(flags, "locale", "render.locale"))
	require.NoError(t, flags.Parse([]string{"--key", "from-flag"}))

	c, err := configuration.LoadWithFlags(flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", c.YouTube.APIKey)
	// unchanged flag does not override the default
	assert.Equal(t, "zh", c.Render.Locale)
}
