package configuration

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"yt-analyze/infrastructure/logger"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultPort           = 10001
	DefaultTimeoutSeconds = 15
	DefaultLocale         = "zh"
	DefaultYtdlpPath      = "yt-dlp"
)

type Config struct {
	App     App     `json:"app"`
	Logger  Logger  `json:"logger"`
	YouTube YouTube `json:"youtube"`
	Ytdlp   Ytdlp   `json:"ytdlp"`
	Render  Render  `json:"render"`
}

type App struct {
	Port        int      `json:"port"`
	CORSOrigins []string `json:"corsOrigins"`
}

type Logger struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

type YouTube struct {
	APIKey         string `json:"apiKey"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
	Endpoint       string `json:"endpoint"`
}

// Ytdlp configures the page-extraction fallback
type Ytdlp struct {
	Path       string `json:"path"`
	CookieFile string `json:"cookieFile"`
}

type Render struct {
	Locale string `json:"locale"`
}

// Timeout returns the structured API timeout as a duration
func (y YouTube) Timeout() time.Duration {
	if y.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(y.TimeoutSeconds) * time.Second
}

// Credential returns the configured API key, or "" when it is unset or a placeholder such as "YOUR_API_KEY"
func (y YouTube) Credential() string {
	if strings.HasPrefix(y.APIKey, "YOUR_") {
		return ""
	}
	return y.APIKey
}

// HasAPIKey reports whether a usable credential is configured
func (y YouTube) HasAPIKey() bool {
	return y.Credential() != ""
}

// env bindings, key -> variables in precedence order
var envBindings = map[string][]string{
	"app.port":               {"APP_PORT", "PORT"},
	"logger.level":           {"LOG_LEVEL"},
	"logger.format":          {"LOG_FORMAT"},
	"youtube.apiKey":         {"YOUTUBE_API_KEY"},
	"youtube.timeoutSeconds": {"YOUTUBE_TIMEOUT_SECONDS"},
	"youtube.endpoint":       {"YOUTUBE_API_ENDPOINT"},
	"ytdlp.path":             {"YTDLP_PATH"},
	"ytdlp.cookieFile":       {"YTDLP_COOKIE_FILE"},
	"render.locale":          {"RENDER_LOCALE"},
}

// Load reads env files, then config.json (or config-<ENV>.json), then the environment
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags is Load with command line flags bound on top. Flags are bound by viper key,
// e.g. a flag annotated via BindFlag.
func LoadWithFlags(flags *pflag.FlagSet) (*Config, error) {
	LoadEnvFromFile("config.env", ".env")

	v := viper.New()
	name := getConfig()
	v.SetConfigName(name)
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("../")
	v.AddConfigPath("../../")
	v.AutomaticEnv()

	v.SetDefault("app.port", DefaultPort)
	v.SetDefault("youtube.timeoutSeconds", DefaultTimeoutSeconds)
	v.SetDefault("ytdlp.path", DefaultYtdlpPath)
	v.SetDefault("render.locale", DefaultLocale)

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key, ok := f.Annotations[viperKeyAnnotation]
			if !ok || len(key) == 0 || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(key[0], f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", name, err)
		}
		logger.GetLogger().WithField("config", name).Debug("Config file not found, using environment only")
	} else {
		logger.GetLogger().WithField("config", v.ConfigFileUsed()).Info("Config set up successfully")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper unable to decode into struct: %w", err)
	}
	c.YouTube.APIKey = strings.TrimSpace(c.YouTube.APIKey)
	if c.App.Port == 0 {
		c.App.Port = DefaultPort
	}
	if c.Ytdlp.Path == "" {
		c.Ytdlp.Path = DefaultYtdlpPath
	}
	return &c, nil
}

const viperKeyAnnotation = "viper-key"

// BindFlag marks flag name on flags to override the viper key during LoadWithFlags
func BindFlag(flags *pflag.FlagSet, name, key string) error {
	return flags.SetAnnotation(name, viperKeyAnnotation, []string{key})
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}
