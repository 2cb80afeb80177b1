package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultCheckInterval      = 10 * time.Minute
	defaultMaxThreshold       = 10.0
	defaultRadiusKm           = 10.0
	defaultMaxRadiusKm        = 100.0
	defaultPreFilterFactor    = 1.3
	defaultTimezone           = "Atlantic/Canary"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Telegram bot used for alert delivery and login widget verification
	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`

	// Stations selects the station price store backend
	Stations *StationsConfig `json:"stations" yaml:"stations"`

	// Feed configures where station prices are imported from
	Feed *FeedConfig `json:"feed" yaml:"feed"`

	// Alerts configures the price alert checker
	Alerts *AlertsConfig `json:"alerts" yaml:"alerts"`

	// Proximity configures nearby station search
	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	// QRCode configuration for alert QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for alert event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Lifetime of issued access tokens
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`

	// Maximum age of a Telegram login payload (auth_date)
	MaxAuthAge time.Duration `json:"maxAuthAge" yaml:"maxAuthAge"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TelegramConfig defines Telegram bot configuration
type TelegramConfig struct {
	BotToken string `json:"botToken" yaml:"botToken"`

	// Send messages without contacting Telegram (logs only)
	DryRun bool `json:"dryRun" yaml:"dryRun"`
}

// StationsConfig defines the station store backend
type StationsConfig struct {
	// Backend: "postgres" or "memory"
	Backend string `json:"backend" yaml:"backend"`

	// Timezone used when reporting the last update time
	Timezone string `json:"timezone" yaml:"timezone"`
}

// FeedConfig defines the ministry price feed source
type FeedConfig struct {
	// Source: "file" or "http"
	Source string `json:"source" yaml:"source"`

	// Directory holding ListaEESSPrecio JSON files (file source)
	Dir string `json:"dir" yaml:"dir"`

	// Base URL of the ministry REST service (http source)
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Periodic refresh interval; zero disables scheduled refresh
	RefreshInterval time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
}

// AlertsConfig defines price alert checker configuration
type AlertsConfig struct {
	CheckInterval time.Duration `json:"checkInterval" yaml:"checkInterval"`
	MaxThreshold  float64       `json:"maxThreshold" yaml:"maxThreshold"`

	// Run the alert dispatch job in the API process
	SchedulerEnabled bool `json:"schedulerEnabled" yaml:"schedulerEnabled"`
}

// ProximityConfig defines nearby search configuration
type ProximityConfig struct {
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MaxRadiusKm     float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`

	// Bounding box pre-filter radius multiplier (e.g., 1.3 = box covers 1.3x the search radius)
	PreFilterRadiusMultiplier float64 `json:"preFilterRadiusMultiplier" yaml:"preFilterRadiusMultiplier"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "direct" for in-process delivery, "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Verify the OIDC token attached to push requests
	VerifyPushToken bool `json:"verifyPushToken" yaml:"verifyPushToken"`

	// Expected audience of push OIDC tokens
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// MetricsConfig defines Prometheus metrics exposure
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Pick up a .env file next to the config if one exists; real env vars win.
	loadDotEnv(searchPaths)

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: ALERTS_CHECKINTERVAL -> alerts.checkInterval
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil pointers.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Auth.MaxAuthAge <= 0 {
		cfg.Auth.MaxAuthAge = 24 * time.Hour
	}
	if cfg.Telegram == nil {
		cfg.Telegram = &TelegramConfig{}
	}
	if cfg.Stations == nil {
		cfg.Stations = &StationsConfig{}
	}
	if cfg.Stations.Backend == "" {
		cfg.Stations.Backend = "postgres"
	}
	if cfg.Stations.Timezone == "" {
		cfg.Stations.Timezone = defaultTimezone
	}
	if cfg.Feed == nil {
		cfg.Feed = &FeedConfig{}
	}
	if cfg.Feed.Source == "" {
		cfg.Feed.Source = "file"
	}
	if cfg.Feed.Timeout <= 0 {
		cfg.Feed.Timeout = 30 * time.Second
	}
	if cfg.Alerts == nil {
		cfg.Alerts = &AlertsConfig{}
	}
	if cfg.Alerts.CheckInterval <= 0 {
		cfg.Alerts.CheckInterval = defaultCheckInterval
	}
	if cfg.Alerts.MaxThreshold <= 0 {
		cfg.Alerts.MaxThreshold = defaultMaxThreshold
	}
	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{}
	}
	if cfg.Proximity.DefaultRadiusKm <= 0 {
		cfg.Proximity.DefaultRadiusKm = defaultRadiusKm
	}
	if cfg.Proximity.MaxRadiusKm <= 0 {
		cfg.Proximity.MaxRadiusKm = defaultMaxRadiusKm
	}
	if cfg.Proximity.PreFilterRadiusMultiplier < 1 {
		cfg.Proximity.PreFilterRadiusMultiplier = defaultPreFilterFactor
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func loadDotEnv(searchPaths []string) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, ".env")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		// godotenv.Load never overrides variables that are already set.
		_ = godotenv.Load(candidate)

		return
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
