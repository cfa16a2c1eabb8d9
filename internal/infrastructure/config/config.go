package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cassiomorais/codgateway/internal/plugin"
	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Plugins       PluginsConfig       `mapstructure:"plugins"`
	InstanceID    string              `mapstructure:"instance_id"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	CORS              CORSConfig    `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type ObservabilityConfig struct {
	LogLevel       string `mapstructure:"log_level"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
	EnableMetrics  bool   `mapstructure:"enable_metrics"`
	EnableTracing  bool   `mapstructure:"enable_tracing"`
}

type PluginsConfig struct {
	Cash CashPluginConfig `mapstructure:"cash"`
}

// CashPluginConfig is the stored configuration of the cash gateway. Unset
// values fall back to the plugin's declared defaults when it is loaded.
type CashPluginConfig struct {
	Active                  *bool   `mapstructure:"active"`
	CODFees                 *string `mapstructure:"cod_fees"`
	SupportedCountries      *string `mapstructure:"supported_countries"`
	MaximumAllowedValue     *string `mapstructure:"maximum_allowed_value"`
	SupportedCurrencies     *string `mapstructure:"supported_currencies"`
	AutomaticPaymentCapture *bool   `mapstructure:"automatic_payment_capture"`
}

// Items returns the values that are set, in the host's configuration item form.
func (c CashPluginConfig) Items() []plugin.ConfigItem {
	var items []plugin.ConfigItem
	add := func(name string, v any) {
		items = append(items, plugin.ConfigItem{Name: name, Value: v})
	}
	if c.CODFees != nil {
		add("cod_fees", *c.CODFees)
	}
	if c.SupportedCountries != nil {
		add("supported_countries", *c.SupportedCountries)
	}
	if c.MaximumAllowedValue != nil {
		add("maximum_allowed_value", *c.MaximumAllowedValue)
	}
	if c.SupportedCurrencies != nil {
		add("supported_currencies", *c.SupportedCurrencies)
	}
	if c.AutomaticPaymentCapture != nil {
		add("automatic_payment_capture", *c.AutomaticPaymentCapture)
	}
	return items
}

func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads configuration from an explicit file. An empty path searches
// the default locations, where the file is optional.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("CODGATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindPluginEnv(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/codgateway")

		// Config file is optional
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.read_timeout must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.write_timeout must be positive"))
	}
	if c.Server.RequestsPerMinute < 0 {
		errs = append(errs, fmt.Errorf("server.requests_per_minute must not be negative"))
	}

	// Production environment checks
	env := os.Getenv("ENV")
	if env == "production" || env == "prod" {
		if c.Auth.JWTSecret == "" {
			errs = append(errs, fmt.Errorf("auth.jwt_secret required in production"))
		}
	}

	// JWT secret length validation
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters"))
	}

	return errors.Join(errs...)
}

var cashPluginKeys = []string{
	"active",
	"cod_fees",
	"supported_countries",
	"maximum_allowed_value",
	"supported_currencies",
	"automatic_payment_capture",
}

// bindPluginEnv makes plugin keys visible to Unmarshal when they only come
// from the environment. They carry no default so unset keys stay nil.
func bindPluginEnv(v *viper.Viper) {
	for _, key := range cashPluginKeys {
		_ = v.BindEnv("plugins.cash." + key)
	}
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.requests_per_minute", 600)
	v.SetDefault("server.cors.allowed_origins", []string{"*"})
	v.SetDefault("server.cors.allow_credentials", false)

	// Observability defaults
	v.SetDefault("observability.log_level", "info")
	v.SetDefault("observability.jaeger_endpoint", "http://localhost:14268/api/traces")
	v.SetDefault("observability.enable_metrics", true)
	v.SetDefault("observability.enable_tracing", false)

	// Instance ID
	v.SetDefault("instance_id", "codgateway-1")
}
