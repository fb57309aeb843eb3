package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger         `mapstructure:"logger"`
	DB        Database       `mapstructure:"database"`
	API       API            `mapstructure:"api"`
	Cache     Cache          `mapstructure:"cache"`
	Journal   Journal        `mapstructure:"journal"`
	Calendar  Calendar       `mapstructure:"calendar"`
	Scheduler Scheduler      `mapstructure:"scheduler"`
	Telegram  TelegramConfig `mapstructure:"telegram"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port            int      `mapstructure:"port"`
	UserHeader      string   `mapstructure:"user_header"`
	AllowOrigins    []string `mapstructure:"allow_origins"`
	RateLimitPerSec float64  `mapstructure:"rate_limit_per_sec"`
	RateLimitBurst  int      `mapstructure:"rate_limit_burst"`
}

type Cache struct {
	DefaultExpiration   time.Duration `mapstructure:"default_expiration"`
	CleanupInterval     time.Duration `mapstructure:"cleanup_interval"`
	SettingsExpDuration time.Duration `mapstructure:"settings_exp_duration"`
}

// Journal holds the account defaults used until a user saves their own settings.
type Journal struct {
	DefaultInitialBalance float64 `mapstructure:"default_initial_balance"`
	DefaultCurrency       string  `mapstructure:"default_currency"`
	DefaultPeriod         string  `mapstructure:"default_period"`
}

type Calendar struct {
	SourceURL   string        `mapstructure:"source_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Freshness   time.Duration `mapstructure:"freshness"`
	RefreshSpec string        `mapstructure:"refresh_spec"`
	UserAgents  []string      `mapstructure:"user_agents"`
	// Weeks are the ForexFactory "week" query values scraped on each refresh.
	Weeks            []string      `mapstructure:"weeks"`
	MaxRequestPerMin int           `mapstructure:"max_request_per_min"`
	Retries          int           `mapstructure:"retries"`
	RefreshTimeout   time.Duration `mapstructure:"refresh_timeout"`
}

type Scheduler struct {
	Enabled         bool          `mapstructure:"enabled"`
	TimeoutDuration time.Duration `mapstructure:"timeout_duration"`
}

type TelegramConfig struct {
	BotToken                  string        `mapstructure:"bot_token"`
	AlertChatID               int64         `mapstructure:"alert_chat_id"`
	PollTimeout               time.Duration `mapstructure:"poll_timeout"`
	TimeoutDuration           time.Duration `mapstructure:"timeout_duration"`
	MaxGlobalRequestPerSecond int           `mapstructure:"max_global_request_per_second"`
	MaxUserRequestPerSecond   int           `mapstructure:"max_user_request_per_second"`
	RateLimitCleanupDuration  time.Duration `mapstructure:"rate_limit_cleanup_duration"`
	RateLimitExpireDuration   time.Duration `mapstructure:"rate_limit_expire_duration"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when neither file nor env sets a key.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.time_zone", "UTC")
	v.SetDefault("database.log_level", "Warn")

	v.SetDefault("api.port", 8080)
	v.SetDefault("api.user_header", "X-User-ID")
	v.SetDefault("api.allow_origins", []string{"http://localhost:8080"})
	v.SetDefault("api.rate_limit_per_sec", 10)
	v.SetDefault("api.rate_limit_burst", 30)

	v.SetDefault("cache.default_expiration", 5*time.Minute)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)
	v.SetDefault("cache.settings_exp_duration", 30*time.Minute)

	v.SetDefault("journal.default_initial_balance", 10000)
	v.SetDefault("journal.default_currency", "USD")
	v.SetDefault("journal.default_period", "daily")

	v.SetDefault("calendar.source_url", "https://www.forexfactory.com")
	v.SetDefault("calendar.timeout", 20*time.Second)
	v.SetDefault("calendar.freshness", 15*time.Minute)
	v.SetDefault("calendar.refresh_spec", "@every 15m")
	v.SetDefault("calendar.user_agents", []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0",
	})

	v.SetDefault("calendar.weeks", []string{"this", "next"})
	v.SetDefault("calendar.max_request_per_min", 20)
	v.SetDefault("calendar.retries", 1)
	v.SetDefault("calendar.refresh_timeout", time.Minute)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.timeout_duration", time.Minute)

	v.SetDefault("telegram.poll_timeout", 10*time.Second)
	v.SetDefault("telegram.timeout_duration", time.Minute)
	v.SetDefault("telegram.max_global_request_per_second", 30)
	v.SetDefault("telegram.max_user_request_per_second", 1)
	v.SetDefault("telegram.rate_limit_cleanup_duration", 10*time.Minute)
	v.SetDefault("telegram.rate_limit_expire_duration", 30*time.Minute)
}
