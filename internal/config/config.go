package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig      `envconfig:"APP"`
	Log      LogConfig      `envconfig:"LOG"`
	DB       DBConfig       `envconfig:"DB"`
	Redis    RedisConfig    `envconfig:"REDIS"`
	GRPC     GRPCConfig     `envconfig:"GRPC"`
	Matching MatchingConfig `envconfig:"MATCH"`
	Quota    QuotaConfig    `envconfig:"QUOTA"`
	Rate     RateConfig     `envconfig:"RATE"`
	Jobs     JobsConfig     `envconfig:"JOBS"`
}

type AppConfig struct {
	ENV string `split_words:"true" default:"development"`
}

type LogConfig struct {
	Level     string `split_words:"true" default:"info"`
	Format    string `split_words:"true" default:"text"`
	Component string `split_words:"true" default:"matching_engine"`
	Source    bool   `split_words:"true" default:"false"`
}

// DBConfig selects the gorm dialector. DSN wins over the discrete fields.
type DBConfig struct {
	Driver   string `split_words:"true" default:"mysql"`
	DSN      string `split_words:"true"`
	Host     string `split_words:"true" default:"localhost"`
	Port     string `split_words:"true"`
	User     string `split_words:"true" default:"root"`
	Password string `split_words:"true" default:"root"`
	Name     string `split_words:"true" default:"pharmatch"`
	SQLLog   bool   `split_words:"true" default:"false"`
}

type RedisConfig struct {
	Addr     string `split_words:"true" default:"localhost:6379"`
	Password string `split_words:"true"`
	DB       int    `split_words:"true" default:"0"`
}

type GRPCConfig struct {
	Host string `split_words:"true" default:"127.0.0.1"`
	Port string `split_words:"true" default:"50051"`
}

// WeightsConfig holds the relative weight of every score factor.
type WeightsConfig struct {
	Distance      float64 `split_words:"true" default:"30"`
	Contract      float64 `split_words:"true" default:"20"`
	Qualification float64 `split_words:"true" default:"20"`
	Specialty     float64 `split_words:"true" default:"15"`
	Mobility      float64 `split_words:"true" default:"10"`
	Availability  float64 `split_words:"true" default:"15"`
}

type MatchingConfig struct {
	MaxRadiusKM      float64       `split_words:"true" default:"100"`
	DislikeCooldown  time.Duration `split_words:"true" default:"168h"`
	QueuePageSize    int           `split_words:"true" default:"20"`
	QueueMaxPageSize int           `split_words:"true" default:"100"`
	RetryAttempts    int           `split_words:"true" default:"3"`
	RetryBackoff     time.Duration `split_words:"true" default:"25ms"`
	Weights          WeightsConfig `envconfig:"WEIGHT"`
}

// QuotaConfig describes the super-like allowance per subscription tier.
// A negative limit means unlimited.
type QuotaConfig struct {
	SuperlikePeriod    string `split_words:"true" default:"day"`
	SuperlikeFree      int    `split_words:"true" default:"3"`
	SuperlikePremium   int    `split_words:"true" default:"10"`
	SuperlikeUnlimited int    `split_words:"true" default:"-1"`
}

type RateConfig struct {
	SwipesPerMinute     int `split_words:"true" default:"120"`
	SwipesPerTenSeconds int `split_words:"true" default:"30"`
}

type JobsConfig struct {
	Enabled        bool          `split_words:"true" default:"true"`
	NotifySpec     string        `split_words:"true" default:"@every 30s"`
	NotifyBatch    int           `split_words:"true" default:"100"`
	PruneSpec      string        `split_words:"true" default:"@daily"`
	QuotaRetention time.Duration `split_words:"true" default:"2160h"`
}

// New loads the configuration from the environment and panics on malformed values.
func New() *Config {
	cfg := &Config{}
	envconfig.MustProcess("", cfg)
	cfg.finalize()
	return cfg
}

// Load is the non-panicking variant of New.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.finalize()
	return cfg, nil
}

func (c *Config) finalize() {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	if c.DB.DSN != "" {
		return
	}

	switch c.DB.Driver {
	case "postgres":
		if c.DB.Port == "" {
			c.DB.Port = "5432"
		}
		c.DB.DSN = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name,
		)
	case "sqlite":
		c.DB.DSN = fmt.Sprintf("file:%s.db?_busy_timeout=5000&_journal_mode=WAL", c.DB.Name)
	default:
		if c.DB.Port == "" {
			c.DB.Port = "3306"
		}
		c.DB.DSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name,
		)
	}
}

// IsDevelopment reports whether demo data may be seeded on start-up.
func (c *Config) IsDevelopment() bool {
	return c.App.ENV == "development"
}
