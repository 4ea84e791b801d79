package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Exchange ExchangeConfig `mapstructure:"exchange"`
	Callback CallbackConfig `mapstructure:"callback"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// EngineConfig holds the payment engine parameters.
type EngineConfig struct {
	NetworkID          string `mapstructure:"network_id"`
	FeeRateNumerator   int64  `mapstructure:"fee_rate_numerator"`
	FeeRateDenominator int64  `mapstructure:"fee_rate_denominator"`
	FeeExemptAsset     string `mapstructure:"fee_exempt_asset"`
	TreasuryAccount    string `mapstructure:"treasury_account"` // UUID of the treasury custody account
	EscrowAccount      string `mapstructure:"escrow_account"`   // UUID of the engine's escrow custody account
	DefaultPayoutAsset string `mapstructure:"default_payout_asset"`
	USDDecimals        int32  `mapstructure:"usd_decimals"`
}

// ExchangeConfig configures the Asset Exchange collaborator.
type ExchangeConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CallbackConfig configures the callback executor.
type CallbackConfig struct {
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxResponseBytes int64         `mapstructure:"max_response_bytes"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// AdminConfig holds the registry administrator credentials.
type AdminConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ESE_ (Escrow Settlement
// Engine). Nested keys use underscore: ESE_DATABASE_HOST, ESE_ENGINE_NETWORK_ID.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "escrow_engine")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("engine.network_id", "escrow-dev")
	v.SetDefault("engine.fee_rate_numerator", 30)
	v.SetDefault("engine.fee_rate_denominator", 10000)
	v.SetDefault("engine.fee_exempt_asset", "")
	v.SetDefault("engine.treasury_account", "00000000-0000-0000-0000-000000000001")
	v.SetDefault("engine.escrow_account", "00000000-0000-0000-0000-000000000002")
	v.SetDefault("engine.default_payout_asset", "USDC")
	v.SetDefault("engine.usd_decimals", 8)
	v.SetDefault("exchange.base_url", "http://localhost:9090")
	v.SetDefault("exchange.timeout", "10s")
	v.SetDefault("callback.timeout", "10s")
	v.SetDefault("callback.max_response_bytes", 1<<20)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "escrow-settlement-engine")
	v.SetDefault("admin.api_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ESE_DATABASE_HOST -> database.host
	v.SetEnvPrefix("ESE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Engine.FeeRateDenominator <= 0 {
		return nil, fmt.Errorf("engine.fee_rate_denominator must be positive")
	}
	if cfg.Engine.FeeRateNumerator < 0 || cfg.Engine.FeeRateNumerator > cfg.Engine.FeeRateDenominator {
		return nil, fmt.Errorf("engine.fee_rate_numerator must be within [0, denominator]")
	}

	return &cfg, nil
}
