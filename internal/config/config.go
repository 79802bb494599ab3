package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-editions/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// AllowedOrigins restricts CORS, empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string `mapstructure:"jwt_public_key"`
	// APIKeys authorize trusted backends that act on behalf of a user via the X-User-ID header
	APIKeys []string `mapstructure:"api_keys"`
}

// SolanaConfig holds Solana RPC configuration
type SolanaConfig struct {
	RPCURL         string        `mapstructure:"rpc_url"`
	Commitment     string        `mapstructure:"commitment"`
	USDCMint       string        `mapstructure:"usdc_mint"`
	PlatformWallet string        `mapstructure:"platform_wallet"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxRetries     uint64        `mapstructure:"max_retries"`
}

// PurchaseConfig holds the purchase pipeline tunables
type PurchaseConfig struct {
	// StaleThreshold governs reservation abandonment, claim reclaim and stuck minting recovery
	StaleThreshold  time.Duration `mapstructure:"stale_threshold"`
	MintFeeLamports uint64        `mapstructure:"mint_fee_lamports"`
	TxFeeLamports   uint64        `mapstructure:"tx_fee_lamports"`
	PlatformFeeBps  int           `mapstructure:"platform_fee_bps"`
	USDCDecimals    uint8         `mapstructure:"usdc_decimals"`
}

// MinterConfig holds the minting service configuration
type MinterConfig struct {
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CloudflareConfig holds Cloudflare configuration
type CloudflareConfig struct {
	AccountID   string `mapstructure:"account_id"`
	APIToken    string `mapstructure:"api_token"`
	NamespaceID string `mapstructure:"namespace_id"`
}

// MetadataConfig holds NFT metadata configuration
type MetadataConfig struct {
	// PublicBaseURL is where uploaded metadata documents are served from
	PublicBaseURL string           `mapstructure:"public_base_url"`
	Symbol        string           `mapstructure:"symbol"`
	Cloudflare    CloudflareConfig `mapstructure:"cloudflare"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// PollLimitPerMinute caps status polls per user, 0 disables the limit
	PollLimitPerMinute int `mapstructure:"poll_limit_per_minute"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Solana     SolanaConfig   `mapstructure:"solana"`
	Purchase   PurchaseConfig `mapstructure:"purchase"`
	Minter     MinterConfig   `mapstructure:"minter"`
	Metadata   MetadataConfig `mapstructure:"metadata"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Redis      RedisConfig    `mapstructure:"redis"`
	Worker     WorkerConfig   `mapstructure:"worker"`
}

// ReservationSweeperConfig holds configuration for the reservation sweeper loop
type ReservationSweeperConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
	Worker    WorkerConfig  `mapstructure:"worker"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig         `mapstructure:",squash"`
	Database           DatabaseConfig           `mapstructure:"database"`
	Purchase           PurchaseConfig           `mapstructure:"purchase"`
	ReservationSweeper ReservationSweeperConfig `mapstructure:"reservation_sweeper"`
}

// setPurchaseDefaults sets the purchase pipeline defaults shared by every service
func setPurchaseDefaults(v *viper.Viper) {
	v.SetDefault("purchase.stale_threshold", domain.DEFAULT_STALE_THRESHOLD.String())
	v.SetDefault("purchase.mint_fee_lamports", domain.DEFAULT_MINT_FEE)
	v.SetDefault("purchase.tx_fee_lamports", domain.DEFAULT_TX_FEE)
	v.SetDefault("purchase.platform_fee_bps", domain.DEFAULT_PLATFORM_FEE_BPS)
	v.SetDefault("purchase.usdc_decimals", domain.DEFAULT_USDC_DECIMALS)
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("solana.rpc_url", "https://api.mainnet-beta.solana.com")
	v.SetDefault("solana.commitment", "confirmed")
	v.SetDefault("solana.usdc_mint", "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	v.SetDefault("solana.request_timeout", "15s")
	v.SetDefault("solana.max_retries", 3)
	v.SetDefault("minter.timeout", "90s")
	v.SetDefault("metadata.symbol", domain.DEFAULT_NFT_SYMBOL)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "EDITION_NOTIFICATIONS")
	v.SetDefault("nats.subject_prefix", "notifications.push")
	v.SetDefault("nats.connection_name", "ff-editions-api")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.poll_limit_per_minute", 120)
	v.SetDefault("worker.pool_size", 10)
	v.SetDefault("worker.queue_size", 1024)
	setPurchaseDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Purchase.PlatformFeeBps < 0 || config.Purchase.PlatformFeeBps > domain.MAX_BPS {
		return nil, fmt.Errorf("purchase.platform_fee_bps must be between 0 and %d", domain.MAX_BPS)
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("reservation_sweeper.interval", "30s")
	v.SetDefault("reservation_sweeper.batch_size", 100)
	v.SetDefault("reservation_sweeper.worker.pool_size", 10)
	v.SetDefault("reservation_sweeper.worker.queue_size", 200)
	setPurchaseDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_EDITIONS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Solana
		"solana.rpc_url",
		"solana.commitment",
		"solana.usdc_mint",
		"solana.platform_wallet",
		"solana.request_timeout",
		"solana.max_retries",
		// Purchase
		"purchase.stale_threshold",
		"purchase.mint_fee_lamports",
		"purchase.tx_fee_lamports",
		"purchase.platform_fee_bps",
		"purchase.usdc_decimals",
		// Minter
		"minter.url",
		"minter.api_key",
		"minter.timeout",
		// Metadata
		"metadata.public_base_url",
		"metadata.symbol",
		"metadata.cloudflare.account_id",
		"metadata.cloudflare.api_token",
		"metadata.cloudflare.namespace_id",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.poll_limit_per_minute",
		// Internal Worker config
		"worker.pool_size",
		"worker.queue_size",
		// Reservation Sweeper config
		"reservation_sweeper.interval",
		"reservation_sweeper.batch_size",
		"reservation_sweeper.worker.pool_size",
		"reservation_sweeper.worker.queue_size",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
