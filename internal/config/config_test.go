package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
auth:
  jwt_public_key: "test-public-key"
  api_keys:
    - key-1
    - key-2
solana:
  rpc_url: "https://api.devnet.solana.com"
  commitment: finalized
  usdc_mint: "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU"
  platform_wallet: "P1atform11111111111111111111111111111111111"
purchase:
  stale_threshold: 3m
  mint_fee_lamports: 20000000
  platform_fee_bps: 250
minter:
  url: "http://minter:8081"
  api_key: "minter-key"
  timeout: 45s
metadata:
  public_base_url: "https://metadata.example.com"
  symbol: "FF"
  cloudflare:
    account_id: "cf-account"
    api_token: "cf-token"
    namespace_id: "cf-namespace"
nats:
  url: "nats://localhost:4222"
redis:
  addr: "localhost:6379"
  poll_limit_per_minute: 30
worker:
  pool_size: 4
  queue_size: 64
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "test-public-key", cfg.Auth.JWTPublicKey)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
				assert.Equal(t, "https://api.devnet.solana.com", cfg.Solana.RPCURL)
				assert.Equal(t, "finalized", cfg.Solana.Commitment)
				assert.Equal(t, "P1atform11111111111111111111111111111111111", cfg.Solana.PlatformWallet)
				assert.Equal(t, 3*time.Minute, cfg.Purchase.StaleThreshold)
				assert.Equal(t, uint64(20000000), cfg.Purchase.MintFeeLamports)
				assert.Equal(t, 250, cfg.Purchase.PlatformFeeBps)
				assert.Equal(t, "http://minter:8081", cfg.Minter.URL)
				assert.Equal(t, 45*time.Second, cfg.Minter.Timeout)
				assert.Equal(t, "FF", cfg.Metadata.Symbol)
				assert.Equal(t, "cf-namespace", cfg.Metadata.Cloudflare.NamespaceID)
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
				assert.Equal(t, 30, cfg.Redis.PollLimitPerMinute)
				assert.Equal(t, 4, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 64, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "confirmed", cfg.Solana.Commitment)
				assert.Equal(t, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", cfg.Solana.USDCMint)
				assert.Equal(t, 2*time.Minute, cfg.Purchase.StaleThreshold)
				assert.Equal(t, uint64(10_000_000), cfg.Purchase.MintFeeLamports)
				assert.Equal(t, uint64(10_000), cfg.Purchase.TxFeeLamports)
				assert.Equal(t, 500, cfg.Purchase.PlatformFeeBps)
				assert.Equal(t, uint8(6), cfg.Purchase.USDCDecimals)
				assert.Equal(t, "EDITION", cfg.Metadata.Symbol)
				assert.Equal(t, "EDITION_NOTIFICATIONS", cfg.NATS.StreamName)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, 120, cfg.Redis.PollLimitPerMinute)
			},
		},
		{
			name: "platform fee out of range",
			configFile: `
purchase:
  platform_fee_bps: 20000
`,
			expectError: true,
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadSweeperConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SweeperConfig)
	}{
		{
			name: "valid config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
reservation_sweeper:
  interval: 10s
`,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, 5, cfg.Database.MaxOpenConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, 10*time.Second, cfg.ReservationSweeper.Interval)
				assert.Equal(t, 100, cfg.ReservationSweeper.BatchSize)
				assert.Equal(t, 10, cfg.ReservationSweeper.Worker.WorkerPoolSize)
				assert.Equal(t, 2*time.Minute, cfg.Purchase.StaleThreshold)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "missing database name",
			configFile: `
database:
  host: localhost
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.configFile), 0600))

			cfg, err := LoadSweeperConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "db.internal",
				Port:     6432,
				User:     "editions",
				Password: "p@ssw0rd!",
				DBName:   "editions",
				SSLMode:  "disable",
			},
			expected: "host=db.internal port=6432 user=editions password=p@ssw0rd! dbname=editions sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Viper uses the FF_EDITIONS_ prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `FF_EDITIONS_DEBUG=true
FF_EDITIONS_DATABASE_HOST=env-host
FF_EDITIONS_DATABASE_PORT=6543
FF_EDITIONS_SOLANA_PLATFORM_WALLET=EnvP1atform1111111111111111111111111111111
FF_EDITIONS_PURCHASE_STALE_THRESHOLD=90s
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// The per-service local file is loaded last and wins
	localFile := filepath.Join(envDir, ".env.api.local")
	err = os.WriteFile(localFile, []byte("FF_EDITIONS_DATABASE_HOST=local-host\n"), 0600)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
solana:
  platform_wallet: FileP1atform111111111111111111111111111111
`
	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	t.Cleanup(func() {
		for _, key := range []string{
			"FF_EDITIONS_DEBUG",
			"FF_EDITIONS_DATABASE_HOST",
			"FF_EDITIONS_DATABASE_PORT",
			"FF_EDITIONS_SOLANA_PLATFORM_WALLET",
			"FF_EDITIONS_PURCHASE_STALE_THRESHOLD",
		} {
			_ = os.Unsetenv(key)
		}
	})

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "local-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "EnvP1atform1111111111111111111111111111111", cfg.Solana.PlatformWallet)
	assert.Equal(t, 90*time.Second, cfg.Purchase.StaleThreshold)
}
