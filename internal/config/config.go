package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/node"
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

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	MaxAge         time.Duration `mapstructure:"max_age"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// TokenConfig describes a payment token deployed at genesis
type TokenConfig struct {
	Address  string            `mapstructure:"address"`
	Symbol   string            `mapstructure:"symbol"`
	Decimals uint8             `mapstructure:"decimals"`
	Payable  bool              `mapstructure:"payable"`
	Balances map[string]string `mapstructure:"balances"` // holder address -> decimal amount in base units
}

// LedgerConfig describes the ledger deployment.
// Addresses are hex strings, amounts decimal strings.
type LedgerConfig struct {
	ChainID              int64         `mapstructure:"chain_id"`
	Owner                string        `mapstructure:"owner"`
	OwnershipAddress     string        `mapstructure:"ownership_address"`
	MarketplaceAddress   string        `mapstructure:"marketplace_address"`
	RelayerAddress       string        `mapstructure:"relayer_address"`
	RegistryAddress      string        `mapstructure:"registry_address"`
	FeeToken             string        `mapstructure:"fee_token"`
	RoyaltyCap           uint8         `mapstructure:"royalty_cap"`
	Minters              []string      `mapstructure:"minters"`
	Verifiers            []string      `mapstructure:"verifiers"`
	Tokens               []TokenConfig `mapstructure:"tokens"`
	ApproverRegistryPath string        `mapstructure:"approver_registry_path"`
}

// KeeperConfig holds auction keeper configuration
type KeeperConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Address        string        `mapstructure:"address"` // caller of settlement transactions
	Interval       time.Duration `mapstructure:"interval"`
	WorkerPoolSize int           `mapstructure:"pool_size"`
	RetryInterval  time.Duration `mapstructure:"retry_interval"`
	MaxRetries     uint64        `mapstructure:"max_retries"`
}

// EmitterConfig holds outbox emitter configuration
type EmitterConfig struct {
	CursorName     string        `mapstructure:"cursor_name"`
	BatchSize      int           `mapstructure:"batch_size"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	RetryInterval  time.Duration `mapstructure:"retry_interval"`
	MaxRetries     uint64        `mapstructure:"max_retries"`
	MaxRetryPeriod time.Duration `mapstructure:"max_retry_period"`
}

// OSNFTDConfig holds configuration for the ledger daemon
type OSNFTDConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	Keeper     KeeperConfig   `mapstructure:"keeper"`
}

// EventEmitterConfig holds configuration for event-emitter
type EventEmitterConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Emitter    EmitterConfig  `mapstructure:"emitter"`
}

// LoadOSNFTDConfig loads configuration for osnftd
func LoadOSNFTDConfig(configFile string, envPath string) (*OSNFTDConfig, error) {
	v := configureViper("osnftd", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("ledger.chain_id", 1)
	v.SetDefault("keeper.enabled", true)
	v.SetDefault("keeper.interval", "30s")
	v.SetDefault("keeper.pool_size", 4)
	v.SetDefault("keeper.retry_interval", "1s")
	v.SetDefault("keeper.max_retries", 3)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config OSNFTDConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadEventEmitterConfig loads configuration for event-emitter
func LoadEventEmitterConfig(configFile string, envPath string) (*EventEmitterConfig, error) {
	v := configureViper("event-emitter", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.stream_name", "OSNFT_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "osnft-event-emitter")
	v.SetDefault("nats.max_age", "168h")
	v.SetDefault("emitter.cursor_name", "jetstream")
	v.SetDefault("emitter.batch_size", 100)
	v.SetDefault("emitter.poll_interval", "1s")
	v.SetDefault("emitter.retry_interval", "500ms")
	v.SetDefault("emitter.max_retry_period", "1m")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config EventEmitterConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		if errors.Is(err, os.ErrNotExist) {
			// Explicit config path that does not exist
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

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
		// 2. Service-specific directory (e.g., cmd/osnftd/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("OSNFT")
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
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.max_age",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Ledger; token lists only come from the config file
		"ledger.chain_id",
		"ledger.owner",
		"ledger.ownership_address",
		"ledger.marketplace_address",
		"ledger.relayer_address",
		"ledger.registry_address",
		"ledger.fee_token",
		"ledger.royalty_cap",
		"ledger.minters",
		"ledger.verifiers",
		"ledger.approver_registry_path",
		// Keeper
		"keeper.enabled",
		"keeper.address",
		"keeper.interval",
		"keeper.pool_size",
		"keeper.retry_interval",
		"keeper.max_retries",
		// Emitter
		"emitter.cursor_name",
		"emitter.batch_size",
		"emitter.poll_interval",
		"emitter.retry_interval",
		"emitter.max_retries",
		"emitter.max_retry_period",
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

// Enabled reports whether a database is configured
func (c *DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// NodeConfig converts the ledger section into the node deployment
func (c *LedgerConfig) NodeConfig() (node.Config, error) {
	var cfg node.Config
	var err error

	cfg.ChainID = c.ChainID
	cfg.RoyaltyCap = c.RoyaltyCap

	fields := []struct {
		name  string
		value string
		dst   *common.Address
	}{
		{"ledger.owner", c.Owner, &cfg.Owner},
		{"ledger.ownership_address", c.OwnershipAddress, &cfg.OwnershipAddress},
		{"ledger.marketplace_address", c.MarketplaceAddress, &cfg.MarketplaceAddress},
		{"ledger.relayer_address", c.RelayerAddress, &cfg.RelayerAddress},
		{"ledger.registry_address", c.RegistryAddress, &cfg.RegistryAddress},
		{"ledger.fee_token", c.FeeToken, &cfg.FeeToken},
	}
	for _, f := range fields {
		if *f.dst, err = parseAddress(f.name, f.value); err != nil {
			return node.Config{}, err
		}
	}

	if cfg.Minters, err = parseAddresses("ledger.minters", c.Minters); err != nil {
		return node.Config{}, err
	}
	if cfg.Verifiers, err = parseAddresses("ledger.verifiers", c.Verifiers); err != nil {
		return node.Config{}, err
	}

	for i, tc := range c.Tokens {
		name := fmt.Sprintf("ledger.tokens[%d]", i)
		addr, err := parseAddress(name+".address", tc.Address)
		if err != nil {
			return node.Config{}, err
		}
		balances := make(map[common.Address]*uint256.Int, len(tc.Balances))
		for holder, amount := range tc.Balances {
			h, err := parseAddress(name+".balances", holder)
			if err != nil {
				return node.Config{}, err
			}
			v, err := uint256.FromDecimal(amount)
			if err != nil {
				return node.Config{}, fmt.Errorf("%s.balances: invalid amount %q for %s: %w", name, amount, holder, err)
			}
			balances[h] = v
		}
		cfg.Tokens = append(cfg.Tokens, node.TokenConfig{
			Address:  addr,
			Symbol:   tc.Symbol,
			Decimals: tc.Decimals,
			Payable:  tc.Payable,
			Balances: balances,
		})
	}

	return cfg, nil
}

// KeeperAddress returns the caller of settlement transactions
func (c *KeeperConfig) KeeperAddress() (common.Address, error) {
	return parseAddress("keeper.address", c.Address)
}

func parseAddress(name, value string) (common.Address, error) {
	value = strings.TrimSpace(value)
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%s: invalid address %q", name, value)
	}
	return common.HexToAddress(value), nil
}

func parseAddresses(name string, values []string) ([]common.Address, error) {
	out := make([]common.Address, 0, len(values))
	for _, value := range values {
		addr, err := parseAddress(name, value)
		if err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, nil
}
