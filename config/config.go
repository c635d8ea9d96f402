package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	BackendURL  string
	ExplorerURL string
	RPCURL      string
	Commitment  string
	ListenAddr  string
	AssetsDir   string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from environment variables and config file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".sol-swap")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	// Set default values
	v.SetDefault("backend_url", "http://localhost:5000")
	v.SetDefault("explorer_url", "https://solscan.io/tx/")
	v.SetDefault("rpc_url", "https://api.mainnet-beta.solana.com")
	v.SetDefault("commitment", "confirmed")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("assets_dir", "./web")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	// Read from environment variables
	v.SetEnvPrefix("SOL_SWAP")
	v.AutomaticEnv()

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		BackendURL:  v.GetString("backend_url"),
		ExplorerURL: v.GetString("explorer_url"),
		RPCURL:      v.GetString("rpc_url"),
		Commitment:  v.GetString("commitment"),
		ListenAddr:  v.GetString("listen_addr"),
		AssetsDir:   v.GetString("assets_dir"),
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.BackendURL != "" && !strings.HasPrefix(c.BackendURL, "http://") && !strings.HasPrefix(c.BackendURL, "https://") {
		return fmt.Errorf("backend_url must start with http:// or https://, got %q", c.BackendURL)
	}
	if c.RPCURL == "" {
		return fmt.Errorf("rpc_url not set. Please set SOL_SWAP_RPC_URL environment variable or rpc_url in .sol-swap.yaml")
	}
	return nil
}
