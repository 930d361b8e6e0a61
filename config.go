package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config defines the structure of the configuration file.
type Config struct {
	GitCommit          string        `yaml:"git_commit" envconfig:"SPBS_GIT_COMMIT"`
	GitTag             string        `yaml:"git_tag" envconfig:"SPBS_GIT_TAG"`
	BuildTime          string        `yaml:"build_time" envconfig:"SPBS_BUILD_TIME"`
	IsProduction       bool          `yaml:"is_production" envconfig:"SPBS_IS_PRODUCTION"`
	LogLevel           zapcore.Level `yaml:"log_level" envconfig:"SPBS_LOG_LEVEL"`
	LogFolder          string        `yaml:"log_folder" envconfig:"SPBS_LOG_FOLDER"`
	LogMaxSize         int           `yaml:"log_max_size" envconfig:"SPBS_LOG_MAX_SIZE"`
	ProfilerEnable     bool          `yaml:"profiler_enable" envconfig:"SPBS_PROFILER_ENABLE"`
	OpsEndpointsEnable bool          `yaml:"ops_endpoints_enable" envconfig:"SPBS_OPS_ENDPOINTS_ENABLE"`
	Server             ServerConfig  `yaml:"server"`
	Store              StoreConfig   `yaml:"store"`
}

type ServerConfig struct {
	Host            string        `yaml:"host" envconfig:"SPBS_SERVER_HOST"`
	Port            string        `yaml:"port" envconfig:"SPBS_SERVER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"SPBS_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"SPBS_SERVER_WRITE_TIMEOUT"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"SPBS_SERVER_REQUEST_TIMEOUT"` // Time to wait for a request to finish
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SPBS_SERVER_SHUTDOWN_TIMEOUT"`
}

// StoreConfig groups the storefront business settings: pricing rules
// and the artificial delays used to mimic real fetch/processing times.
type StoreConfig struct {
	TaxRate          string        `yaml:"tax_rate" envconfig:"SPBS_STORE_TAX_RATE"`
	ShippingFee      string        `yaml:"shipping_fee" envconfig:"SPBS_STORE_SHIPPING_FEE"`
	FreeShippingOver string        `yaml:"free_shipping_over" envconfig:"SPBS_STORE_FREE_SHIPPING_OVER"`
	BrowseDelay      time.Duration `yaml:"browse_delay" envconfig:"SPBS_STORE_BROWSE_DELAY"`
	CheckoutDelay    time.Duration `yaml:"checkout_delay" envconfig:"SPBS_STORE_CHECKOUT_DELAY"`
	AuthDelay        time.Duration `yaml:"auth_delay" envconfig:"SPBS_STORE_AUTH_DELAY"`
}

// LoadConfigFile provides an instance of config structure for the all application.
func LoadConfigFile(configFile string) (*Config, error) {
	file, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cfg := &Config{}
	yd := yaml.NewDecoder(file)
	err = yd.Decode(cfg)

	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigEnvs reads the environments variables and provides an instance of the App config.
func LoadConfigEnvs(prefix string, config *Config) error {
	return envconfig.Process(prefix, config)
}

// InitConfig setup defaults values for non provided parameters
// and configures build tags values to be used if provided.
func InitConfig(config *Config, gitCommit, gitTag, buildTime string) error {
	if len(gitCommit) != 0 {
		config.GitCommit = gitCommit
	}

	if len(gitTag) != 0 {
		config.GitTag = gitTag
	}

	if len(buildTime) != 0 {
		config.BuildTime = buildTime
	}

	if len(config.Server.Host) == 0 || len(config.Server.Port) == 0 {
		return errors.New("make sure to set valid server address and port in configuration file")
	}

	if len(config.Store.TaxRate) == 0 {
		config.Store.TaxRate = "0.08"
	}

	if len(config.Store.ShippingFee) == 0 {
		config.Store.ShippingFee = "5.99"
	}

	if len(config.Store.FreeShippingOver) == 0 {
		config.Store.FreeShippingOver = "50"
	}

	for _, amount := range []string{config.Store.TaxRate, config.Store.ShippingFee, config.Store.FreeShippingOver} {
		if _, err := decimal.NewFromString(amount); err != nil {
			return fmt.Errorf("invalid store pricing setting %q: %w", amount, err)
		}
	}

	return nil
}

// PricingRules builds the pricing rules from already validated store settings.
func (c *Config) PricingRules() PricingRules {
	return PricingRules{
		TaxRate:          decimal.RequireFromString(c.Store.TaxRate),
		ShippingFee:      decimal.RequireFromString(c.Store.ShippingFee),
		FreeShippingOver: decimal.RequireFromString(c.Store.FreeShippingOver),
	}
}

// LoadAndInitConfigs loads in order the configs from various predefined sources
// then build the App configuration data.
func LoadAndInitConfigs(gitCommit, gitTag, buildTime string) (*Config, error) {
	// Setup the yaml configuration from file.
	config, err := LoadConfigFile("./config.yml")
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from file: %s", err)
	}

	// Set the environment configuration.
	err = godotenv.Load("./config.env")
	if err != nil {
		return config, fmt.Errorf("failed to set environment configurations: %s", err)
	}

	// Use environment variables with prefix `SPBS`.
	err = LoadConfigEnvs("SPBS", config)
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from environment: %s", err)
	}

	err = InitConfig(config, gitCommit, gitTag, buildTime)
	if err != nil {
		return config, fmt.Errorf("failed to initialize configurations: %s", err)
	}
	return config, nil
}
