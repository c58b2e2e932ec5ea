package sempconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Parameter defaults match a stock Solace software broker's management
// listener and factory admin account.
const (
	DefaultHost     = "localhost"
	DefaultPort     = 8080
	DefaultUsername = "admin"
	DefaultPassword = "admin"
)

// NewBrokerViper returns a viper instance preloaded with broker connection
// defaults and bound to SOLACE_* environment variables. Callers bind their
// flags on top before loading.
func NewBrokerViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("secure_connection", false)
	v.SetDefault("username", DefaultUsername)
	v.SetDefault("password", DefaultPassword)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("tls_skip_verify", false)
	v.SetEnvPrefix("SOLACE")
	v.AutomaticEnv()
	return v
}

// LoadBrokerConfig reads an optional config file into v, unmarshals the
// merged settings, and validates them at the boundary.
func LoadBrokerConfig(v *viper.Viper, configFile string) (*BrokerConfig, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", configFile, err)
		}
	}

	var config BrokerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing broker configuration: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the connection parameters before any client is built.
func (c *BrokerConfig) Validate() error {
	if c.Host == "" {
		return &ConfigError{Param: "host", Reason: "must not be empty"}
	}
	if c.Port < 1 || c.Port > 65535 {
		return &ConfigError{Param: "port", Reason: fmt.Sprintf("must be between 1 and 65535, got %d", c.Port)}
	}
	if c.Username == "" {
		return &ConfigError{Param: "username", Reason: "must not be empty"}
	}
	if c.Timeout < 0 {
		return &ConfigError{Param: "timeout", Reason: fmt.Sprintf("must be positive, got %s", c.Timeout)}
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	return nil
}
