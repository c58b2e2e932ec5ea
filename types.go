package sempconfig

import "time"

// Lifecycle is the target state of a broker object.
type Lifecycle string

const (
	StatePresent Lifecycle = "present"
	StateAbsent  Lifecycle = "absent"
)

// BrokerConfig holds connection details for a Solace broker's SEMP v2
// management interface.
type BrokerConfig struct {
	Host             string        `mapstructure:"host"`
	Port             int           `mapstructure:"port"`
	SecureConnection bool          `mapstructure:"secure_connection"`
	Username         string        `mapstructure:"username"`
	Password         string        `mapstructure:"password"`
	Timeout          time.Duration `mapstructure:"timeout"`
	TLSSkipVerify    bool          `mapstructure:"tls_skip_verify"`
}

// DesiredState describes one broker object as the caller wants it: its
// natural key, the settings to apply, and whether it should exist at all.
// Settings keys are SEMP v2 attribute names with their JSON values.
type DesiredState struct {
	Name      string
	Settings  map[string]any
	Lifecycle Lifecycle
}

// Outcome reports the result of a single reconcile. Response carries the
// broker's JSON body from the mutating call, or nil when nothing was sent.
type Outcome struct {
	Changed  bool           `json:"changed"`
	Response map[string]any `json:"response"`
}
