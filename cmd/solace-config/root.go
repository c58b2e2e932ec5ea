package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	sempconfig "github.com/solace-semp-config"
)

var (
	flagConfigFile   string
	flagVaultAddr    string
	flagVaultPath    string
	flagLogLevel     string
	flagDryRun       bool
	flagState        string
	flagSettings     string
	flagSettingsFile string
)

var rootCmd = &cobra.Command{
	Use:   "solace-config",
	Short: "Declaratively configure objects on a Solace message broker",
	Long: `solace-config ensures the existence, absence, or property-set of
configuration objects on a Solace message broker via the SEMP v2 API.

Each invocation reconciles exactly one object: the current state is read,
compared against the desired state, and at most one create, update, or
delete call is issued. The outcome is printed as JSON on stdout:

  {"changed": true, "response": {...}}

Connection parameters may also come from SOLACE_* environment variables or
a config file, and admin credentials optionally from a Vault secret.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("host", sempconfig.DefaultHost, "Hostname of the Solace broker")
	pf.Int("port", sempconfig.DefaultPort, "Management port of the Solace broker")
	pf.Bool("secure-connection", false, "Use https rather than http")
	pf.String("username", sempconfig.DefaultUsername, "Administrator username")
	pf.String("password", sempconfig.DefaultPassword, "Administrator password")
	pf.Duration("timeout", time.Second, "Connection timeout for SEMP requests")
	pf.Bool("tls-skip-verify", false, "Skip TLS certificate verification. Do not use in production.")

	pf.StringVar(&flagConfigFile, "config", "", "Path to a broker connection config file")
	pf.StringVar(&flagVaultAddr, "vault-addr", "", "Vault address for credential lookup (defaults to VAULT_ADDR)")
	pf.StringVar(&flagVaultPath, "vault-path", "", "Vault secret path holding broker username/password")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	pf.BoolVar(&flagDryRun, "dry-run", false, "Report what would change without issuing the mutating call")

	pf.StringVar(&flagState, "state", string(sempconfig.StatePresent), "Target state of the object (present or absent)")
	pf.StringVar(&flagSettings, "settings", "", "Additional object settings as an inline JSON object")
	pf.StringVar(&flagSettingsFile, "settings-file", "", "Path to a YAML file of additional object settings")
}

func newLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "solace-config",
		Level:  hclog.LevelFromString(flagLogLevel),
		Output: os.Stderr,
	})
}

// loadBroker builds the effective broker configuration from defaults,
// environment, config file, and flags, then applies Vault credentials when a
// secret path was given.
func loadBroker(ctx context.Context) (*sempconfig.BrokerConfig, error) {
	v := sempconfig.NewBrokerViper()
	for _, key := range []string{"host", "port", "secure_connection", "username", "password", "timeout", "tls_skip_verify"} {
		flagName := strings.ReplaceAll(key, "_", "-")
		if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flagName)); err != nil {
			return nil, fmt.Errorf("binding flag %q: %w", flagName, err)
		}
	}

	config, err := sempconfig.LoadBrokerConfig(v, flagConfigFile)
	if err != nil {
		return nil, err
	}

	if flagVaultPath != "" {
		username, password, err := sempconfig.VaultCredentials(ctx, flagVaultAddr, flagVaultPath)
		if err != nil {
			return nil, err
		}
		config.Username = username
		config.Password = password
	}

	return config, nil
}

// runReconcile is the shared body of the per-object subcommands.
func runReconcile(cmd *cobra.Command, class *sempconfig.ObjectClass, name string, scope map[string]string, settings map[string]any) error {
	ctx := cmd.Context()
	logger := newLogger()

	config, err := loadBroker(ctx)
	if err != nil {
		return err
	}

	desired := sempconfig.DesiredState{
		Name:      name,
		Settings:  settings,
		Lifecycle: sempconfig.Lifecycle(flagState),
	}

	reconciler := &sempconfig.Reconciler{
		Client: sempconfig.NewSEMPClient(config),
		Logger: logger,
		DryRun: flagDryRun,
	}

	outcome, err := reconciler.Reconcile(ctx, class, desired, scope)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	return encoder.Encode(outcome)
}
