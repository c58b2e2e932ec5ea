package main

import (
	"github.com/spf13/cobra"

	sempconfig "github.com/solace-semp-config"
)

var vpnCmd = &cobra.Command{
	Use:   "vpn <name>",
	Short: "Ensure a Message VPN exists, is absent, or has the given settings",
	Long: `Reconcile one Message VPN on the broker.

Examples:
  # Create vpn foo with default settings
  solace-config vpn foo

  # Ensure vpn bar does not exist
  solace-config vpn bar --state absent

  # Set the MQTT listen port on vpn foo
  solace-config vpn foo --settings '{"serviceMqttPlainTextListenPort": 1234}'`,
	Args: cobra.ExactArgs(1),
	RunE: runVpn,
}

func init() {
	rootCmd.AddCommand(vpnCmd)
}

func runVpn(cmd *cobra.Command, args []string) error {
	settings, err := sempconfig.ParseSettings(flagSettings, flagSettingsFile)
	if err != nil {
		return err
	}
	return runReconcile(cmd, sempconfig.MsgVpn, args[0], nil, settings)
}
