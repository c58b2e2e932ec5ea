package main

import (
	"github.com/spf13/cobra"

	sempconfig "github.com/solace-semp-config"
)

var (
	flagMsgVpn           string
	flagGeneratePassword bool
)

var clientUsernameCmd = &cobra.Command{
	Use:   "client-username <name>",
	Short: "Ensure a Client Username exists, is absent, or has the given settings",
	Long: `Reconcile one Client Username inside a Message VPN.

Examples:
  # Create client username app1 in vpn foo
  solace-config client-username app1 --msg-vpn foo

  # Create app1 with a freshly generated password
  solace-config client-username app1 --msg-vpn foo --generate-password

  # Ensure app2 does not exist in vpn foo
  solace-config client-username app2 --msg-vpn foo --state absent`,
	Args: cobra.ExactArgs(1),
	RunE: runClientUsername,
}

func init() {
	clientUsernameCmd.Flags().StringVar(&flagMsgVpn, "msg-vpn", "", "Message VPN the client username belongs to (required)")
	clientUsernameCmd.Flags().BoolVar(&flagGeneratePassword, "generate-password", false, "Generate a random password and include it in the settings")
	rootCmd.AddCommand(clientUsernameCmd)
}

func runClientUsername(cmd *cobra.Command, args []string) error {
	settings, err := sempconfig.ParseSettings(flagSettings, flagSettingsFile)
	if err != nil {
		return err
	}

	if flagGeneratePassword {
		if settings == nil {
			settings = map[string]any{}
		}
		if _, ok := settings["password"]; !ok {
			password, err := sempconfig.GeneratePassword(32)
			if err != nil {
				return err
			}
			settings["password"] = password
			newLogger().Info("generated password for client username",
				"name", args[0],
				"msg_vpn", flagMsgVpn,
				"password", password,
			)
		}
	}

	scope := map[string]string{sempconfig.ScopeMsgVpn: flagMsgVpn}
	return runReconcile(cmd, sempconfig.ClientUsername, args[0], scope, settings)
}
