package sempconfig

import (
	"context"
	"fmt"

	vault "github.com/hashicorp/vault/api"
)

// VaultCredentials reads the broker admin username and password from a Vault
// secret at the given path. The secret must carry "username" and "password"
// keys; both KV v1 and KV v2 layouts are accepted. The Vault address and
// token come from the standard VAULT_* environment variables unless addr
// overrides the address.
func VaultCredentials(ctx context.Context, addr, path string) (username, password string, err error) {
	config := vault.DefaultConfig()
	if addr != "" {
		config.Address = addr
	}

	client, err := vault.NewClient(config)
	if err != nil {
		return "", "", fmt.Errorf("building Vault client: %w", err)
	}

	secret, err := client.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return "", "", fmt.Errorf("reading Vault secret %q: %w", path, err)
	}
	if secret == nil || secret.Data == nil {
		return "", "", fmt.Errorf("Vault secret %q not found", path)
	}

	data := secret.Data
	// KV v2 wraps the payload in a nested "data" map.
	if nested, ok := data["data"].(map[string]any); ok {
		data = nested
	}

	username, ok := data["username"].(string)
	if !ok || username == "" {
		return "", "", fmt.Errorf("Vault secret %q has no username key", path)
	}
	password, ok = data["password"].(string)
	if !ok || password == "" {
		return "", "", fmt.Errorf("Vault secret %q has no password key", path)
	}

	return username, password, nil
}
