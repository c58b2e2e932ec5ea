package sempconfig

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientUsernameClass(t *testing.T) {
	assert.Equal(t, "clientUsername", ClientUsername.KeyField)
	assert.Equal(t, []string{ScopeMsgVpn}, ClientUsername.ScopeParams)

	scope := map[string]string{ScopeMsgVpn: "foo"}
	assert.Equal(t, "msgVpns/foo/clientUsernames", ClientUsername.Collection(scope))

	// keys with reserved characters stay intact in the path
	scope[ScopeMsgVpn] = "my vpn"
	assert.Equal(t, "msgVpns/my%20vpn/clientUsernames", ClientUsername.Collection(scope))
}

func TestClientUsername_CreateInVpn(t *testing.T) {
	broker := newFakeBroker(t)
	r := &Reconciler{Client: broker.client()}

	outcome, err := r.Reconcile(context.Background(), ClientUsername, DesiredState{
		Name:      "app1",
		Settings:  map[string]any{"password": "secret"},
		Lifecycle: StatePresent,
	}, map[string]string{ScopeMsgVpn: "foo"})
	require.NoError(t, err)
	assert.True(t, outcome.Changed)

	mutating := broker.mutatingCalls()
	require.Len(t, mutating, 1)
	assert.Equal(t, http.MethodPost, mutating[0].Method)
	assert.Equal(t, "/SEMP/v2/config/msgVpns/foo/clientUsernames", mutating[0].Path)
	assert.Equal(t, map[string]any{
		"clientUsername": "app1",
		"enabled":        true,
		"password":       "secret",
	}, mutating[0].Body)
}

func TestClientUsername_DeleteInVpn(t *testing.T) {
	broker := newFakeBroker(t, map[string]any{"clientUsername": "app1", "enabled": true})
	r := &Reconciler{Client: broker.client()}

	outcome, err := r.Reconcile(context.Background(), ClientUsername, DesiredState{
		Name:      "app1",
		Lifecycle: StateAbsent,
	}, map[string]string{ScopeMsgVpn: "foo"})
	require.NoError(t, err)
	assert.True(t, outcome.Changed)

	mutating := broker.mutatingCalls()
	require.Len(t, mutating, 1)
	assert.Equal(t, http.MethodDelete, mutating[0].Method)
	assert.Equal(t, "/SEMP/v2/config/msgVpns/foo/clientUsernames/app1", mutating[0].Path)
}
