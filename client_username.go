package sempconfig

// ScopeMsgVpn is the scope parameter naming the parent Message VPN.
const ScopeMsgVpn = "msg_vpn"

// ClientUsername is the Client Username object class. Client usernames are
// scoped to a Message VPN, keyed by clientUsername.
var ClientUsername = &ObjectClass{
	Name:     "client-username",
	KeyField: "clientUsername",
	Defaults: map[string]any{
		"enabled": true,
	},
	ScopeParams: []string{ScopeMsgVpn},
	Collection: func(scope map[string]string) string {
		return CollectionPath(MsgVpns, scope[ScopeMsgVpn], ClientUsernames)
	},
}
