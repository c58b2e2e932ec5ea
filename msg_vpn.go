package sempconfig

// MsgVpn is the Message VPN object class. VPNs live at the top of the
// configuration tree, keyed by msgVpnName.
var MsgVpn = &ObjectClass{
	Name:     "msg-vpn",
	KeyField: "msgVpnName",
	Defaults: map[string]any{
		"enabled": true,
	},
	Collection: func(_ map[string]string) string {
		return MsgVpns
	},
}
