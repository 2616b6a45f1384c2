package entity

// Settings holds the payment-channel toggles stored under settings/payment.
// At least one channel must remain enabled after every update; updates that
// would disable both are rejected before they reach the gateway.
type Settings struct {
	RazorpayEnabled bool `json:"razorpayEnabled"`
	CODEnabled      bool `json:"codEnabled"`
}

// SettingsPatch is a partial settings update; nil fields are left unchanged.
type SettingsPatch struct {
	RazorpayEnabled *bool `json:"razorpayEnabled,omitempty"`
	CODEnabled      *bool `json:"codEnabled,omitempty"`
}

// DefaultSettings is adopted when the remote path is absent
// (lazy initialization on first read).
func DefaultSettings() Settings {
	return Settings{RazorpayEnabled: true, CODEnabled: true}
}

// Apply merges the patch onto s and returns the result.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.RazorpayEnabled != nil {
		s.RazorpayEnabled = *p.RazorpayEnabled
	}
	if p.CODEnabled != nil {
		s.CODEnabled = *p.CODEnabled
	}

	return s
}

// Valid reports whether at least one payment channel is enabled.
func (s Settings) Valid() bool {
	return s.RazorpayEnabled || s.CODEnabled
}

// MethodEnabled reports whether the named payment method is currently
// switched on. Known methods are "razorpay" and "cod".
func (s Settings) MethodEnabled(method string) bool {
	switch method {
	case "razorpay":
		return s.RazorpayEnabled
	case "cod":
		return s.CODEnabled
	default:
		return false
	}
}
