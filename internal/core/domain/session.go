package domain

// Session is the explicit per-request wallet identity. It is passed into
// every operation instead of being read from ambient state, so operations
// are testable without a live wallet connection.
type Session struct {
	WalletAddress string `json:"wallet_address"` // normalized (lower-cased)
}

// NewSession builds a Session with a normalized wallet address.
func NewSession(wallet string) Session {
	return Session{WalletAddress: NormalizeWallet(wallet)}
}

// Owns reports whether the session wallet owns the given asset.
func (s Session) Owns(a *Asset) bool {
	return a != nil && a.WalletAddress == s.WalletAddress
}
