package service

import "crypto/subtle"

// CredentialGate checks client-presented API keys against the configured
// shared secret. The game client carries the key in the X-API-Key header
// or in the request body depending on endpoint, so callers pass every
// candidate they found and any match authorizes the request.
type CredentialGate struct {
	secret string
}

// NewCredentialGate creates a gate for the configured secret.
func NewCredentialGate(secret string) *CredentialGate {
	return &CredentialGate{secret: secret}
}

// Authorize reports whether any candidate equals the configured secret.
// An empty configured secret rejects everything. Comparison runs in
// constant time per candidate.
func (g *CredentialGate) Authorize(candidates ...string) bool {
	if g.secret == "" {
		return false
	}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(g.secret)) == 1 {
			return true
		}
	}
	return false
}

// Configured reports whether a non-empty secret is set. Health reporting
// uses this without exposing the value.
func (g *CredentialGate) Configured() bool {
	return g.secret != ""
}
