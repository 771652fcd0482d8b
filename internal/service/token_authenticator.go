package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"sort"
	"strings"
)

// CanonicalHashAuthenticator implements ports.TokenAuthenticator: sort the
// request's scalar parameters by key, concatenate the values in that
// order together with the team's password, SHA-256 the result, and
// compare against the caller-supplied Token in constant time. This is
// deliberately independent from SessionTokenService's JWT scheme, which
// only guards the dashboard.
type CanonicalHashAuthenticator struct{}

// NewCanonicalHashAuthenticator creates a new canonical-hash authenticator.
func NewCanonicalHashAuthenticator() *CanonicalHashAuthenticator {
	return &CanonicalHashAuthenticator{}
}

// BuildToken computes the expected token for params and teamPassword. The
// password is inserted as an ordinary "Password" entry and takes part in
// the same ordinal key sort as every other parameter, rather than being
// appended last.
func (a *CanonicalHashAuthenticator) BuildToken(params map[string]string, teamPassword string) string {
	withPassword := make(map[string]string, len(params)+1)
	for k, v := range params {
		if k == "Token" || k == "Receipt" {
			continue
		}
		withPassword[k] = v
	}
	withPassword["Password"] = teamPassword

	keys := make([]string, 0, len(withPassword))
	for k := range withPassword {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(withPassword[k])
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether suppliedToken matches the token computed from
// params and teamPassword, using a constant-time comparison.
func (a *CanonicalHashAuthenticator) Verify(params map[string]string, teamPassword string, suppliedToken string) bool {
	expected := a.BuildToken(params, teamPassword)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(suppliedToken)) == 1
}
