// authenticationhandler/token.go
package authenticationhandler

import (
	"fmt"
	"time"
)

// DefaultExpiryMargin is how long before its actual expiry a token stops being
// considered valid.
const DefaultExpiryMargin = 30 * time.Second

// Token is an access token and the instant it expires. Its fields never change
// after construction; a refreshed credential is always a new Token.
//
// The expiry is computed from the local clock when the token is created, so
// clock skew between this host and the authorization server shifts it.
type Token struct {
	accessToken string
	expiresAt   time.Time
}

// NewToken creates a token expiring expiresInSeconds from now. A non-positive
// lifetime yields a token that is already expired.
func NewToken(accessToken string, expiresInSeconds int64) Token {
	return Token{
		accessToken: accessToken,
		expiresAt:   time.Now().UTC().Add(time.Duration(expiresInSeconds) * time.Second),
	}
}

// AccessToken returns the opaque credential.
func (t Token) AccessToken() string {
	return t.accessToken
}

// ExpiresAt returns the absolute UTC expiry.
func (t Token) ExpiresAt() time.Time {
	return t.expiresAt
}

// IsValidWithMargin reports whether now+margin is still before the expiry.
func (t Token) IsValidWithMargin(now time.Time, margin time.Duration) bool {
	return now.Add(margin).Before(t.expiresAt)
}

// IsValid checks the token against the current time with DefaultExpiryMargin.
func (t Token) IsValid() bool {
	return t.IsValidWithMargin(time.Now().UTC(), DefaultExpiryMargin)
}

// String never prints the credential itself.
func (t Token) String() string {
	return fmt.Sprintf("Token: access_token = REDACTED, expires_at = %s", t.expiresAt.Format(time.RFC3339))
}
