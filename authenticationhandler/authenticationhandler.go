// authenticationhandler/authenticationhandler.go

/* Package authenticationhandler obtains and caches the access tokens used to call
the commercetools HTTP API. Tokens come from the client credentials grant of the
authorization service and are kept in a single mutex-guarded slot until they get
within the refresh buffer of their expiry. */
package authenticationhandler

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// TokenProvider obtains a fresh token. Implementations perform one network
// round trip per call and do not cache.
type TokenProvider interface {
	RetrieveToken(ctx context.Context) (Token, error)
}

// ClientCredentials identifies an API client of one project.
type ClientCredentials struct {
	ProjectKey   string
	ClientID     string
	ClientSecret string
}

var projectKeyRegex = regexp.MustCompile(`^[a-z0-9-]{2,36}$`)

// Validate checks the credentials can be used for a token request.
func (c ClientCredentials) Validate() error {
	if !projectKeyRegex.MatchString(c.ProjectKey) {
		return fmt.Errorf("invalid project key %q: expected 2 to 36 lowercase letters, digits or dashes", c.ProjectKey)
	}
	if c.ClientID == "" {
		return fmt.Errorf("client id is required")
	}
	// RFC 7617: the user-id of basic authentication cannot contain a colon.
	if strings.Contains(c.ClientID, ":") {
		return fmt.Errorf("client id must not contain ':'")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("client secret is required")
	}
	return nil
}

// Scope returns the OAuth scope requested for the project.
func (c ClientCredentials) Scope() string {
	return "manage_project:" + c.ProjectKey
}
