// headers/redact/redact.go
package redact

import "net/http"

// Redacted replaces any value hidden from logs.
const Redacted = "REDACTED"

// sensitiveKeys lists the log field and header names that carry credentials.
var sensitiveKeys = map[string]bool{
	"AccessToken":         true,
	"Authorization":       true,
	"ClientSecret":        true,
	"Proxy-Authorization": true,
	"ProxyPassword":       true,
}

// RedactSensitiveHeaderData redacts sensitive data based on the hideSensitiveData flag.
func RedactSensitiveHeaderData(hideSensitiveData bool, key, value string) string {
	if hideSensitiveData && IsSensitiveKey(key) {
		return Redacted
	}
	return value
}

// IsSensitiveKey reports whether key names a credential. Header names are
// compared in canonical form.
func IsSensitiveKey(key string) bool {
	return sensitiveKeys[key] || sensitiveKeys[http.CanonicalHeaderKey(key)]
}

// RedactHeaders returns a copy of h with every sensitive header value replaced.
// The original header is never modified.
func RedactHeaders(hideSensitiveData bool, h http.Header) http.Header {
	redacted := make(http.Header, len(h))
	for name, values := range h {
		copied := make([]string, len(values))
		for i, v := range values {
			copied[i] = RedactSensitiveHeaderData(hideSensitiveData, name, v)
		}
		redacted[name] = copied
	}
	return redacted
}
