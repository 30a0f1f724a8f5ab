// headers/headers.go
package headers

import (
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-http-client-commercetools/headers/redact"
	"github.com/deploymenttheory/go-api-http-client-commercetools/logger"
	"github.com/deploymenttheory/go-api-http-client-commercetools/version"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// CorrelationIDHeader lets commercetools support trace a request across services.
	CorrelationIDHeader = "X-Correlation-ID"

	ContentTypeJSON = "application/json"
)

// HeaderHandler is responsible for managing and setting headers on an outgoing request.
type HeaderHandler struct {
	header            http.Header   // The header set being managed
	log               logger.Logger // The logger to use for logging headers
	hideSensitiveData bool          // Redact credentials when logging
}

// NewHeaderHandler creates a new instance of HeaderHandler for a given header set and logger.
func NewHeaderHandler(header http.Header, log logger.Logger, hideSensitiveData bool) *HeaderHandler {
	return &HeaderHandler{
		header:            header,
		log:               log,
		hideSensitiveData: hideSensitiveData,
	}
}

// SetAuthorization sets a bearer Authorization header.
func (h *HeaderHandler) SetAuthorization(token string) {
	// Ensure the token is prefixed with "Bearer " only once
	if !strings.HasPrefix(token, "Bearer ") {
		token = "Bearer " + token
	}
	h.header.Set("Authorization", token)
}

// SetContentType sets the Content-Type header for the request.
func (h *HeaderHandler) SetContentType(contentType string) {
	h.header.Set("Content-Type", contentType)
}

// SetAccept sets the Accept header for the request.
func (h *HeaderHandler) SetAccept(acceptHeader string) {
	h.header.Set("Accept", acceptHeader)
}

// SetUserAgent sets the User-Agent header for the request.
func (h *HeaderHandler) SetUserAgent(userAgent string) {
	h.header.Set("User-Agent", userAgent)
}

// SetCorrelationID sets a fresh random X-Correlation-ID unless one is present
// and returns the value in effect.
func (h *HeaderHandler) SetCorrelationID() string {
	if id := h.header.Get(CorrelationIDHeader); id != "" {
		return id
	}
	id := uuid.NewString()
	h.header.Set(CorrelationIDHeader, id)
	return id
}

// SetRequestHeaders sets the headers every commerce API request carries.
func (h *HeaderHandler) SetRequestHeaders(token string) {
	h.SetAuthorization(token)
	h.SetAccept(ContentTypeJSON)
	h.SetUserAgent(version.GetUserAgentHeader())
	h.SetCorrelationID()
}

// Redacted returns a copy of the managed headers safe for logging.
func (h *HeaderHandler) Redacted() http.Header {
	return redact.RedactHeaders(h.hideSensitiveData, h.header)
}

// LogHeaders logs the current headers at debug level, redacting credentials when configured.
func (h *HeaderHandler) LogHeaders() {
	if h.log.GetLogLevel() > logger.LogLevelDebug {
		return
	}
	redacted := h.Redacted()
	fields := make([]zap.Field, 0, len(redacted))
	for name, values := range redacted {
		fields = append(fields, zap.Strings(name, values))
	}
	h.log.Debug("HTTP Request Headers", fields...)
}
