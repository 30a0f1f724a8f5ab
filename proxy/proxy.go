// proxy/proxy.go

// Package proxy routes the client's traffic through an HTTP(S) proxy.
package proxy

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-http-client-commercetools/headers/redact"
	"github.com/deploymenttheory/go-api-http-client-commercetools/logger"
	"go.uber.org/zap"
)

// InitializeProxy initializes the proxy configuration based on the provided options.
// Credentials are carried in the proxy URL; net/http turns them into a
// Proxy-Authorization header for plain requests and CONNECT tunnels alike.
func InitializeProxy(httpClient *http.Client, proxyURL, proxyUsername, proxyPassword string, hideSensitiveData bool, log logger.Logger) error {
	if proxyURL == "" {
		return nil
	}

	parsedProxyURL, err := ParseProxyURL(proxyURL)
	if err != nil {
		log.Error("Failed to parse proxy URL", zap.Error(err))
		return err
	}

	if proxyUsername != "" {
		parsedProxyURL.User = url.UserPassword(proxyUsername, proxyPassword)
	}

	transport := cloneTransport(httpClient.Transport)
	transport.Proxy = http.ProxyURL(parsedProxyURL)
	httpClient.Transport = transport

	log.Info("Proxy configured",
		zap.String("ProxyURL", parsedProxyURL.Redacted()),
		zap.String("ProxyUsername", proxyUsername),
		zap.String("ProxyPassword", redact.RedactSensitiveHeaderData(hideSensitiveData, "ProxyPassword", proxyPassword)),
	)
	return nil
}

// ParseProxyURL validates a proxy URL: it must be absolute with an http, https or socks5 scheme.
func ParseProxyURL(proxyURL string) (*url.URL, error) {
	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https", "socks5":
	default:
		return nil, fmt.Errorf("invalid proxy URL %q: unsupported scheme %q", parsed.Redacted(), parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid proxy URL %q: missing host", parsed.Redacted())
	}
	return parsed, nil
}

// cloneTransport copies rt when it is an *http.Transport so existing settings
// survive, and falls back to a copy of http.DefaultTransport otherwise.
func cloneTransport(rt http.RoundTripper) *http.Transport {
	if t, ok := rt.(*http.Transport); ok && t != nil {
		return t.Clone()
	}
	return http.DefaultTransport.(*http.Transport).Clone()
}
