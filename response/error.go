// response/error.go
// Package response provides helpers for reading API responses and for turning
// unexpected responses into diagnostics.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/deploymenttheory/go-api-http-client-commercetools/logger"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// APIError is the best-effort diagnostic extracted from an error response body.
// commercetools answers with JSON; proxies and gateways in front of it may answer
// with XML, HTML or plain text.
type APIError struct {
	StatusCode       int           `json:"statusCode"`
	Message          string        `json:"message"`
	Errors           []ErrorDetail `json:"errors,omitempty"`
	OAuthError       string        `json:"error,omitempty"`             // OAuth2 error code, e.g. "invalid_client"
	OAuthDescription string        `json:"error_description,omitempty"` // OAuth2 error description
	RawResponse      string        `json:"-"`
}

// ErrorDetail is a single entry of the "errors" array.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error returns a string representation of the APIError, making it compatible with the error interface.
func (e *APIError) Error() string {
	if e.OAuthError != "" {
		return fmt.Sprintf("API Error: StatusCode=%d, Code=%s, Message=%s", e.StatusCode, e.OAuthError, e.Message)
	}
	return fmt.Sprintf("API Error: StatusCode=%d, Message=%s", e.StatusCode, e.Message)
}

// HandleAPIErrorResponse builds an APIError from an already-read error response body,
// choosing the parser from the Content-Type header.
func HandleAPIErrorResponse(resp *http.Response, bodyBytes []byte, log logger.Logger) *APIError {
	apiError := &APIError{
		StatusCode:  resp.StatusCode,
		RawResponse: string(bodyBytes),
	}

	mimeType, _ := parseHeader(resp.Header.Get("Content-Type"))
	switch mimeType {
	case "application/json":
		parseJSONResponse(bodyBytes, apiError)
	case "application/xml", "text/xml":
		parseXMLResponse(bodyBytes, apiError)
	case "text/html":
		parseHTMLResponse(bodyBytes, apiError)
	case "text/plain":
		parseTextResponse(bodyBytes, apiError)
	default:
		apiError.Message = "Unknown content type error"
	}

	// The body may carry its own statusCode; the transport status wins.
	apiError.StatusCode = resp.StatusCode
	if apiError.Message == "" {
		apiError.Message = http.StatusText(resp.StatusCode)
	}

	log.Debug("Parsed API error response",
		zap.Int("status_code", apiError.StatusCode),
		zap.String("content_type", mimeType),
		zap.String("message", apiError.Message),
		zap.String("oauth_error", apiError.OAuthError),
	)

	return apiError
}

// parseJSONResponse attempts to parse the JSON error response and update the APIError structure.
func parseJSONResponse(bodyBytes []byte, apiError *APIError) {
	if err := json.Unmarshal(bodyBytes, apiError); err != nil {
		apiError.Message = "Failed to decode JSON error response"
		return
	}
	if apiError.Message == "" {
		apiError.Message = apiError.OAuthDescription
	}
	if apiError.Message == "" && len(apiError.Errors) > 0 {
		apiError.Message = apiError.Errors[0].Message
	}
}

// parseXMLResponse dynamically parses XML error responses and accumulates potential error messages.
func parseXMLResponse(bodyBytes []byte, apiError *APIError) {
	doc, err := xmlquery.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		apiError.Message = "Failed to parse XML error response"
		return
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	} else {
		apiError.Message = "Failed to extract error details from XML response"
	}
}

// parseTextResponse uses the trimmed plain text body as the message.
func parseTextResponse(bodyBytes []byte, apiError *APIError) {
	apiError.Message = strings.TrimSpace(string(bodyBytes))
}

// parseHTMLResponse extracts meaningful information from an HTML error page: the
// <title> plus the text of every <p>, links rendered as "[Link: href]".
func parseHTMLResponse(bodyBytes []byte, apiError *APIError) {
	doc, err := html.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		apiError.Message = "Failed to parse HTML error response"
		return
	}

	var messages []string
	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "p" || n.Data == "title") {
			if content := textContent(n); content != "" {
				messages = append(messages, content)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}
	parse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	} else {
		apiError.Message = "HTML Error: See raw response for details."
	}
}

// textContent concatenates the text below n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		switch {
		case c.Type == html.TextNode:
			if text := strings.TrimSpace(c.Data); text != "" {
				b.WriteString(text + " ")
			}
		case c.Type == html.ElementNode && c.Data == "a":
			for _, attr := range c.Attr {
				if attr.Key == "href" {
					b.WriteString("[Link: " + attr.Val + "] ")
					break
				}
			}
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return strings.TrimSpace(b.String())
}
