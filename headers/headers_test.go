// headers/headers_test.go
package headers

import (
	"net/http"
	"testing"

	"github.com/deploymenttheory/go-api-http-client-commercetools/logger"
	"github.com/deploymenttheory/go-api-http-client-commercetools/mocklogger"
	"github.com/deploymenttheory/go-api-http-client-commercetools/version"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetAuthorization(t *testing.T) {
	cases := []struct {
		name     string
		token    string
		expected string
	}{
		{"raw token", "test-token", "Bearer test-token"},
		{"already prefixed", "Bearer test-token", "Bearer test-token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header := http.Header{}
			NewHeaderHandler(header, logger.NewNopLogger(), true).SetAuthorization(tc.token)
			assert.Equal(t, tc.expected, header.Get("Authorization"), "Authorization header should be correctly set")
		})
	}
}

func TestSetContentType(t *testing.T) {
	header := http.Header{}
	NewHeaderHandler(header, logger.NewNopLogger(), true).SetContentType(ContentTypeJSON)

	assert.Equal(t, ContentTypeJSON, header.Get("Content-Type"), "Content-Type header should be correctly set")
}

func TestSetCorrelationID(t *testing.T) {
	header := http.Header{}
	handler := NewHeaderHandler(header, logger.NewNopLogger(), true)

	id := handler.SetCorrelationID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, header.Get(CorrelationIDHeader))

	assert.Equal(t, id, handler.SetCorrelationID(), "an existing correlation id is kept")
}

func TestSetRequestHeaders(t *testing.T) {
	header := http.Header{}
	NewHeaderHandler(header, logger.NewNopLogger(), true).SetRequestHeaders("abc")

	assert.Equal(t, "Bearer abc", header.Get("Authorization"))
	assert.Equal(t, ContentTypeJSON, header.Get("Accept"))
	assert.Equal(t, version.GetUserAgentHeader(), header.Get("User-Agent"))
	assert.NotEmpty(t, header.Get(CorrelationIDHeader))
}

func TestLogHeaders_RedactsAuthorization(t *testing.T) {
	header := http.Header{}
	header.Set("Authorization", "Bearer abc")

	mockLog := mocklogger.NewMockLogger().WithLevel(logger.LogLevelDebug)
	mockLog.On("Debug", "HTTP Request Headers", mock.Anything).Once()

	NewHeaderHandler(header, mockLog, true).LogHeaders()

	mockLog.AssertExpectations(t)
	fields := mockLog.Calls[0].Arguments.Get(1).([]zap.Field)
	require.Len(t, fields, 1)
	assert.Equal(t, "Authorization", fields[0].Key)
	assert.Equal(t, "Bearer abc", header.Get("Authorization"))
}

func TestLogHeaders_SkippedAboveDebug(t *testing.T) {
	mockLog := mocklogger.NewMockLogger().WithLevel(logger.LogLevelInfo)

	NewHeaderHandler(http.Header{}, mockLog, true).LogHeaders()

	mockLog.AssertNotCalled(t, "Debug", mock.Anything, mock.Anything)
}
