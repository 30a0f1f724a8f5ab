// mocklogger/mocklogger.go
package mocklogger

import (
	"errors"
	"net/http"
	"time"

	"github.com/deploymenttheory/go-api-http-client-commercetools/logger"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockLogger is a mock type for the Logger interface.
type MockLogger struct {
	mock.Mock
	logLevel logger.LogLevel
}

// NewMockLogger creates a new instance of MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Ensure MockLogger implements the logger.Logger interface from the logger package
var _ logger.Logger = (*MockLogger)(nil)

// WithLevel presets the level reported by GetLogLevel without recording a call.
func (m *MockLogger) WithLevel(level logger.LogLevel) *MockLogger {
	m.logLevel = level
	return m
}

// GetLogLevel returns the level set through SetLevel; it is not recorded as a call.
func (m *MockLogger) GetLogLevel() logger.LogLevel {
	return m.logLevel
}

// SetLevel sets the logging level of the MockLogger.
func (m *MockLogger) SetLevel(level logger.LogLevel) {
	m.logLevel = level
	m.Called(level)
}

// With returns the same mock so that expectations keep matching on scoped loggers.
func (m *MockLogger) With(fields ...zap.Field) logger.Logger {
	m.Called(fields)
	return m
}

// Debug logs a message at the Debug level.
func (m *MockLogger) Debug(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

// Info logs a message at the Info level.
func (m *MockLogger) Info(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

// Warn logs a message at the Warn level.
func (m *MockLogger) Warn(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

// Error records the call and returns msg as an error, matching the real logger.
func (m *MockLogger) Error(msg string, fields ...zap.Field) error {
	m.Called(msg, fields)
	return errors.New(msg)
}

// LogRequestStart logs the start of an HTTP request.
func (m *MockLogger) LogRequestStart(method string, url string, headers http.Header) {
	m.Called(method, url, headers)
}

// LogRequestEnd logs the end of an HTTP request.
func (m *MockLogger) LogRequestEnd(method string, url string, statusCode int, duration time.Duration) {
	m.Called(method, url, statusCode, duration)
}

// LogAuthTokenError logs a failed token acquisition.
func (m *MockLogger) LogAuthTokenError(url string, statusCode int, err error) {
	m.Called(url, statusCode, err)
}

// AllowAll registers permissive expectations for every method so tests can
// assert only the calls they care about.
func (m *MockLogger) AllowAll() *MockLogger {
	m.On("SetLevel", mock.Anything).Maybe()
	m.On("With", mock.Anything).Maybe()
	m.On("Debug", mock.Anything, mock.Anything).Maybe()
	m.On("Info", mock.Anything, mock.Anything).Maybe()
	m.On("Warn", mock.Anything, mock.Anything).Maybe()
	m.On("Error", mock.Anything, mock.Anything).Maybe()
	m.On("LogRequestStart", mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.On("LogRequestEnd", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.On("LogAuthTokenError", mock.Anything, mock.Anything, mock.Anything).Maybe()
	return m
}
