package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-api-http-client-commercetools/httpclient"
)

// resetCommandState clears flag values and Changed markers left by a previous Execute.
func resetCommandState(t *testing.T) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(reset)
	}

	for _, env := range []string{
		httpclient.EnvRegion, httpclient.EnvAPIURL, httpclient.EnvAuthURL, httpclient.EnvProjectKey,
		httpclient.EnvClientID, httpclient.EnvClientSecret, httpclient.EnvLogLevel, httpclient.EnvProxyURL,
	} {
		t.Setenv(env, "")
	}
}

func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	resetCommandState(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

type fakeAPI struct {
	auth *httptest.Server
	api  *httptest.Server

	mu       sync.Mutex
	method   string
	path     string
	body     string
	authHdr  string
	authHits int
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{}
	f.auth = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.authHits++
		f.mu.Unlock()
		_, _ = io.WriteString(w, `{"access_token":"abc","expires_in":3600}`)
	}))
	t.Cleanup(f.auth.Close)

	f.api = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.method, f.path, f.body, f.authHdr = r.Method, r.URL.RequestURI(), string(body), r.Header.Get("Authorization")
		f.mu.Unlock()
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	t.Cleanup(f.api.Close)
	return f
}

func (f *fakeAPI) flags() []string {
	return []string{
		"--api-url", f.api.URL,
		"--auth-url", f.auth.URL,
		"--project-key", "my-project",
		"--client-id", "client-id",
		"--client-secret", "client-secret",
		"--log-level", "LogLevelNone",
	}
}

func TestVersionCmd_Executes(t *testing.T) {
	out, err := executeCommand(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ctpclient version ")
}

func TestRegionsCmd(t *testing.T) {
	out, err := executeCommand(t, nil, "regions")
	require.NoError(t, err)

	assert.Contains(t, out, "REGION")
	assert.Contains(t, out, "europe-west1.gcp")
	assert.Contains(t, out, "https://api.sphere.io")
	assert.Contains(t, out, "https://auth.us-east-2.aws.commercetools.com")
}

func TestGetCmd(t *testing.T) {
	f := newFakeAPI(t)

	out, err := executeCommand(t, nil, append([]string{"get", "products?limit=1"}, f.flags()...)...)
	require.NoError(t, err)

	assert.Equal(t, "{\"ok\":true}\n", out)
	assert.Equal(t, http.MethodGet, f.method)
	assert.Equal(t, "/my-project/products?limit=1", f.path)
	assert.Equal(t, "Bearer abc", f.authHdr)
	assert.Equal(t, 1, f.authHits)
}

func TestGetCmd_RequiresPath(t *testing.T) {
	_, err := executeCommand(t, nil, "get")
	assert.Error(t, err)
}

func TestGetCmd_InvalidConfiguration(t *testing.T) {
	_, err := executeCommand(t, nil, "get", "/products", "--project-key", "my-project")
	assert.ErrorContains(t, err, "failed to create client")
}

func TestPostCmd(t *testing.T) {
	f := newFakeAPI(t)

	t.Run("inline data", func(t *testing.T) {
		out, err := executeCommand(t, nil, append([]string{"post", "/carts", "--data", `{"currency":"EUR"}`}, f.flags()...)...)
		require.NoError(t, err)
		assert.Equal(t, "{\"ok\":true}\n", out)
		assert.Equal(t, http.MethodPost, f.method)
		assert.Equal(t, "/my-project/carts", f.path)
		assert.Equal(t, `{"currency":"EUR"}`, f.body)
	})

	t.Run("data file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"currency":"USD"}`), 0o600))

		_, err := executeCommand(t, nil, append([]string{"post", "/carts", "--data-file", path}, f.flags()...)...)
		require.NoError(t, err)
		assert.Equal(t, `{"currency":"USD"}`, f.body)
	})

	t.Run("stdin", func(t *testing.T) {
		_, err := executeCommand(t, strings.NewReader(`{"currency":"GBP"}`), append([]string{"post", "/carts", "--data-file", "-"}, f.flags()...)...)
		require.NoError(t, err)
		assert.Equal(t, `{"currency":"GBP"}`, f.body)
	})
}

func TestPostCmd_BodyFlags(t *testing.T) {
	f := newFakeAPI(t)

	_, err := executeCommand(t, nil, append([]string{"post", "/carts"}, f.flags()...)...)
	assert.Error(t, err, "a body is required")

	_, err = executeCommand(t, nil, append([]string{"post", "/carts", "--data", "{}", "--data-file", "x.json"}, f.flags()...)...)
	assert.Error(t, err, "--data and --data-file are exclusive")

	_, err = executeCommand(t, nil, append([]string{"post", "/carts", "--data-file", filepath.Join(t.TempDir(), "absent.json")}, f.flags()...)...)
	assert.ErrorContains(t, err, "failed to read body")
}

func TestTokenCmd(t *testing.T) {
	f := newFakeAPI(t)

	out, err := executeCommand(t, nil, append([]string{"token"}, f.flags()...)...)
	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)
}

func TestLoadConfig_Precedence(t *testing.T) {
	resetCommandState(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
region = "us-central1.gcp"
project_key = "from-file"
client_id = "file-id"
client_secret = "file-secret"
`), 0o600))

	cfgFile = path
	t.Setenv(httpclient.EnvClientID, "env-id")
	flagClientSecret = "flag-secret"
	t.Cleanup(func() {
		cfgFile = ""
		flagClientSecret = ""
	})

	config, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "us-central1.gcp", config.Region)
	assert.Equal(t, "from-file", config.ProjectKey)
	assert.Equal(t, "env-id", config.ClientID)
	assert.Equal(t, "flag-secret", config.ClientSecret)
	assert.Equal(t, httpclient.DefaultLogLevelString, config.LogLevel, "a config file brings its own defaults")
}

func TestLoadConfig_DefaultsToQuietLogging(t *testing.T) {
	resetCommandState(t)

	config, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, cliLogLevel, config.LogLevel)
	assert.Equal(t, string(httpclient.DefaultRegion), config.Region)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/products", normalizePath("products"))
	assert.Equal(t, "/products", normalizePath("/products"))
	assert.Equal(t, "/", normalizePath(""))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"get", "post", "token", "regions", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
