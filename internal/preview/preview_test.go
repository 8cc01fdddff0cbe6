package preview

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `
stores:
  count: 0
root:
  element: p
  props:
    class: counter
  children: ["Count: ", {store: count}]
`

func newTestServer(t *testing.T, src string) (*Server, *httptest.Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	s, err := NewServer(Config{
		ManifestPath: path,
		Title:        "Preview",
		Logger:       slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		s.Hub().Close()
		ts.Close()
	})
	return s, ts, path
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func post(t *testing.T, url, body string) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestPage(t *testing.T) {
	_, ts, _ := newTestServer(t, page)

	status, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "<title>Preview</title>")
	assert.Contains(t, body, `<p class="counter">Count: 0</p>`)
	assert.Contains(t, body, `data-path="/ws"`)
}

func TestSetStore(t *testing.T) {
	_, ts, _ := newTestServer(t, page)

	assert.Equal(t, http.StatusNoContent, post(t, ts.URL+"/stores/count", "7"))

	_, body := get(t, ts.URL+"/")
	assert.Contains(t, body, "Count: 7")

	_, stores := get(t, ts.URL+"/stores")
	var values map[string]any
	require.NoError(t, json.Unmarshal([]byte(stores), &values))
	assert.Equal(t, float64(7), values["count"])
}

func TestSetStoreErrors(t *testing.T) {
	_, ts, _ := newTestServer(t, page)

	assert.Equal(t, http.StatusNotFound, post(t, ts.URL+"/stores/missing", "1"))
	assert.Equal(t, http.StatusBadRequest, post(t, ts.URL+"/stores/count", "{not json"))
}

func TestWebSocketPushesBody(t *testing.T) {
	s, ts, _ := newTestServer(t, page)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	_, greeting, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, `<p class="counter">Count: 0</p>`, string(greeting))
	assert.Equal(t, 1, s.Hub().ClientCount())

	require.Equal(t, http.StatusNoContent, post(t, ts.URL+"/stores/count", `"many"`))

	_, update, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, `<p class="counter">Count: many</p>`, string(update))
}

func TestMetrics(t *testing.T) {
	_, ts, _ := newTestServer(t, page)

	status, body := get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "arbor_active_mounts 1")
	assert.Contains(t, body, "arbor_nodes_materialized_total")
}

func TestReloadKeepsStoreValues(t *testing.T) {
	s, ts, path := newTestServer(t, page)
	require.NoError(t, s.Set("count", 3))

	updated := strings.Replace(page, "Count: ", "Total: ", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	require.NoError(t, s.Reload())

	_, body := get(t, ts.URL+"/")
	assert.Contains(t, body, "Total: 3")
	assert.NotContains(t, body, "Count:")

	_, metrics := get(t, ts.URL+"/metrics")
	assert.Contains(t, metrics, "arbor_active_mounts 1")
}

func TestReloadErrorKeepsTree(t *testing.T) {
	s, ts, path := newTestServer(t, page)

	require.NoError(t, os.WriteFile(path, []byte("root: {component: nope}\n"), 0o644))
	require.Error(t, s.Reload())

	_, body := get(t, ts.URL+"/")
	assert.Contains(t, body, "Count: 0")
}

func TestWatch(t *testing.T) {
	s, ts, path := newTestServer(t, page)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Watch(ctx))

	updated := strings.Replace(page, "Count: ", "Watched: ", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	assert.Eventually(t, func() bool {
		_, body := get(t, ts.URL+"/")
		return strings.Contains(body, "Watched: 0")
	}, 5*time.Second, 50*time.Millisecond)
}

func TestNewServerMissingManifest(t *testing.T) {
	_, err := NewServer(Config{ManifestPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E120")
}
