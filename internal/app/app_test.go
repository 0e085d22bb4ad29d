package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nfrund/activityboard/internal/app"
	"github.com/nfrund/activityboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, apiURL string, live bool) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Addr:          "127.0.0.1:0",
		APIURL:        apiURL,
		APITimeout:    time.Second,
		SessionSecret: "a-very-secret-key-for-testing-!",
		DefaultLocale: "en",
		LiveUpdates:   live,
		LogFormat:     "text",
		LogLevel:      "error",
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Chess Club":{"description":"Strategy","schedule":"Fridays","max_participants":12,"participants":[]}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWiring(t *testing.T) {
	a := app.New(testConfig(t, upstream(t).URL, true))

	b, err := a.Board()
	require.NoError(t, err)
	again, err := a.Board()
	require.NoError(t, err)
	assert.Same(t, b, again, "services are singletons")

	res := b.LoadActivities(context.Background(), "en")
	require.False(t, res.Failed)
	assert.Equal(t, []string{"Chess Club"}, res.Board.Names())

	srv, err := a.Server()
	require.NoError(t, err)
	routes := map[string]bool{}
	for _, r := range srv.E.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	assert.True(t, routes["GET /ws/board"], "live route is mounted when enabled")
	assert.True(t, routes["GET /static/*"])
}

func TestWiringWithoutLiveUpdates(t *testing.T) {
	a := app.New(testConfig(t, upstream(t).URL, false))

	srv, err := a.Server()
	require.NoError(t, err)
	for _, r := range srv.E.Routes() {
		assert.NotEqual(t, "/ws/board", r.Path)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	a := app.New(testConfig(t, upstream(t).URL, true))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
