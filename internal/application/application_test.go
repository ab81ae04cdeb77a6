package application

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/psds-microservice/vehicle-service/internal/catalog"
	"github.com/psds-microservice/vehicle-service/internal/config"
	apperrors "github.com/psds-microservice/vehicle-service/internal/errors"
)

const sampleVehicles = `[{"id":1,"make":"Toyota"},{"id":2,"make":"Honda"}]`

type fakeLoader struct {
	body string
	err  error
}

func (l fakeLoader) Load() (catalog.Vehicles, error) {
	if l.err != nil {
		return catalog.Vehicles{}, l.err
	}
	return catalog.Parse([]byte(l.body))
}

func testConfig() *config.Config {
	cfg := config.GetDefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0
	return cfg
}

func TestBootstrapFailsWithoutData(t *testing.T) {
	loadErr := fmt.Errorf("%w: data.json", apperrors.ErrDataNotFound)

	app, err := Bootstrap(testConfig(), zap.NewNop(), fakeLoader{err: loadErr}, "test")
	require.Error(t, err)
	require.True(t, errors.Is(err, apperrors.ErrDataNotFound))
	require.Nil(t, app)
}

func TestBootstrapFailsOnMissingFile(t *testing.T) {
	loader := catalog.FileLoader{Path: t.TempDir() + "/data.json"}

	_, err := Bootstrap(testConfig(), zap.NewNop(), loader, "test")
	require.True(t, errors.Is(err, apperrors.ErrDataNotFound))
}

func TestListenServeAndStop(t *testing.T) {
	app, err := Bootstrap(testConfig(), zap.NewNop(), fakeLoader{body: sampleVehicles}, "test")
	require.NoError(t, err)

	var out bytes.Buffer
	app.SetOutput(&out)
	require.NoError(t, app.Listen())
	require.Contains(t, out.String(), "vehicle-service listening on "+app.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx) }()

	base := "http://" + app.Addr()
	resp, err := http.Get(base + "/vehicles")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	require.Equal(t, sampleVehicles, string(body))

	resp, err = http.Get(base + "/unknown-path")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestListenOnBusyPort(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testConfig()
	cfg.Port = busy.Addr().(*net.TCPAddr).Port

	app, err := Bootstrap(cfg, zap.NewNop(), fakeLoader{body: sampleVehicles}, "test")
	require.NoError(t, err)

	var out bytes.Buffer
	app.SetOutput(&out)
	err = app.Listen()
	require.True(t, errors.Is(err, apperrors.ErrListen))
	require.Empty(t, out.String())
	require.Empty(t, app.Addr())
}

func TestServeWithoutListen(t *testing.T) {
	app := NewApplicationWithConfig(testConfig(), zap.NewNop(), catalog.Vehicles{}, "test")
	require.Error(t, app.Serve(context.Background()))
}

func TestRouterCORS(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	app := NewApplicationWithConfig(cfg, zap.NewNop(), catalog.Vehicles{}, "test")

	req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "[]", rec.Body.String())
}

func TestRouterDocs(t *testing.T) {
	app := NewApplicationWithConfig(testConfig(), zap.NewNop(), catalog.Vehicles{}, "test")

	rec := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Contains(t, doc["paths"], "/vehicles")

	rec = httptest.NewRecorder()
	app.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterDocsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Swagger.Enabled = false
	app := NewApplicationWithConfig(cfg, zap.NewNop(), catalog.Vehicles{}, "test")

	rec := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimitFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Requests = 1
	cfg.RateLimit.WindowSec = 60
	app := NewApplicationWithConfig(cfg, zap.NewNop(), catalog.Vehicles{}, "test")
	t.Cleanup(func() { _ = app.Stop() })

	get := func() int {
		rec := httptest.NewRecorder()
		app.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vehicles", nil))
		return rec.Code
	}
	require.Equal(t, http.StatusOK, get())
	require.Equal(t, http.StatusTooManyRequests, get())
}
