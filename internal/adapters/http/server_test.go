package http_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/disaster-response-web/internal/adapters/http"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// startServer runs s in the background and waits until it is listening.
func startServer(t *testing.T, s *adapthttp.Server) <-chan error {
	t.Helper()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	require.Eventually(t, func() bool {
		return !strings.HasSuffix(s.Addr(), ":0")
	}, time.Second, 5*time.Millisecond, "server never started listening")
	return errCh
}

func TestServer_AddrBeforeStart(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 9090}, http.NotFoundHandler(), nil)
	assert.Equal(t, "127.0.0.1:9090", s.Addr())
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "Alerta Cidadão")
	})
	cfg := config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	s := adapthttp.NewServer(cfg, handler, discardLogger())
	errCh := startServer(t, s)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://"+s.Addr()+"/", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "Alerta Cidadão", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	require.NoError(t, <-errCh, "Start() should return nil after shutdown")
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 0}, http.NotFoundHandler(), discardLogger())
	errCh := startServer(t, s)

	require.NoError(t, s.Shutdown(context.Background()))
	require.NoError(t, <-errCh)
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	first := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 0}, http.NotFoundHandler(), discardLogger())
	errCh := startServer(t, first)
	t.Cleanup(func() {
		_ = first.Shutdown(context.Background())
		<-errCh
	})

	_, port, _ := strings.Cut(first.Addr(), ":")
	var cfg config.ServerConfig
	cfg.Host = "127.0.0.1"
	_, err := fmt.Sscan(port, &cfg.Port)
	require.NoError(t, err)

	second := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())
	assert.Error(t, second.Start())
}
