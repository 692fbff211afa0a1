package tui

import (
	"context"
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestSSHServer(t *testing.T, addr string) *SSHServer {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = addr
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	return srv
}

func TestListenAndServePortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	srv := newTestSSHServer(t, ln.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err == nil {
			t.Error("expected an error for a port that is already bound")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("ListenAndServe kept blocking after the listener failed")
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	srv := newTestSSHServer(t, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Serve() after cancel = %v, expected nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
