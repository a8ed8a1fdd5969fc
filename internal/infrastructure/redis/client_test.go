package redis

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestNewClient(t *testing.T) {
	s := miniredis.RunT(t)

	ctx := context.Background()
	client, err := NewClient(ctx, fmt.Sprintf("redis://%s/2", s.Addr()))
	if err != nil {
		t.Fatalf("expected client, got error: %v", err)
	}
	defer client.Close()

	if db := client.Options().DB; db != 2 {
		t.Fatalf("expected database 2 from URL, got %d", db)
	}
	if err := client.Set(ctx, "bankledger:connect-check", "1", 0).Err(); err != nil {
		t.Fatalf("set failed: %v", err)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	_, err := NewClient(context.Background(), "http://localhost:6379")
	if err == nil || !strings.Contains(err.Error(), "parse redis URL") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestNewClientServerDown(t *testing.T) {
	s := miniredis.RunT(t)
	url := fmt.Sprintf("redis://%s", s.Addr())
	s.Close()

	_, err := NewClientWithTimeout(context.Background(), url, time.Second)
	if err == nil || !strings.Contains(err.Error(), "failed to ping redis") {
		t.Fatalf("expected ping error when server is down, got %v", err)
	}
}

// A server that accepts connections but never answers must not stall
// startup past the ping timeout.
func TestNewClientPingTimeout(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			c.Close()
		}
	})

	start := time.Now()
	_, err = NewClientWithTimeout(context.Background(), "redis://"+ln.Addr().String(), 200*time.Millisecond)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatalf("expected ping to time out")
	}
	if elapsed > 3*time.Second {
		t.Fatalf("ping took %s, timeout not applied", elapsed)
	}
}
