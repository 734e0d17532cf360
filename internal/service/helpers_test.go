package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/flow-kms-client/internal/flow/model"
)

const serviceAddress = "f8d6e0586b0a20c7"

type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	waits []time.Duration
}

func (f *fakeClock) sleep(ctx context.Context, d time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waits = append(f.waits, d)
	f.now = f.now.Add(d)
	return ctx.Err()
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Waits() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.waits...)
}

func newTestClient(t *testing.T, access AccessClient, signer Signer, metrics SubmitterMetrics, cfg Config) (*Client, *fakeClock) {
	t.Helper()

	if cfg.ServiceAddress == "" {
		cfg.ServiceAddress = serviceAddress
	}
	c, err := NewClient(access, signer, metrics, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	fc := &fakeClock{now: time.Unix(1700000000, 0)}
	c.sleep = fc.sleep
	c.now = fc.Now
	return c, fc
}

func accountCreatedEvent(address string) model.Event {
	payload := fmt.Sprintf(
		`{"type":"Event","value":{"id":"flow.AccountCreated","fields":[{"name":"address","value":{"type":"Address","value":%q}}]}}`,
		address,
	)
	return model.Event{
		Type:    "flow.AccountCreated",
		Payload: base64.StdEncoding.EncodeToString([]byte(payload)),
	}
}
