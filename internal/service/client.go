// Package service assembles, signs and submits Flow transactions and waits for them to seal.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/onflow/flow-go-sdk"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/flow-kms-client/internal/clock"
)

// DefaultGasLimit is the computation limit attached to assembled transactions.
const DefaultGasLimit uint64 = 9999

// PollPolicy controls how SubmitAndAwait waits between status queries.
// Waits start at InitialBackoff and grow by Step. Leaving both unset selects
// DefaultPollPolicy's schedule; an explicit InitialBackoff with zero Step waits a
// constant time. A zero MaxBackoff leaves the growth uncapped and a zero Deadline
// polls until a terminal status or ctx ends.
type PollPolicy struct {
	InitialBackoff time.Duration
	Step           time.Duration
	MaxBackoff     time.Duration
	Deadline       time.Duration
}

// DefaultPollPolicy waits 200ms, 400ms, 600ms... without bound.
func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		InitialBackoff: 200 * time.Millisecond,
		Step:           200 * time.Millisecond,
	}
}

// Config describes the service account that proposes, pays for and authorizes transactions.
type Config struct {
	ServiceAddress  string
	ServiceKeyIndex uint32
	GasLimit        uint64
	Poll            PollPolicy
}

// Client drives the transaction lifecycle against an access node.
type Client struct {
	access  AccessClient
	signer  Signer
	metrics SubmitterMetrics
	cfg     Config
	logger  *zap.Logger

	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// NewClient builds a Client. A nil signer submits transactions without signatures,
// which only an emulator that skips signature checks will accept.
func NewClient(
	access AccessClient,
	signer Signer,
	metrics SubmitterMetrics,
	cfg Config,
	logger *zap.Logger,
) (*Client, error) {
	if access == nil {
		return nil, errors.New("access client is required")
	}
	if metrics == nil {
		return nil, errors.New("submitter metrics is required")
	}
	if cfg.ServiceAddress == "" {
		return nil, errors.New("service address is required")
	}
	cfg.ServiceAddress = flow.HexToAddress(cfg.ServiceAddress).Hex()
	if cfg.GasLimit == 0 {
		cfg.GasLimit = DefaultGasLimit
	}
	defaults := DefaultPollPolicy()
	if cfg.Poll.InitialBackoff <= 0 && cfg.Poll.Step <= 0 {
		cfg.Poll.InitialBackoff = defaults.InitialBackoff
		cfg.Poll.Step = defaults.Step
	}
	if cfg.Poll.InitialBackoff <= 0 {
		cfg.Poll.InitialBackoff = defaults.InitialBackoff
	}
	if cfg.Poll.Step < 0 {
		cfg.Poll.Step = 0
	}

	return &Client{
		access:  access,
		signer:  signer,
		metrics: metrics,
		cfg:     cfg,
		logger: logger.With(
			zap.String("service_address", cfg.ServiceAddress),
			zap.Uint32("key_index", cfg.ServiceKeyIndex),
		),
		sleep: clock.SleepWithContext,
		now:   time.Now,
	}, nil
}
