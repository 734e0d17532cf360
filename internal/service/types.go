package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/flow-kms-client/internal/flow/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	AccessClient interface {
		GetAccount(ctx context.Context, address string) (model.Account, error)
		GetBlockByID(ctx context.Context, id string) ([]model.Block, error)
		GetBlockByHeight(ctx context.Context, heights []uint64) ([]model.Block, error)
		GetLatestBlock(ctx context.Context) ([]model.Block, error)
		SendTransaction(ctx context.Context, tx model.Transaction) (string, error)
		GetTransactionResult(ctx context.Context, id string) (model.TransactionResult, error)
	}
	// Signer returns a network-ready signature over message.
	Signer interface {
		SignFlow(ctx context.Context, message []byte) ([]byte, error)
	}
	SubmitterMetrics interface {
		ObserveAwait(outcome string, polls int, started time.Time)
	}
)
