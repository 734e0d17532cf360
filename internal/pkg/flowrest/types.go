package flowrest

import (
	"context"
	"time"

	"github.com/goodnatureofminers/flow-kms-client/internal/flow/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RESTMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	AccessClient interface {
		GetAccount(ctx context.Context, address string) (model.Account, error)
		GetBlockByID(ctx context.Context, id string) ([]model.Block, error)
		GetBlockByHeight(ctx context.Context, heights []uint64) ([]model.Block, error)
		GetLatestBlock(ctx context.Context) ([]model.Block, error)
		SendTransaction(ctx context.Context, tx model.Transaction) (string, error)
		GetTransactionResult(ctx context.Context, id string) (model.TransactionResult, error)
	}
)
