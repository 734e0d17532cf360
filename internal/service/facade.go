package service

import (
	"context"

	"github.com/goodnatureofminers/flow-kms-client/internal/flow/model"
)

// BlockQuery selects blocks by ID, by height, or the latest sealed block when both are empty.
// ID takes precedence over Height.
type BlockQuery struct {
	ID     string
	Height *uint64
}

func (c *Client) GetAccount(ctx context.Context, address string) (model.Account, error) {
	return c.access.GetAccount(ctx, address)
}

func (c *Client) GetBlock(ctx context.Context, q BlockQuery) ([]model.Block, error) {
	switch {
	case q.ID != "":
		return c.access.GetBlockByID(ctx, q.ID)
	case q.Height != nil:
		return c.access.GetBlockByHeight(ctx, []uint64{*q.Height})
	default:
		return c.access.GetLatestBlock(ctx)
	}
}

func (c *Client) GetTransactionResult(ctx context.Context, id string) (model.TransactionResult, error) {
	return c.access.GetTransactionResult(ctx, id)
}
