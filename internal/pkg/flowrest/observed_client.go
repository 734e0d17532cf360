// Package flowrest decorates the access node client with call metrics.
package flowrest

import (
	"context"
	"time"

	"github.com/goodnatureofminers/flow-kms-client/internal/flow/model"
)

type ObservedClient struct {
	client      AccessClient
	restMetrics RESTMetrics
}

func NewObservedClient(client AccessClient, restMetrics RESTMetrics) *ObservedClient {
	return &ObservedClient{
		client:      client,
		restMetrics: restMetrics,
	}
}

func (c *ObservedClient) GetAccount(ctx context.Context, address string) (account model.Account, err error) {
	started := time.Now()
	defer func() {
		c.restMetrics.Observe("get_account", err, started)
	}()
	return c.client.GetAccount(ctx, address)
}

func (c *ObservedClient) GetBlockByID(ctx context.Context, id string) (blocks []model.Block, err error) {
	started := time.Now()
	defer func() {
		c.restMetrics.Observe("get_block_by_id", err, started)
	}()
	return c.client.GetBlockByID(ctx, id)
}

func (c *ObservedClient) GetBlockByHeight(ctx context.Context, heights []uint64) (blocks []model.Block, err error) {
	started := time.Now()
	defer func() {
		c.restMetrics.Observe("get_block_by_height", err, started)
	}()
	return c.client.GetBlockByHeight(ctx, heights)
}

func (c *ObservedClient) GetLatestBlock(ctx context.Context) (blocks []model.Block, err error) {
	started := time.Now()
	defer func() {
		c.restMetrics.Observe("get_latest_block", err, started)
	}()
	return c.client.GetLatestBlock(ctx)
}

func (c *ObservedClient) SendTransaction(ctx context.Context, tx model.Transaction) (id string, err error) {
	started := time.Now()
	defer func() {
		c.restMetrics.Observe("send_transaction", err, started)
	}()
	return c.client.SendTransaction(ctx, tx)
}

func (c *ObservedClient) GetTransactionResult(ctx context.Context, id string) (result model.TransactionResult, err error) {
	started := time.Now()
	defer func() {
		c.restMetrics.Observe("get_transaction_result", err, started)
	}()
	return c.client.GetTransactionResult(ctx, id)
}
