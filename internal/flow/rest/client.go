// Package rest is a client for the Flow access node REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/flow-kms-client/internal/flow/model"
)

const maxResponseBytes = 16 << 20

// Network selects a well-known access node.
type Network string

var (
	Emulator Network = "emulator"
	Testnet  Network = "testnet"
	Mainnet  Network = "mainnet"
)

var endpoints = map[Network]string{
	Emulator: "http://127.0.0.1:8888",
	Testnet:  "https://rest-testnet.onflow.org",
	Mainnet:  "https://rest-mainnet.onflow.org",
}

// Endpoint returns the REST endpoint of a well-known network.
func Endpoint(network Network) (string, error) {
	endpoint, ok := endpoints[network]
	if !ok {
		return "", fmt.Errorf("unknown network %q", network)
	}
	return endpoint, nil
}

// Client talks to an access node. Requests are throttled by a shared rate limiter.
type Client struct {
	baseURL string
	http    *http.Client
	limiter ratelimit.Limiter
	logger  *zap.Logger
}

// NewClient constructs a Client. A non-positive rps disables throttling.
func NewClient(baseURL string, timeout time.Duration, rps int, logger *zap.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse access url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("access url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("access url missing host")
	}

	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
		logger:  logger.Named("rest"),
	}, nil
}

// GetAccount returns the account at address, including its keys.
func (c *Client) GetAccount(ctx context.Context, address string) (model.Account, error) {
	var out accountJSON
	query := url.Values{"expand": []string{"keys"}}
	if err := c.do(ctx, http.MethodGet, "/v1/accounts/"+url.PathEscape(address), query, nil, &out); err != nil {
		return model.Account{}, err
	}
	return convertAccount(out)
}

// GetBlockByID returns the block with the given id.
func (c *Client) GetBlockByID(ctx context.Context, id string) ([]model.Block, error) {
	var out []blockJSON
	if err := c.do(ctx, http.MethodGet, "/v1/blocks/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return convertBlocks(out)
}

// GetBlockByHeight returns the blocks at the given heights.
func (c *Client) GetBlockByHeight(ctx context.Context, heights []uint64) ([]model.Block, error) {
	parts := make([]string, 0, len(heights))
	for _, h := range heights {
		parts = append(parts, strconv.FormatUint(h, 10))
	}
	var out []blockJSON
	query := url.Values{"height": []string{strings.Join(parts, ",")}}
	if err := c.do(ctx, http.MethodGet, "/v1/blocks", query, nil, &out); err != nil {
		return nil, err
	}
	return convertBlocks(out)
}

// GetLatestBlock returns the latest sealed block.
func (c *Client) GetLatestBlock(ctx context.Context) ([]model.Block, error) {
	var out []blockJSON
	query := url.Values{"height": []string{"sealed"}}
	if err := c.do(ctx, http.MethodGet, "/v1/blocks", query, nil, &out); err != nil {
		return nil, err
	}
	return convertBlocks(out)
}

// SendTransaction submits tx and returns its id.
func (c *Client) SendTransaction(ctx context.Context, tx model.Transaction) (string, error) {
	var out sendTransactionResponseJSON
	if err := c.do(ctx, http.MethodPost, "/v1/transactions", nil, convertTransaction(tx), &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.New("send transaction: empty transaction id")
	}
	return out.ID, nil
}

// GetTransactionResult returns the current result of the transaction with the given id.
func (c *Client) GetTransactionResult(ctx context.Context, id string) (model.TransactionResult, error) {
	var out transactionResultJSON
	if err := c.do(ctx, http.MethodGet, "/v1/transaction_results/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return model.TransactionResult{}, err
	}
	return convertResult(id, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", path, err)
		}
		reader = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.limiter.Take()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Debug("access api returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return newStatusError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
