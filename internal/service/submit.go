package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/flow-kms-client/internal/clock"
	"github.com/goodnatureofminers/flow-kms-client/internal/flow/model"
)

const (
	outcomeSealed  = "sealed"
	outcomeExpired = "expired"
	outcomeFailed  = "failed"
	outcomeError   = "error"
)

// SubmitAndAwait submits tx and polls its result with linear backoff until it is
// sealed or expired. A sealed result that failed execution is returned together
// with an *ExecutionError.
func (c *Client) SubmitAndAwait(ctx context.Context, tx model.Transaction) (model.TransactionResult, error) {
	started := time.Now()
	polls := 0
	outcome := outcomeError
	defer func() {
		c.metrics.ObserveAwait(outcome, polls, started)
	}()

	id, err := c.access.SendTransaction(ctx, tx)
	if err != nil {
		return model.TransactionResult{}, err
	}
	logger := c.logger.With(zap.String("transaction_id", id))
	logger.Info("transaction submitted", zap.Uint64("sequence_number", tx.ProposalKey.SequenceNumber))

	backoff := clock.LinearBackoff{
		Initial: c.cfg.Poll.InitialBackoff,
		Step:    c.cfg.Poll.Step,
		Max:     c.cfg.Poll.MaxBackoff,
	}
	var deadline time.Time
	if c.cfg.Poll.Deadline > 0 {
		deadline = c.now().Add(c.cfg.Poll.Deadline)
	}

	for {
		wait := backoff.Next()
		if err := c.sleep(ctx, wait); err != nil {
			return model.TransactionResult{}, err
		}

		polls++
		result, err := c.access.GetTransactionResult(ctx, id)
		if err != nil {
			return model.TransactionResult{}, err
		}

		switch result.Status {
		case model.StatusSealed:
			if result.ErrorMessage != "" {
				outcome = outcomeFailed
				logger.Warn("transaction sealed with error",
					zap.Uint64("status_code", result.StatusCode),
					zap.String("error", result.ErrorMessage))
				return result, &ExecutionError{
					TransactionID: id,
					StatusCode:    result.StatusCode,
					Message:       result.ErrorMessage,
				}
			}
			outcome = outcomeSealed
			logger.Info("transaction sealed", zap.Int("polls", polls), zap.String("block_id", result.BlockID))
			return result, nil
		case model.StatusExpired:
			outcome = outcomeExpired
			logger.Warn("transaction expired", zap.Int("polls", polls))
			return model.TransactionResult{}, fmt.Errorf("%s: %w", id, ErrTransactionExpired)
		default:
			logger.Debug("transaction not sealed yet",
				zap.String("status", string(result.Status)),
				zap.Int("poll", polls),
				zap.Duration("waited", wait))
		}

		if !deadline.IsZero() && !c.now().Before(deadline) {
			return model.TransactionResult{}, fmt.Errorf("%s after %d polls: %w", id, polls, ErrPollDeadlineExceeded)
		}
	}
}
