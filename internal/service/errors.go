package service

import (
	"errors"
	"fmt"
)

var (
	ErrNoBlocks                    = errors.New("latest block query returned no blocks")
	ErrTransactionExpired          = errors.New("Transaction Expired")
	ErrPollDeadlineExceeded        = errors.New("transaction not sealed before poll deadline")
	ErrAccountCreatedEventNotFound = errors.New("account created event not found in transaction result")
)

// SequenceNumberError is returned when the proposer account has no key at the configured index.
type SequenceNumberError struct {
	Address  string
	KeyIndex uint32
}

func (e *SequenceNumberError) Error() string {
	return fmt.Sprintf("could not obtain sequence number for key at index %d", e.KeyIndex)
}

// ExecutionError is returned alongside a sealed result whose execution failed.
type ExecutionError struct {
	TransactionID string
	StatusCode    uint64
	Message       string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("transaction %s sealed with error (status code %d): %s", e.TransactionID, e.StatusCode, e.Message)
}
