package rest

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/flow-kms-client/internal/flow/model"
	"github.com/goodnatureofminers/flow-kms-client/pkg/safe"
)

func convertAccount(src accountJSON) (model.Account, error) {
	balance, err := safe.ParseUint64(src.Balance)
	if err != nil {
		return model.Account{}, fmt.Errorf("account %s balance: %w", src.Address, err)
	}

	keys := make([]model.AccountKey, 0, len(src.Keys))
	for _, k := range src.Keys {
		index, err := safe.ParseUint32(k.Index)
		if err != nil {
			return model.Account{}, fmt.Errorf("account %s key index: %w", src.Address, err)
		}
		seq, err := safe.ParseUint64(k.SequenceNumber)
		if err != nil {
			return model.Account{}, fmt.Errorf("account %s key %d sequence number: %w", src.Address, index, err)
		}
		weight, err := safe.ParseUint64(k.Weight)
		if err != nil {
			return model.Account{}, fmt.Errorf("account %s key %d weight: %w", src.Address, index, err)
		}
		keys = append(keys, model.AccountKey{
			Index:            index,
			PublicKey:        k.PublicKey,
			SigningAlgorithm: k.SigningAlgorithm,
			HashingAlgorithm: k.HashingAlgorithm,
			SequenceNumber:   seq,
			Weight:           weight,
			Revoked:          k.Revoked,
		})
	}

	return model.Account{
		Address: src.Address,
		Balance: balance,
		Keys:    keys,
	}, nil
}

func convertBlocks(src []blockJSON) ([]model.Block, error) {
	blocks := make([]model.Block, 0, len(src))
	for _, b := range src {
		height, err := safe.ParseUint64(b.Header.Height)
		if err != nil {
			return nil, fmt.Errorf("block %s height: %w", b.Header.ID, err)
		}
		var ts time.Time
		if b.Header.Timestamp != "" {
			ts, err = time.Parse(time.RFC3339Nano, b.Header.Timestamp)
			if err != nil {
				return nil, fmt.Errorf("block %s timestamp: %w", b.Header.ID, err)
			}
		}
		blocks = append(blocks, model.Block{
			ID:        b.Header.ID,
			ParentID:  b.Header.ParentID,
			Height:    height,
			Timestamp: ts,
		})
	}
	return blocks, nil
}

func convertTransaction(tx model.Transaction) transactionJSON {
	args := tx.Arguments
	if args == nil {
		args = []string{}
	}
	authorizers := tx.Authorizers
	if authorizers == nil {
		authorizers = []string{}
	}
	return transactionJSON{
		Script:           tx.Script,
		Arguments:        args,
		ReferenceBlockID: tx.ReferenceBlockID,
		GasLimit:         strconv.FormatUint(tx.GasLimit, 10),
		Payer:            tx.Payer,
		ProposalKey: proposalKeyJSON{
			Address:        tx.ProposalKey.Address,
			KeyIndex:       strconv.FormatUint(uint64(tx.ProposalKey.KeyIndex), 10),
			SequenceNumber: strconv.FormatUint(tx.ProposalKey.SequenceNumber, 10),
		},
		Authorizers:        authorizers,
		PayloadSignatures:  convertSignatures(tx.PayloadSignatures),
		EnvelopeSignatures: convertSignatures(tx.EnvelopeSignatures),
	}
}

func convertSignatures(src []model.TransactionSignature) []signatureJSON {
	sigs := make([]signatureJSON, 0, len(src))
	for _, s := range src {
		sigs = append(sigs, signatureJSON{
			Address:   s.Address,
			KeyIndex:  strconv.FormatUint(uint64(s.KeyIndex), 10),
			Signature: base64.StdEncoding.EncodeToString(s.Signature),
		})
	}
	return sigs
}

func convertResult(id string, src transactionResultJSON) (model.TransactionResult, error) {
	events := make([]model.Event, 0, len(src.Events))
	for _, e := range src.Events {
		txIndex, err := safe.ParseUint64(e.TransactionIndex)
		if err != nil {
			return model.TransactionResult{}, fmt.Errorf("event %s transaction index: %w", e.Type, err)
		}
		eventIndex, err := safe.ParseUint64(e.EventIndex)
		if err != nil {
			return model.TransactionResult{}, fmt.Errorf("event %s index: %w", e.Type, err)
		}
		events = append(events, model.Event{
			Type:             e.Type,
			TransactionID:    e.TransactionID,
			TransactionIndex: txIndex,
			EventIndex:       eventIndex,
			Payload:          e.Payload,
		})
	}

	statusCode, err := safe.Uint32(src.StatusCode)
	if err != nil {
		return model.TransactionResult{}, fmt.Errorf("transaction %s status code: %w", id, err)
	}

	return model.TransactionResult{
		ID:           id,
		BlockID:      src.BlockID,
		Status:       model.ParseTransactionStatus(src.Status),
		StatusCode:   uint64(statusCode),
		ErrorMessage: src.ErrorMessage,
		Events:       events,
	}, nil
}
