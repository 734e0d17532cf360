package service

import (
	"encoding/base64"
	"fmt"

	"github.com/onflow/flow-go-sdk"

	"github.com/goodnatureofminers/flow-kms-client/internal/flow/model"
)

// envelopeMessage returns the domain tagged canonical envelope the proposer and payer sign.
func envelopeMessage(tx model.Transaction) ([]byte, error) {
	ftx, err := toFlowTransaction(tx)
	if err != nil {
		return nil, err
	}
	envelope := ftx.EnvelopeMessage()
	message := make([]byte, 0, len(flow.TransactionDomainTag)+len(envelope))
	message = append(message, flow.TransactionDomainTag[:]...)
	return append(message, envelope...), nil
}

func toFlowTransaction(tx model.Transaction) (*flow.Transaction, error) {
	script, err := base64.StdEncoding.DecodeString(tx.Script)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	arguments := make([][]byte, 0, len(tx.Arguments))
	for i, arg := range tx.Arguments {
		raw, err := base64.StdEncoding.DecodeString(arg)
		if err != nil {
			return nil, fmt.Errorf("decode argument %d: %w", i, err)
		}
		arguments = append(arguments, raw)
	}
	authorizers := make([]flow.Address, 0, len(tx.Authorizers))
	for _, a := range tx.Authorizers {
		authorizers = append(authorizers, flow.HexToAddress(a))
	}

	ftx := &flow.Transaction{
		Script:           script,
		Arguments:        arguments,
		ReferenceBlockID: flow.HexToID(tx.ReferenceBlockID),
		GasLimit:         tx.GasLimit,
		ProposalKey: flow.ProposalKey{
			Address:        flow.HexToAddress(tx.ProposalKey.Address),
			KeyIndex:       tx.ProposalKey.KeyIndex,
			SequenceNumber: tx.ProposalKey.SequenceNumber,
		},
		Payer:       flow.HexToAddress(tx.Payer),
		Authorizers: authorizers,
	}
	for _, sig := range tx.PayloadSignatures {
		ftx.AddPayloadSignature(flow.HexToAddress(sig.Address), sig.KeyIndex, sig.Signature)
	}
	return ftx, nil
}
