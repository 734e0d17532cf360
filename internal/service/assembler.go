package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/flow-kms-client/internal/flow/jsoncdc"
	"github.com/goodnatureofminers/flow-kms-client/internal/flow/model"
)

// createAccountScript adds each hex encoded P-256 public key to a new account paid for by the signer.
const createAccountScript = `transaction(publicKeys: [String]) {
	prepare(signer: auth(BorrowValue | Storage) &Account) {
		let account = Account(payer: signer)
		for key in publicKeys {
			account.keys.add(
				publicKey: PublicKey(
					publicKey: key.decodeHex(),
					signatureAlgorithm: SignatureAlgorithm.ECDSA_P256
				),
				hashAlgorithm: HashAlgorithm.SHA3_256,
				weight: 1000.0
			)
		}
	}
}
`

// BuildTransaction assembles an unsigned transaction with the service account as
// proposer, payer and sole authorizer, referencing the latest sealed block.
func (c *Client) BuildTransaction(ctx context.Context, script string, args ...any) (model.Transaction, error) {
	account, err := c.access.GetAccount(ctx, c.cfg.ServiceAddress)
	if err != nil {
		return model.Transaction{}, err
	}
	seq, ok := account.SequenceNumber(c.cfg.ServiceKeyIndex)
	if !ok {
		return model.Transaction{}, &SequenceNumberError{
			Address:  c.cfg.ServiceAddress,
			KeyIndex: c.cfg.ServiceKeyIndex,
		}
	}

	blocks, err := c.access.GetLatestBlock(ctx)
	if err != nil {
		return model.Transaction{}, err
	}
	if len(blocks) == 0 {
		return model.Transaction{}, ErrNoBlocks
	}

	arguments, err := jsoncdc.BuildArguments(args...)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("build arguments: %w", err)
	}

	return model.Transaction{
		Script:           jsoncdc.BuildScript(script),
		Arguments:        arguments,
		ReferenceBlockID: blocks[0].ID,
		GasLimit:         c.cfg.GasLimit,
		ProposalKey: model.ProposalKey{
			Address:        c.cfg.ServiceAddress,
			KeyIndex:       c.cfg.ServiceKeyIndex,
			SequenceNumber: seq,
		},
		Payer:       c.cfg.ServiceAddress,
		Authorizers: []string{c.cfg.ServiceAddress},
	}, nil
}

// Sign attaches the service account's envelope signature. Without a signer the
// transaction is returned unchanged.
func (c *Client) Sign(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	if c.signer == nil {
		return tx, nil
	}
	message, err := envelopeMessage(tx)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("build envelope message: %w", err)
	}
	sig, err := c.signer.SignFlow(ctx, message)
	if err != nil {
		return model.Transaction{}, err
	}
	tx.EnvelopeSignatures = append(tx.EnvelopeSignatures, model.TransactionSignature{
		Address:   c.cfg.ServiceAddress,
		KeyIndex:  c.cfg.ServiceKeyIndex,
		Signature: sig,
	})
	return tx, nil
}

// SendTransaction builds, signs and submits script with args, and waits for it to seal.
func (c *Client) SendTransaction(ctx context.Context, script string, args ...any) (model.TransactionResult, error) {
	tx, err := c.BuildTransaction(ctx, script, args...)
	if err != nil {
		return model.TransactionResult{}, err
	}
	tx, err = c.Sign(ctx, tx)
	if err != nil {
		return model.TransactionResult{}, err
	}
	return c.SubmitAndAwait(ctx, tx)
}

// CreateAccount creates an account holding publicKeys and returns it as seen after sealing.
func (c *Client) CreateAccount(ctx context.Context, publicKeys []string) (model.Account, error) {
	if publicKeys == nil {
		publicKeys = []string{}
	}

	result, err := c.SendTransaction(ctx, createAccountScript, publicKeys)
	if err != nil {
		return model.Account{}, err
	}

	address, err := createdAccountAddress(result.Events)
	if err != nil {
		return model.Account{}, err
	}
	c.logger.Info("account created",
		zap.String("transaction_id", result.ID),
		zap.String("address", address),
		zap.Int("public_keys", len(publicKeys)))

	return c.access.GetAccount(ctx, address)
}
