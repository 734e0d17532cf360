package model

import "strings"

// TransactionStatus is the lifecycle state reported for a submitted transaction.
type TransactionStatus string

var (
	StatusUnknown   TransactionStatus = "UNKNOWN"
	StatusPending   TransactionStatus = "PENDING"
	StatusFinalized TransactionStatus = "FINALIZED"
	StatusExecuted  TransactionStatus = "EXECUTED"
	StatusSealed    TransactionStatus = "SEALED"
	StatusExpired   TransactionStatus = "EXPIRED"
)

// ParseTransactionStatus normalizes the casing used by the access API ("Sealed") to a status.
func ParseTransactionStatus(s string) TransactionStatus {
	return TransactionStatus(strings.ToUpper(strings.TrimSpace(s)))
}

// ProposalKey identifies the key that proposes a transaction and its position in the key's nonce sequence.
type ProposalKey struct {
	Address        string
	KeyIndex       uint32
	SequenceNumber uint64
}

// TransactionSignature is a signature over a transaction payload or envelope.
type TransactionSignature struct {
	Address   string
	KeyIndex  uint32
	Signature []byte
}

// Transaction is a transaction ready for submission. Script and Arguments are base64 encoded.
type Transaction struct {
	Script             string
	Arguments          []string
	ReferenceBlockID   string
	GasLimit           uint64
	ProposalKey        ProposalKey
	Payer              string
	Authorizers        []string
	PayloadSignatures  []TransactionSignature
	EnvelopeSignatures []TransactionSignature
}

// Event is an event emitted by an executed transaction. Payload is base64 encoded JSON.
type Event struct {
	Type             string
	TransactionID    string
	TransactionIndex uint64
	EventIndex       uint64
	Payload          string
}

// TransactionResult is the execution state of a submitted transaction.
type TransactionResult struct {
	ID           string
	BlockID      string
	Status       TransactionStatus
	StatusCode   uint64
	ErrorMessage string
	Events       []Event
}
