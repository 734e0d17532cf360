package rest

// Wire types mirror the access API JSON. 64-bit integers travel as decimal strings.

type accountKeyJSON struct {
	Index            string `json:"index"`
	PublicKey        string `json:"public_key"`
	SigningAlgorithm string `json:"signing_algorithm"`
	HashingAlgorithm string `json:"hashing_algorithm"`
	SequenceNumber   string `json:"sequence_number"`
	Weight           string `json:"weight"`
	Revoked          bool   `json:"revoked"`
}

type accountJSON struct {
	Address string           `json:"address"`
	Balance string           `json:"balance"`
	Keys    []accountKeyJSON `json:"keys"`
}

type blockHeaderJSON struct {
	ID        string `json:"id"`
	ParentID  string `json:"parent_id"`
	Height    string `json:"height"`
	Timestamp string `json:"timestamp"`
}

type blockJSON struct {
	Header blockHeaderJSON `json:"header"`
}

type proposalKeyJSON struct {
	Address        string `json:"address"`
	KeyIndex       string `json:"key_index"`
	SequenceNumber string `json:"sequence_number"`
}

type signatureJSON struct {
	Address   string `json:"address"`
	KeyIndex  string `json:"key_index"`
	Signature string `json:"signature"`
}

type transactionJSON struct {
	Script             string          `json:"script"`
	Arguments          []string        `json:"arguments"`
	ReferenceBlockID   string          `json:"reference_block_id"`
	GasLimit           string          `json:"gas_limit"`
	Payer              string          `json:"payer"`
	ProposalKey        proposalKeyJSON `json:"proposal_key"`
	Authorizers        []string        `json:"authorizers"`
	PayloadSignatures  []signatureJSON `json:"payload_signatures"`
	EnvelopeSignatures []signatureJSON `json:"envelope_signatures"`
}

type sendTransactionResponseJSON struct {
	ID string `json:"id"`
}

type eventJSON struct {
	Type             string `json:"type"`
	TransactionID    string `json:"transaction_id"`
	TransactionIndex string `json:"transaction_index"`
	EventIndex       string `json:"event_index"`
	Payload          string `json:"payload"`
}

type transactionResultJSON struct {
	BlockID      string      `json:"block_id"`
	Status       string      `json:"status"`
	StatusCode   int         `json:"status_code"`
	ErrorMessage string      `json:"error_message"`
	Events       []eventJSON `json:"events"`
}

type errorJSON struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
