// Package model defines domain models for Flow transaction submission.
package model

// Account is an on-chain account together with its keys.
type Account struct {
	Address string
	Balance uint64
	Keys    []AccountKey
}

// AccountKey is a single public key registered on an account.
type AccountKey struct {
	Index            uint32
	PublicKey        string
	SigningAlgorithm string
	HashingAlgorithm string
	SequenceNumber   uint64
	Weight           uint64
	Revoked          bool
}

// SequenceNumber returns the sequence number of the key at index.
// A zero sequence number is a valid value; ok reports whether the key exists.
func (a Account) SequenceNumber(index uint32) (seq uint64, ok bool) {
	for _, k := range a.Keys {
		if k.Index == index {
			return k.SequenceNumber, true
		}
	}
	return 0, false
}
