package kms

import (
	"encoding/asn1"
	"errors"
	"fmt"
	"math/big"
)

const p256ScalarSize = 32

type ecdsaSignature struct {
	R, S *big.Int
}

// rawSignature converts an ASN.1 DER ECDSA signature into r||s, each left padded to size bytes.
func rawSignature(der []byte, size int) ([]byte, error) {
	var sig ecdsaSignature
	rest, err := asn1.Unmarshal(der, &sig)
	if err != nil {
		return nil, fmt.Errorf("parse der signature: %w", err)
	}
	if len(rest) != 0 {
		return nil, errors.New("trailing bytes after der signature")
	}
	if sig.R == nil || sig.S == nil || sig.R.Sign() <= 0 || sig.S.Sign() <= 0 {
		return nil, errors.New("invalid signature scalars")
	}
	if sig.R.BitLen() > size*8 || sig.S.BitLen() > size*8 {
		return nil, fmt.Errorf("signature scalar exceeds %d bytes", size)
	}

	out := make([]byte, 2*size)
	sig.R.FillBytes(out[:size])
	sig.S.FillBytes(out[size:])
	return out, nil
}
