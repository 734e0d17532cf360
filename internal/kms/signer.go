// Package kms signs messages with keys held by Google Cloud KMS.
//
// Rather than holding a private key locally, the Signer hashes the message and asks
// the remote service to sign the digest, so key material never leaves the service.
package kms

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/kms/apiv1/kmspb"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// PublicKey is the public half of the signing key as returned by the service.
type PublicKey struct {
	Name        string
	PEM         string
	PEMChecksum int64
}

// KeyVersionName builds the resource name of a key version.
func KeyVersionName(project, location, keyRing, key, version string) string {
	return fmt.Sprintf("projects/%s/locations/%s/keyRings/%s/cryptoKeys/%s/cryptoKeyVersions/%s",
		project, location, keyRing, key, version)
}

// Signer signs with a single key version. It is safe for concurrent use
// when the underlying service client is.
type Signer struct {
	service    KeyManagementService
	keyVersion string
	checksum   Checksum
	metrics    Metrics
	logger     *zap.Logger
}

// NewSigner builds a Signer for keyVersion. A nil checksum selects CRC32C.
func NewSigner(
	service KeyManagementService,
	keyVersion string,
	checksum Checksum,
	metrics Metrics,
	logger *zap.Logger,
) (*Signer, error) {
	if service == nil {
		return nil, errors.New("key management service is required")
	}
	if keyVersion == "" {
		return nil, errors.New("key version name is required")
	}
	if metrics == nil {
		return nil, errors.New("kms signer metrics is required")
	}
	if checksum == nil {
		checksum = CRC32C()
	}
	return &Signer{
		service:    service,
		keyVersion: keyVersion,
		checksum:   checksum,
		metrics:    metrics,
		logger:     logger.With(zap.String("key_version", keyVersion)),
	}, nil
}

// FetchPublicKey returns the key version's public key after verifying the
// response names the requested version and its PEM matches the reported checksum.
func (s *Signer) FetchPublicKey(ctx context.Context) (key PublicKey, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("get_public_key", err, started)
	}()

	resp, err := s.service.GetPublicKey(ctx, &kmspb.GetPublicKeyRequest{Name: s.keyVersion})
	if err != nil {
		return PublicKey{}, err
	}
	if resp.GetName() != s.keyVersion {
		return PublicKey{}, &IntegrityError{
			Operation: "get public key",
			Detail:    fmt.Sprintf("requested %q, got %q", s.keyVersion, resp.GetName()),
			Err:       ErrRequestCorrupted,
		}
	}
	if got := int64(s.checksum([]byte(resp.GetPem()))); got != resp.GetPemCrc32C().GetValue() {
		return PublicKey{}, &IntegrityError{
			Operation: "get public key",
			Detail:    fmt.Sprintf("pem checksum %d, reported %d", got, resp.GetPemCrc32C().GetValue()),
			Err:       ErrResponseCorrupted,
		}
	}

	return PublicKey{
		Name:        resp.GetName(),
		PEM:         resp.GetPem(),
		PEMChecksum: resp.GetPemCrc32C().GetValue(),
	}, nil
}

// Sign returns the service's DER encoded ECDSA signature over the SHA-256 digest of message.
// Only the digest is sent.
func (s *Signer) Sign(ctx context.Context, message []byte) (sig []byte, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("asymmetric_sign", err, started)
	}()

	digest := sha256.Sum256(message)
	req := &kmspb.AsymmetricSignRequest{
		Name: s.keyVersion,
		Digest: &kmspb.Digest{
			Digest: &kmspb.Digest_Sha256{Sha256: digest[:]},
		},
		DigestCrc32C: wrapperspb.Int64(int64(s.checksum(digest[:]))),
	}

	resp, err := s.service.AsymmetricSign(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.GetVerifiedDigestCrc32C() {
		return nil, &IntegrityError{
			Operation: "asymmetric sign",
			Detail:    "digest checksum not verified by service",
			Err:       ErrRequestCorrupted,
		}
	}
	if resp.GetName() != "" && resp.GetName() != s.keyVersion {
		return nil, &IntegrityError{
			Operation: "asymmetric sign",
			Detail:    fmt.Sprintf("requested %q, got %q", s.keyVersion, resp.GetName()),
			Err:       ErrRequestCorrupted,
		}
	}

	sig = resp.GetSignature()
	if len(sig) == 0 {
		return nil, ErrNoSignature
	}
	if reported := resp.GetSignatureCrc32C(); reported != nil {
		if got := int64(s.checksum(sig)); got != reported.GetValue() {
			return nil, &IntegrityError{
				Operation: "asymmetric sign",
				Detail:    fmt.Sprintf("signature checksum %d, reported %d", got, reported.GetValue()),
				Err:       ErrResponseCorrupted,
			}
		}
	}

	s.logger.Debug("message signed", zap.Int("message_bytes", len(message)), zap.Int("signature_bytes", len(sig)))
	return sig, nil
}

// SignFlow signs message and returns the signature in the fixed-width r||s form
// the network verifies.
func (s *Signer) SignFlow(ctx context.Context, message []byte) ([]byte, error) {
	der, err := s.Sign(ctx, message)
	if err != nil {
		return nil, err
	}
	raw, err := rawSignature(der, p256ScalarSize)
	if err != nil {
		return nil, fmt.Errorf("convert signature: %w", err)
	}
	return raw, nil
}
