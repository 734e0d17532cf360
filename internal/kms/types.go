package kms

import (
	"context"
	"time"

	"cloud.google.com/go/kms/apiv1/kmspb"
	"github.com/googleapis/gax-go/v2"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// KeyManagementService is the subset of the Cloud KMS client used for signing.
	// *kmsapi.KeyManagementClient from cloud.google.com/go/kms/apiv1 satisfies it.
	KeyManagementService interface {
		GetPublicKey(ctx context.Context, req *kmspb.GetPublicKeyRequest, opts ...gax.CallOption) (*kmspb.PublicKey, error)
		AsymmetricSign(ctx context.Context, req *kmspb.AsymmetricSignRequest, opts ...gax.CallOption) (*kmspb.AsymmetricSignResponse, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
