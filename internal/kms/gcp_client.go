package kms

import (
	"context"
	"fmt"

	kmsapi "cloud.google.com/go/kms/apiv1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
)

// NewGCPClient dials Cloud KMS with prometheus and zap client interceptors.
// An empty credentialsFile falls back to application default credentials.
func NewGCPClient(ctx context.Context, credentialsFile string, logger *zap.Logger) (*kmsapi.KeyManagementClient, error) {
	chain := grpcMiddleware.ChainUnaryClient(
		grpcPrometheus.UnaryClientInterceptor,
		grpcZap.UnaryClientInterceptor(logger.Named("kms.grpc")),
	)
	opts := []option.ClientOption{
		option.WithGRPCDialOption(grpc.WithUnaryInterceptor(chain)),
	}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := kmsapi.NewKeyManagementClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create kms client: %w", err)
	}
	return client, nil
}
