package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
)

var publicMethods = map[string]struct{}{
	pb.LoginFullMethod:    {},
	pb.RegisterFullMethod: {},
	pb.PingFullMethod:     {},
}

// metadataValue returns the first value of key in the incoming metadata.
func metadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// accessTokenInterceptor rejects calls to protected methods unless the
// authorization metadata carries a valid bearer token.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	claims, err := s.verifier.Verify(metadataValue(ctx, common.AuthorizationHeaderName))
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, authMessage(err))
	}

	return handler(auth.WithClaims(ctx, claims), req)
}

func authMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissing):
		return "missing token"
	case errors.Is(err, auth.ErrMalformed):
		return "malformed token"
	default:
		return "invalid token"
	}
}

// recoveryInterceptor turns a handler panic into codes.Internal.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "panic in handler", "method", info.FullMethod, "panic", r)
			resp, err = nil, status.Error(codes.Internal, "internal error")
		}
	}()
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	id := metadataValue(ctx, common.RequestIDHeaderName)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "rpc",
		"request_id", id,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
