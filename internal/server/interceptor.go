package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func loggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
	}
	slog.Log(ctx, level, "grpc request",
		"method", info.FullMethod,
		"code", code.String(),
		"latency", time.Since(start),
	)
	return resp, err
}
