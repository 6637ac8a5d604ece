// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/books-microservice/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// newHealthClient serves h over an in-memory listener.
func newHealthClient(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryLogger))
	h.Register(srv)

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, name string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

func TestNewHandler_StartsNotServing(t *testing.T) {
	client := newHealthClient(t, NewHandler(logger.Nop()))

	got, err := check(t, client, ServiceName)

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, got)
}

func TestHandler_SetServing(t *testing.T) {
	h := NewHandler(logger.Nop())
	client := newHealthClient(t, h)

	h.SetServing()

	for _, name := range []string{"", ServiceName} {
		got, err := check(t, client, name)
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, got, "service %q", name)
	}
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(logger.Nop())
	client := newHealthClient(t, h)

	h.SetServing()
	h.Shutdown()
	h.SetServing()

	got, err := check(t, client, ServiceName)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, got)
}

func TestHandler_UnknownService(t *testing.T) {
	client := newHealthClient(t, NewHandler(logger.Nop()))

	_, err := check(t, client, "unknown")

	assert.Equal(t, codes.NotFound, status.Code(err))
}
