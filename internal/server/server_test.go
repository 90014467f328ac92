package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-report-keeper/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-report-keeper/internal/handler/http"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/service"
	"github.com/MKhiriev/go-report-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string { return "1.0.0" }

func (stubAppInfo) GetAppInfo(context.Context) models.AppInfo {
	return models.AppInfo{Version: "1.0.0"}
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func testHandlers(cfg config.Server) *handler.Handlers {
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{AppInfoService: stubAppInfo{}}, cfg, nil, logger.Nop()),
		GRPC: myGRPC.NewHandler(okPinger{}, time.Minute, logger.Nop()),
	}
}

func localListener(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{"both", config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, true, true, nil},
		{"http only", config.Server{HTTPAddress: ":8080"}, true, false, nil},
		{"grpc only", config.Server{GRPCAddress: ":9090"}, false, true, nil},
		{"none", config.Server{}, false, false, errNoServersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(testHandlers(tt.cfg), tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			s := srv.(*server)
			assert.Equal(t, tt.wantHTTP, s.httpServer != nil)
			assert.Equal(t, tt.wantGRPC, s.gRPCServer != nil)
		})
	}
}

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	srv, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	httpLn, grpcLn := localListener(t), localListener(t)
	s.httpServer.listener = httpLn
	s.gRPCServer.listener = grpcLn

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + httpLn.Addr().String() + "/api/version/")
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"version":"1.0.0"`)

	conn, err := grpc.NewClient(grpcLn.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	_, err = healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}
}

func TestRunServer_ListenFailureStopsEverything(t *testing.T) {
	busy := localListener(t)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String(), GRPCAddress: "127.0.0.1:0"}
	srv, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.RunServer(context.Background()) }()

	select {
	case err = <-done:
		assert.ErrorContains(t, err, "HTTP server listen")
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not fail")
	}
}
