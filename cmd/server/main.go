// Command server exposes the weight-control backend over gRPC: one-off
// roulette decisions, full slab simulation runs, and process diagnostics.
package main

import (
	"context"
	"flag"
	"log/slog"
	"math"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	transportv1 "github.com/xtding233/transport-backend/api/gen/go/transport/v1"
	"github.com/xtding233/transport-backend/internal/particle"
	"github.com/xtding233/transport-backend/internal/physics"
	"github.com/xtding233/transport-backend/internal/rng"
	"github.com/xtding233/transport-backend/internal/settings"
	"github.com/xtding233/transport-backend/internal/tally"
	"github.com/xtding233/transport-backend/internal/track"
)

// transportServer implements transport.v1.TransportService. The ledger and
// the simulation counter are the only shared state; both are atomic.
type transportServer struct {
	transportv1.UnimplementedTransportServiceServer

	loader *settings.Loader
	ledger *tally.AtomicCounters
	sims   atomic.Uint64
	logger *slog.Logger
}

// Roulette plays a single weight-control game on a fresh private stream.
// Request validation lives here; the decision itself trusts its inputs.
func (s *transportServer) Roulette(ctx context.Context, req *transportv1.RouletteRequest) (*transportv1.RouletteResponse, error) {
	w, ws := req.GetWeight(), req.GetWeightSurvive()
	switch {
	case math.IsNaN(w) || math.IsInf(w, 0):
		return nil, status.Error(codes.InvalidArgument, "weight must be finite")
	case math.IsNaN(ws) || math.IsInf(ws, 0) || ws <= 0:
		return nil, status.Error(codes.InvalidArgument, "weight_survive must be a positive finite number")
	case w < 0:
		return nil, status.Error(codes.InvalidArgument, "weight must be >= 0")
	case w >= ws:
		return nil, status.Error(codes.InvalidArgument, "weight must be below weight_survive")
	}

	stream := rng.New(req.GetSeed())
	p := &particle.Particle{Weight: w, Stream: stream}
	survived := physics.RussianRoulette(p, ws)
	s.ledger.Observe(survived)

	return &transportv1.RouletteResponse{
		Weight:   p.Weight,
		Survived: survived,
		Draws:    stream.Draws(),
	}, nil
}

// Simulate resolves the named run settings, applies request overrides, and
// transports the histories through the slab.
func (s *transportServer) Simulate(ctx context.Context, req *transportv1.SimulateRequest) (*transportv1.SimulateResponse, error) {
	var o settings.Overrides
	if v := req.GetHistories(); v != 0 {
		o.Histories = &v
	}
	if v := req.GetSeed(); v != 0 {
		o.Seed = &v
	}
	if v := int(req.GetWorkers()); v != 0 {
		o.Workers = &v
	}
	if v := int(req.GetBatches()); v != 0 {
		o.Batches = &v
	}

	_, params, err := s.loader.Resolve(req.GetRun(), o)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	runner := track.Runner{Params: params, Ledger: s.ledger}
	res, err := runner.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, status.FromContextError(ctx.Err()).Err()
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	s.sims.Add(1)

	s.logger.Info("simulation finished",
		"run", req.GetRun(),
		"histories", res.Histories,
		"batches", res.Batches,
		"workers", res.Workers,
		"seed", res.Seed,
		"transmission", res.Transmission,
		"transmission_stderr", res.TransmissionStdErr,
		"roulette_invocations", res.Counters.Invocations,
		"roulette_survivals", res.Counters.Survivals,
		"elapsed", res.Elapsed,
		"fom", res.FigureOfMerit,
	)

	return &transportv1.SimulateResponse{
		Histories:           res.Histories,
		Batches:             int32(res.Batches),
		Workers:             int32(res.Workers),
		Seed:                res.Seed,
		Transmission:        res.Transmission,
		TransmissionStderr:  res.TransmissionStdErr,
		Reflection:          res.Reflection,
		ReflectionStderr:    res.ReflectionStdErr,
		Absorption:          res.Absorption,
		AbsorptionStderr:    res.AbsorptionStdErr,
		RouletteInvocations: res.Counters.Invocations,
		RouletteSurvivals:   res.Counters.Survivals,
		RouletteKills:       res.Counters.Kills,
		ElapsedSeconds:      res.Elapsed.Seconds(),
		FigureOfMerit:       res.FigureOfMerit,
		Version:             res.Version,
	}, nil
}

// Diagnostics reports the process-wide roulette ledger.
func (s *transportServer) Diagnostics(ctx context.Context, req *transportv1.DiagnosticsRequest) (*transportv1.DiagnosticsResponse, error) {
	c := s.ledger.Snapshot()
	return &transportv1.DiagnosticsResponse{
		RouletteInvocations: c.Invocations,
		RouletteSurvivals:   c.Survivals,
		RouletteKills:       c.Kills,
		Simulations:         s.sims.Load(),
	}, nil
}

func main() {
	addr := flag.String("addr", ":9090", "gRPC listen address")
	configDir := flag.String("config", "config", "base directory holding runs/*.yaml")
	watchEvery := flag.Duration("watch", 5*time.Second, "settings poll interval, 0 disables hot reload")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	loader := settings.NewLoader(*configDir)
	if *watchEvery > 0 {
		watcher := settings.NewRunsWatcher(*configDir, *watchEvery, func(path string) {
			logger.Info("run settings changed", "path", path)
			loader.Invalidate()
		})
		watcher.Start()
		defer watcher.Stop()
	}

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Error("listen failed", "addr", *addr, "err", err)
		os.Exit(1)
	}

	srv := grpc.NewServer()
	transportv1.RegisterTransportServiceServer(srv, &transportServer{
		loader: loader,
		ledger: &tally.AtomicCounters{},
		logger: logger,
	})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		srv.GracefulStop()
	}()

	logger.Info("listening", "addr", lis.Addr().String(), "config", *configDir)
	if err := srv.Serve(lis); err != nil {
		logger.Error("serve failed", "err", err)
		os.Exit(1)
	}
}
