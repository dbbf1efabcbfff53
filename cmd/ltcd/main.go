package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Litecoindark/LTCD/conf"
	"github.com/Litecoindark/LTCD/log"
	"github.com/Litecoindark/LTCD/logic/lchain"
	"github.com/Litecoindark/LTCD/model/chainparams"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := conf.InitConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}
	conf.Cfg = cfg

	if err := log.InitFromConf(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init log: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg); err != nil {
		log.Error("ltcd failed: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *conf.Configuration) error {
	params, err := chainparams.ForNetwork(cfg.Network())
	if err != nil {
		return err
	}

	processor, err := lchain.NewHeaderProcessor(params, cfg.CheckpointsEnabled())
	if err != nil {
		return err
	}
	log.Info("network %s, %d checkpoints, estimated height %d", params.Name,
		len(processor.Registry().Data().Checkpoints), processor.Registry().TotalBlocksEstimate())

	if cfg.Metrics.Addr != "" {
		startMetricsServer(ctx, cfg.Metrics.Addr)
	}

	if cfg.HeadersFile != "" {
		count, err := importHeadersFile(ctx, processor, cfg.HeadersFile)
		if err != nil {
			return err
		}
		tip := processor.Chain().Tip()
		if tip != nil {
			fmt.Printf("imported %d headers, tip %s at height %d, progress %.6f\n", count,
				tip.BlockHash, tip.Height, lchain.GuessVerificationProgress(params.CheckpointData, tip))
		}
	}

	if cfg.Metrics.Addr == "" {
		return nil
	}
	<-ctx.Done()
	return nil
}

func startMetricsServer(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("starting metrics server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shutdown metrics server: %v", err)
		}
	}()
}
