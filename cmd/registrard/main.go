package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"registrar/internal/config"
	"registrar/internal/daemon"
	"registrar/internal/ipc"
	"registrar/internal/logging"
	"registrar/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("prepare directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg.Paths.LogDir, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		logger.Error("open catalog store", logging.Error(err))
		return
	}

	d, err := daemon.New(cfg, st, logger)
	if err != nil {
		logger.Error("create daemon", logging.Error(err))
		_ = st.Close()
		return
	}
	defer d.Close()

	if err := d.Start(); err != nil {
		logger.Error("daemon start", logging.Error(err))
		return
	}

	ipcServer, err := ipc.NewServer(ctx, cfg.SocketPath(), d, logger)
	if err != nil {
		logger.Error("start IPC server", logging.Error(err))
		return
	}
	defer ipcServer.Close()
	ipcServer.Serve()

	<-ctx.Done()
	logger.Info("registrard shutting down")
}
