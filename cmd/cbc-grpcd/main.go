package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"xdao.co/cbc/grpcsvc"
	"xdao.co/cbc/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, errOut io.Writer) int {
	fs := flag.NewFlagSet("cbc-grpcd", flag.ContinueOnError)
	fs.SetOutput(errOut)
	configPath := fs.String("config", "", "JSON config file (flags override its values)")
	flags := config.Default()
	flags.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := flags
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		loaded.Overlay(fs, flags)
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewJSONHandler(errOut, &slog.HandlerOptions{Level: level}))

	cas, err := cfg.OpenStore()
	if err != nil {
		logger.Error("open store", "backend", cfg.Backend, "error", err)
		return 1
	}

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Error("listen", "addr", cfg.Listen, "error", err)
		return 1
	}
	defer lis.Close()

	opts := []grpc.ServerOption{grpc.UnaryInterceptor(grpcsvc.LoggingInterceptor(logger))}
	if cfg.MaxMsgBytes > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(cfg.MaxMsgBytes), grpc.MaxSendMsgSize(cfg.MaxMsgBytes))
	}
	s := grpc.NewServer(opts...)
	grpcsvc.RegisterBarcodeServer(s, &grpcsvc.Server{CAS: cas})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		s.GracefulStop()
	}()

	logger.Info("cbc-grpcd listening", "addr", lis.Addr().String(), "backend", cfg.Backend)
	if err := s.Serve(lis); err != nil {
		logger.Error("serve", "error", err)
		return 1
	}
	return 0
}
