package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/remaimber-it/mcquiz/internal/infrastructure/config"
	"github.com/remaimber-it/mcquiz/internal/infrastructure/logging"
	"github.com/remaimber-it/mcquiz/internal/loader"
	"github.com/remaimber-it/mcquiz/internal/service"
	"github.com/remaimber-it/mcquiz/internal/terminal"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	pflag.StringVarP(&cfg.Source, "source", "s", cfg.Source, "question resource: URL, file path, s3://bucket/key or sqlite://db?set=id")
	pflag.DurationVar(&cfg.LoadTimeout, "timeout", cfg.LoadTimeout, "time allowed for loading questions")
	pflag.StringVar(&cfg.Log.File, "log-file", cfg.Log.File, "write logs to this file")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\nFlags:\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, config.Usage(&config.Client{}))
	}
	pflag.Parse()

	// The terminal owns stdout, so logs only go to a file when one is set.
	logger, closeLog := logging.New(cfg.Log, nil)
	defer closeLog()

	l, closeLoader, err := loader.FromSource(cfg.Source, loader.Options{
		ObjectStorage: loader.ObjectStorageConfig{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLoader()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		cancel()
		logger.Info("interrupted")
		fmt.Fprintln(os.Stdout)
		closeLoader()
		closeLog()
		os.Exit(130)
	}()

	logger.Info("starting quiz", "source", cfg.Source)
	runner := service.NewQuizRunner(l, logger, cfg.LoadTimeout)
	if err := terminal.NewApp(runner, os.Stdin, os.Stdout).Run(ctx); err != nil {
		logger.Error("quiz stopped", "error", err)
		fmt.Fprintln(os.Stderr, err)
		closeLoader()
		closeLog()
		os.Exit(1)
	}
}
