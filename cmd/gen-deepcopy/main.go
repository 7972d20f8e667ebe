package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/seitarof/gen-deepcopy/internal/cli"
	"github.com/seitarof/gen-deepcopy/internal/diagnostic"
	"github.com/seitarof/gen-deepcopy/internal/generator"
	"github.com/seitarof/gen-deepcopy/internal/parser"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	settings, err := cfg.Settings()
	if err != nil {
		logger.Fatal("loading settings", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		emitter generator.Emitter
		dirs    cli.DirRecorder
	)
	if cfg.DryRun {
		emitter = generator.NewDryRunEmitter(os.Stdout)
	} else {
		fe := generator.NewFileEmitter(settings.OutputDir)
		emitter, dirs = fe, fe
	}

	p := parser.New(parser.WithMarkers(settings.Markers))
	g := generator.New(generator.NewGoimportsFormatter(), emitter)
	runner := cli.NewRunner(p, g, settings, diagnostic.NewZapSink(logger), dirs)

	if err := runner.Run(ctx, cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// newLogger logs info diagnostics only when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	zc.Encoding = "console"
	zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return zc.Build()
}
