package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/vaultpass/pw/internal/clipboard"
	"github.com/vaultpass/pw/internal/config"
	"github.com/vaultpass/pw/internal/crypto"
	"github.com/vaultpass/pw/internal/handler"
	"github.com/vaultpass/pw/internal/service"
)

// Version of the build injected at build time.
var buildString = "unknown"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return handler.ExitOK
	}
	if err != nil {
		handler.ReportError(stderr, err)
		return handler.ExitCode(err)
	}

	if cfg.Version {
		fmt.Fprintln(stdout, buildString)
		return handler.ExitOK
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	src, err := crypto.NewSystemSource()
	if err != nil {
		slog.Error("seeding random source failed", "error", err)
		handler.ReportError(stderr, err)
		return handler.ExitCode(err)
	}

	genService := service.NewGeneratorService(src)
	genHandler := handler.NewGeneratorHandler(genService, clipboard.NewSystem(), stdout)

	if err := genHandler.HandleGenerate(cfg.Request); err != nil {
		slog.Debug("generation failed", "error", err)
		handler.ReportError(stderr, err)
		return handler.ExitCode(err)
	}
	return handler.ExitOK
}
