package handler

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/vaultpass/pw/internal/clipboard"
	"github.com/vaultpass/pw/internal/config"
	"github.com/vaultpass/pw/internal/crypto"
	"github.com/vaultpass/pw/internal/model"
	"github.com/vaultpass/pw/internal/service"
)

// Process exit statuses.
const (
	ExitOK          = 0
	ExitEnvironment = 1
	ExitConfig      = 2
)

// GeneratorHandler runs a generation request through to the clipboard.
type GeneratorHandler struct {
	service *service.GeneratorService
	sink    clipboard.Sink
	out     io.Writer
}

// NewGeneratorHandler creates a new GeneratorHandler that reports to out.
func NewGeneratorHandler(svc *service.GeneratorService, sink clipboard.Sink, out io.Writer) *GeneratorHandler {
	return &GeneratorHandler{service: svc, sink: sink, out: out}
}

// HandleGenerate generates a password and copies it to the clipboard. The
// password itself is never written to out.
func (h *GeneratorHandler) HandleGenerate(req model.GenerateRequest) error {
	resp, err := h.service.Generate(req)
	if err != nil {
		return err
	}

	if err := h.sink.Write(resp.Password); err != nil {
		return err
	}

	slog.Debug("password copied to clipboard", "length", resp.Length, "charset_size", resp.CharsetSize)
	paint(h.out, color.FgGreen).Fprintln(h.out, "Password copied to clipboard.")
	return nil
}

// ReportError prints err to w.
func ReportError(w io.Writer, err error) {
	paint(w, color.FgRed).Fprintf(w, "error: %v\n", err)
}

// paint returns a colour that is only emitted when w itself is a terminal.
// color.NoColor only reflects stdout.
func paint(w io.Writer, attr color.Attribute) *color.Color {
	c := color.New(attr)
	if isTerminal(w) && os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb" {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ExitCode maps err onto a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case isValidationError(err):
		return ExitConfig
	default:
		return ExitEnvironment
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrEmptyCharset) ||
		errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, service.ErrUnimplementedMode) ||
		errors.Is(err, service.ErrConflictingModes) ||
		errors.Is(err, config.ErrUsage)
}
