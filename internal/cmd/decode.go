package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Alia5/scankey/input"
	"github.com/Alia5/scankey/internal/log"
	"github.com/Alia5/scankey/keyboard"
	"github.com/Alia5/scankey/layout"

	"golang.org/x/term"
)

// Decode reads a scancode stream and prints the resulting key events.
type Decode struct {
	File        string `arg:"" optional:"" help:"Scancode input file (defaults to stdin)" type:"path"`
	InputFormat string `help:"Input encoding" enum:"binary,hex" default:"binary" env:"SCANKEY_INPUT_FORMAT"`
	Layout      string `help:"Built-in layout name" default:"us" env:"SCANKEY_LAYOUT"`
	LayoutFile  string `help:"Load the layout from a JSON, YAML or TOML document" type:"path" env:"SCANKEY_LAYOUT_FILE"`
	WatchLayout bool   `help:"Reload the layout file when it changes" env:"SCANKEY_WATCH_LAYOUT"`
	NoLockKeys  bool   `help:"Ignore caps, num and scroll lock" env:"SCANKEY_NO_LOCK_KEYS"`
	Output      string `help:"Output format; auto prints text on a terminal and JSON lines otherwise" enum:"auto,text,json" default:"auto" env:"SCANKEY_OUTPUT"`
	Releases    bool   `help:"Also print key release events" env:"SCANKEY_RELEASES"`
}

// Run is called by Kong when the decode command is executed.
func (d *Decode) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var in io.Reader = os.Stdin
	if d.File != "" {
		f, err := os.Open(d.File)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	return d.Decode(ctx, in, os.Stdout, logger, rawLogger)
}

// Decode processes r until EOF or until ctx is done and writes events to w.
func (d *Decode) Decode(ctx context.Context, r io.Reader, w io.Writer, logger *slog.Logger, rawLogger log.RawLogger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if d.WatchLayout && d.LayoutFile == "" {
		return errors.New("--watch-layout requires --layout-file")
	}

	// Stops the layout watcher once the input is exhausted.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l, err := d.resolveLayout()
	if err != nil {
		return err
	}

	var opts []keyboard.Option
	if d.NoLockKeys {
		opts = append(opts, keyboard.WithLockKeysDisabled())
	}
	session := input.NewSession(l, logger, opts...)

	if d.WatchLayout {
		if err := layout.Watch(ctx, d.LayoutFile, logger, func(nl *layout.Layout) {
			session.SetLayout(nl)
		}); err != nil {
			return fmt.Errorf("watch layout: %w", err)
		}
	}

	switch d.InputFormat {
	case "", "binary":
	case "hex":
		r = newHexReader(r)
	default:
		return fmt.Errorf("unsupported input format: %s", d.InputFormat)
	}
	if rawLogger != nil {
		r = log.Reader(r, rawLogger)
	}

	enc, err := newEncoder(d.outputFormat(w), w)
	if err != nil {
		return err
	}

	logger.Info("Decoding scancodes", "layout", l.Name(), "input", d.inputName(), "format", d.InputFormat)
	err = session.Run(ctx, r, func(ev keyboard.Event) error {
		if !ev.Pressed && !d.Releases {
			return nil
		}
		return enc.Encode(ev)
	})
	if errors.Is(err, context.Canceled) {
		logger.Info("Decode interrupted")
		return nil
	}
	return err
}

func (d *Decode) resolveLayout() (*layout.Layout, error) {
	if d.LayoutFile != "" {
		l, err := layout.Load(d.LayoutFile)
		if err != nil {
			return nil, fmt.Errorf("load layout: %w", err)
		}
		return l, nil
	}
	name := d.Layout
	if name == "" {
		name = "us"
	}
	l, ok := layout.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (available: %s)", name, strings.Join(layout.Names(), ", "))
	}
	return l, nil
}

func (d *Decode) inputName() string {
	if d.File == "" {
		return "stdin"
	}
	return d.File
}

func (d *Decode) outputFormat(w io.Writer) string {
	if d.Output != "" && d.Output != "auto" {
		return d.Output
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "text"
	}
	return "json"
}
