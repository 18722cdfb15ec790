package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jessevdk/go-flags"
)

var (
	// CLIVersion is set at build time via -ldflags.
	CLIVersion     = "dev"
	CLIVersionHash = "unknown"
)

func main() {
	if err := Main(context.Background()); err != nil {
		os.Exit(1)
	}
}

// Main builds the command tree and dispatches to the selected
// subcommand.
func Main(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	parser := flags.NewNamedParser("crucible", flags.Default)
	parser.ShortDescription = "Crucible"
	parser.LongDescription = "A collateralised debt vault ledger with dutch auction liquidations"

	for _, register := range []func(context.Context, *flags.Parser) error{
		Init,
		Node,
		Version,
	} {
		if err := register(ctx, parser); err != nil {
			return err
		}
	}

	if _, err := parser.Parse(); err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	return nil
}

// HomeFlag is shared by every subcommand that needs the node home.
type HomeFlag struct {
	Home string `long:"home" description:"Path to the node home directory"`
}

// HomeDir resolves the node home, defaulting to ~/.crucible.
func (f HomeFlag) HomeDir() (string, error) {
	if f.Home != "" {
		return f.Home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".crucible"), nil
}
