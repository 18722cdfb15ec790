package main

import (
	"context"
	"fmt"
	"os"

	"github.com/crucible-fi/crucible/config"

	"github.com/jessevdk/go-flags"
)

type InitCmd struct {
	HomeFlag

	Force bool `short:"f" long:"force" description:"Overwrite an existing configuration"`
}

var initCmd InitCmd

func Init(_ context.Context, parser *flags.Parser) error {
	initCmd = InitCmd{}
	_, err := parser.AddCommand(
		"init",
		"Initialise a crucible node",
		"Generate the minimal configuration required for a crucible node to start",
		&initCmd,
	)
	return err
}

func (cmd *InitCmd) Execute(_ []string) error {
	home, err := cmd.HomeDir()
	if err != nil {
		return err
	}

	if _, err := os.Stat(config.FilePath(home)); err == nil && !cmd.Force {
		return fmt.Errorf("configuration already exists at %q, re-run with -f to overwrite", home)
	}

	cfg := config.NewDefaultConfig()
	if err := config.Write(home, &cfg); err != nil {
		return err
	}

	fmt.Printf("configuration generated at %s\n", config.FilePath(home))
	return nil
}
