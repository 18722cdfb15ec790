package main

import (
	"context"
	"fmt"

	"github.com/jessevdk/go-flags"
)

type VersionCmd struct {
	version string
	hash    string
}

var versionCmd VersionCmd

func Version(_ context.Context, parser *flags.Parser) error {
	versionCmd = VersionCmd{
		version: CLIVersion,
		hash:    CLIVersionHash,
	}
	_, err := parser.AddCommand("version", "Show version info", "Show version info", &versionCmd)
	return err
}

func (cmd *VersionCmd) Execute(_ []string) error {
	fmt.Printf("Crucible CLI %s (%s)\n", cmd.version, cmd.hash)
	return nil
}
