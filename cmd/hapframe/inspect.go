package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/woozymasta/hap"
)

func inspectCmd() *cli.Command {
	var inPath string

	return &cli.Command{
		Name:  "inspect",
		Usage: "Print the section layout of a Hap frame as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"in"}, Usage: "input frame path", Required: true, Destination: &inPath},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			frame, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("read frame: %w", err)
			}

			info, err := hap.Inspect(frame)
			if err != nil {
				return fmt.Errorf("inspect %q: %w", inPath, err)
			}

			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, string(out))
			return err
		},
	}
}
