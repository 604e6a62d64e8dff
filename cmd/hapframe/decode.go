package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/woozymasta/hap"
	"github.com/woozymasta/hap/internal/ddsfile"
)

func decodeCmd() *cli.Command {
	var (
		inPath  string
		outPath string
		width   int
		height  int
		workers int
	)

	return &cli.Command{
		Name:  "decode",
		Usage: "Decode a Hap frame into a single-level DDS file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"in"}, Usage: "input frame path", Required: true, Destination: &inPath},
			&cli.StringFlag{Name: "output", Aliases: []string{"out"}, Usage: "output .dds path", Required: true, Destination: &outPath},
			&cli.IntFlag{Name: "width", Usage: "texture width in pixels", Required: true, Destination: &width},
			&cli.IntFlag{Name: "height", Usage: "texture height in pixels", Required: true, Destination: &height},
			&cli.IntFlag{
				Name:        "workers",
				Usage:       "chunk decode goroutines (0 = GOMAXPROCS)",
				Sources:     cli.EnvVars("HAP_WORKERS"),
				Destination: &workers,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			frame, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("read frame: %w", err)
			}

			format, err := hap.PeekTextureFormat(frame)
			if err != nil {
				return fmt.Errorf("decode %q: %w", inPath, err)
			}
			size := format.ExpectedLength(width, height)
			if width <= 0 || height <= 0 || size <= 0 {
				return fmt.Errorf("%w: %dx%d", hap.ErrBadArguments, width, height)
			}

			dst := make([]byte, size)
			n, format, err := hap.Decode(dst, frame, hap.Parallel(workers))
			if err != nil {
				return fmt.Errorf("decode %q: %w", inPath, err)
			}
			if n != size {
				return fmt.Errorf("%w: frame holds %d bytes, %s %dx%d needs %d", ddsfile.ErrDataSizeMismatch, n, format, width, height, size)
			}

			tex := &ddsfile.Texture{Format: format.BCn(), Width: width, Height: height, Data: dst}
			if err := ddsfile.WriteFile(outPath, tex); err != nil {
				return err
			}

			slog.Info("decoded frame", "output", outPath, "format", format, "bytes", n)
			return nil
		},
	}
}
