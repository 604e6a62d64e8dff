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

func encodeCmd() *cli.Command {
	var (
		inPath     string
		outPath    string
		compressor string
		ycocg      bool
	)

	return &cli.Command{
		Name:  "encode",
		Usage: "Encode the largest mip of a DXT1/DXT5 DDS or EDDS file as a Hap frame",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"in"}, Usage: "input .dds/.edds path", Required: true, Destination: &inPath},
			&cli.StringFlag{Name: "output", Aliases: []string{"out"}, Usage: "output frame path", Required: true, Destination: &outPath},
			&cli.StringFlag{
				Name:        "compressor",
				Usage:       "second-stage compressor: snappy|none",
				Value:       hap.CompressorSnappy.String(),
				Sources:     cli.EnvVars("HAP_COMPRESSOR"),
				Destination: &compressor,
			},
			&cli.BoolFlag{Name: "ycocg", Usage: "tag DXT5 payloads as scaled YCoCg (Hap Q)", Destination: &ycocg},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			comp, err := hap.ParseCompressor(compressor)
			if err != nil {
				return err
			}

			tex, err := ddsfile.ReadFile(inPath)
			if err != nil {
				return err
			}
			format := hap.TextureFormatFromBCn(tex.Format, ycocg)
			if format == hap.TextureFormatUnknown {
				return fmt.Errorf("%w: %s", ddsfile.ErrUnsupportedFormat, tex.Format)
			}
			slog.Debug("read texture", "path", inPath, "format", format, "width", tex.Width, "height", tex.Height, "bytes", len(tex.Data))

			frame, err := hap.AppendEncode(nil, tex.Data, format, comp)
			if err != nil {
				return fmt.Errorf("encode %q: %w", inPath, err)
			}
			if err := os.WriteFile(outPath, frame, 0o644); err != nil {
				return fmt.Errorf("write frame: %w", err)
			}

			slog.Info("encoded frame", "output", outPath, "format", format, "raw", len(tex.Data), "encoded", len(frame))
			return nil
		},
	}
}
