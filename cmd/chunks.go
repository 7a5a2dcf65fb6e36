package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/crosscorrelate/internal"
)

func cmdChunks() *cli.Command {
	return &cli.Command{
		Name:      "chunks",
		Usage:     "Print every block of a file with its subsets in enumeration order",
		ArgsUsage: "FILE",
		Flags:     sourceFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one FILE, got %d", c.NArg())
			}
			cfg, err := sourceConfig(c)
			if err != nil {
				return err
			}
			fp, err := fingerprintFile(c.Args().First(), cfg, true)
			if err != nil {
				return err
			}

			out := c.App.Writer
			for i, chunk := range fp.Chunks {
				fmt.Fprintf(out, "Chunk %d: off=%d, len=%d, crc32=%08x\n",
					i+1, chunk.Block.Offset, chunk.Block.Len(), internal.CalculateCRC32(chunk.Block.Data))
				for _, h := range chunk.Hashes {
					fmt.Fprintf(out, "  [%d:%d] 0x%04x %q\n",
						h.Slice.Start, h.Slice.End, h.Checksum, internal.PrintableOrHex(h.Slice.Of(chunk.Block)))
				}
			}
			return nil
		},
	}
}
