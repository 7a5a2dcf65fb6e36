package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v2"
)

type fingerprintSummary struct {
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	ChunkSize   int     `json:"chunk_size"`
	Blocks      int     `json:"blocks"`
	TotalSlices uint64  `json:"total_slices"`
	Distinct    int     `json:"distinct_checksums"`
	Collisions  int     `json:"collisions"`
	Dropped     uint64  `json:"dropped_subsets"`
	Entropy     float64 `json:"entropy"`
}

func cmdFingerprint() *cli.Command {
	return &cli.Command{
		Name:      "fingerprint",
		Usage:     "Summarize the subset checksum statistics of a file",
		ArgsUsage: "FILE",
		Flags: append(sourceFlags(), &cli.BoolFlag{
			Name:  "json",
			Usage: "print the summary as JSON",
		}),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one FILE, got %d", c.NArg())
			}
			cfg, err := sourceConfig(c)
			if err != nil {
				return err
			}
			fp, err := fingerprintFile(c.Args().First(), cfg, false)
			if err != nil {
				return err
			}

			s := fingerprintSummary{
				Name:        fp.Name,
				Kind:        fp.Kind,
				ChunkSize:   cfg.ChunkSize,
				Blocks:      fp.Blocks(),
				TotalSlices: fp.Table.TotalSlices(),
				Distinct:    fp.Table.Distinct(),
				Collisions:  fp.Table.Collisions(),
				Dropped:     fp.Table.Dropped(),
				Entropy:     fp.Entropy(),
			}
			out := c.App.Writer
			if c.Bool("json") {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			rows := [][]string{
				{"name", s.Name},
				{"kind", s.Kind},
				{"chunk size", strconv.Itoa(s.ChunkSize)},
				{"blocks", strconv.Itoa(s.Blocks)},
				{"subsets", strconv.FormatUint(s.TotalSlices, 10)},
				{"distinct checksums", strconv.Itoa(s.Distinct)},
				{"collisions", strconv.Itoa(s.Collisions)},
				{"dropped subsets", strconv.FormatUint(s.Dropped, 10)},
				{"entropy (bits)", strconv.FormatFloat(s.Entropy, 'f', 6, 64)},
			}
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, text.AlignLeft, text.AlignRight))
			return nil
		},
	}
}
