package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/crosscorrelate/internal"
	"github.com/zhengshuai-xiao/crosscorrelate/xlator/correlate"
)

type hashRow struct {
	Checksum uint16   `json:"checksum"`
	Count    uint64   `json:"count"`
	Subsets  []string `json:"subsets"`
}

// maxShownSubsets bounds the subsets printed per table row.
const maxShownSubsets = 4

func cmdHashes() *cli.Command {
	return &cli.Command{
		Name:      "hashes",
		Usage:     "List subset checksums by descending frequency",
		ArgsUsage: "FILE",
		Flags: append(sourceFlags(),
			&cli.IntFlag{
				Name:  "top",
				Value: internal.DefaultTop,
				Usage: "number of rows to print (0 = all)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the listing as JSON",
			},
		),
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
			listing := fp.Table.Top(cfg.Top)

			if c.Bool("json") {
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(toHashRows(listing))
			}
			rows := make([][]string, 0, len(listing))
			for i, hf := range listing {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					fmt.Sprintf("0x%04x", hf.Checksum),
					strconv.FormatUint(hf.Count, 10),
					formatSubsets(hf.Subsets),
				})
			}
			fmt.Fprintln(c.App.Writer, renderTable(
				[]string{"#", "Checksum", "Count", "Subsets"},
				rows,
				text.AlignRight, text.AlignLeft, text.AlignRight,
			))
			return nil
		},
	}
}

func toHashRows(listing []correlate.HashFrequency) []hashRow {
	rows := make([]hashRow, len(listing))
	for i, hf := range listing {
		subsets := make([]string, len(hf.Subsets))
		for j, s := range hf.Subsets {
			subsets[j] = internal.PrintableOrHex(s)
		}
		rows[i] = hashRow{Checksum: hf.Checksum, Count: hf.Count, Subsets: subsets}
	}
	return rows
}

func formatSubsets(subsets [][]byte) string {
	shown := subsets
	if len(shown) > maxShownSubsets {
		shown = shown[:maxShownSubsets]
	}
	parts := make([]string, len(shown))
	for i, s := range shown {
		parts[i] = strconv.Quote(internal.PrintableOrHex(s))
	}
	out := strings.Join(parts, ", ")
	if extra := len(subsets) - len(shown); extra > 0 {
		out += fmt.Sprintf(" (+%d more)", extra)
	}
	return out
}
