package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/crosscorrelate/xlator/correlate"
)

func cmdEntropy() *cli.Command {
	return &cli.Command{
		Name:      "entropy",
		Usage:     "Shannon entropy of the checksum distribution of one file, or of two for comparison",
		ArgsUsage: "FIRST [SECOND]",
		Flags:     sourceFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 || c.NArg() > 2 {
				return fmt.Errorf("expected FIRST [SECOND], got %d arguments", c.NArg())
			}
			cfg, err := sourceConfig(c)
			if err != nil {
				return err
			}
			first, err := fingerprintFile(c.Args().Get(0), cfg, false)
			if err != nil {
				return err
			}
			out := c.App.Writer
			if c.NArg() == 1 {
				fmt.Fprintf(out, "%s: %.6f\n", first.Name, first.Entropy())
				return nil
			}

			second, err := fingerprintFile(c.Args().Get(1), cfg, false)
			if err != nil {
				return err
			}
			e1, e2 := correlate.EntropyPair(first, second)
			fmt.Fprintf(out, "%s: %.6f\n", first.Name, e1)
			fmt.Fprintf(out, "%s: %.6f\n", second.Name, e2)
			fmt.Fprintf(out, "delta: %.6f\n", e2-e1)
			return nil
		},
	}
}
