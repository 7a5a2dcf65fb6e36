package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/crosscorrelate/internal"
)

var logger = internal.GetLogger("crosscorrelate_cmd")

const configKey = "config"

func Main(args []string) error {
	return run(os.Stdout, args)
}

func run(out io.Writer, args []string) error {
	app := newApp(out)
	args, err := reorderOptions(app, args)
	if err != nil {
		return err
	}
	return app.Run(args)
}

func newApp(out io.Writer) *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print version only",
	}
	return &cli.App{
		Name:                 "crosscorrelate",
		Usage:                "Fingerprint files by the checksum frequencies of every block subset.",
		Version:              internal.Version(),
		Copyright:            "Apache License 2.0",
		HideHelpCommand:      true,
		EnableBashCompletion: true,
		Writer:               out,
		Flags:                globalFlags(),
		Before:               setup,
		Commands: []*cli.Command{
			cmdFingerprint(),
			cmdHashes(),
			cmdEntropy(),
			cmdChunks(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "TOML file with default settings",
			EnvVars: []string{"CROSSCORRELATE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level: trace/debug/info/warn/error",
			EnvVars: []string{"CROSSCORRELATE_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "write logs to this file, rotated daily; bare names go to the default log dir",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors in log output",
		},
	}
}

// setup loads the configuration and applies the logging settings before any
// command runs.
func setup(c *cli.Context) error {
	cfg, err := internal.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.Bool("no-color") {
		cfg.NoColor = true
	}

	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	internal.SetLogLevel(lvl)
	if cfg.NoColor {
		internal.DisableLogColor()
	}
	if cfg.LogFile != "" {
		name := cfg.LogFile
		if !strings.ContainsRune(name, os.PathSeparator) {
			dir := internal.GetDefaultLogDir()
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			name = filepath.Join(dir, name)
		}
		if err := internal.SetOutFile(name); err != nil {
			return err
		}
	}
	internal.SetLogID("[" + uuid.NewString()[:8] + "] ")

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[configKey] = cfg
	logger.Debugf("effective config: %+v", *cfg)
	return nil
}

func configFrom(c *cli.Context) *internal.Config {
	if cfg, ok := c.App.Metadata[configKey].(*internal.Config); ok {
		return cfg
	}
	return internal.DefaultConfig()
}

// reorderOptions moves global flags in front of the command name so they may
// be given anywhere on the command line.
func reorderOptions(app *cli.App, args []string) ([]string, error) {
	var newArgs = []string{args[0]}
	var others []string
	globalFlags := append(app.Flags, cli.VersionFlag)
	for i := 1; i < len(args); i++ {
		option := args[i]
		if ok, hasValue := isFlag(globalFlags, option); ok {
			newArgs = append(newArgs, option)
			if hasValue {
				i++
				if i >= len(args) {
					return nil, fmt.Errorf("option %s requires value", option)
				}
				newArgs = append(newArgs, args[i])
			}
		} else {
			others = append(others, option)
		}
	}
	// no command
	if len(others) == 0 {
		return newArgs, nil
	}
	cmdName := others[0]
	var cmd *cli.Command
	for _, c := range app.Commands {
		if c.Name == cmdName || slices.Contains(c.Aliases, cmdName) {
			cmd = c
			break
		}
	}
	if cmd == nil {
		// can't recognize the command, skip it
		return append(newArgs, others...), nil
	}

	newArgs = append(newArgs, cmdName)
	args, others = others[1:], nil
	// -h is valid for all the commands
	cmdFlags := append(cmd.Flags, cli.HelpFlag)
	for i := 0; i < len(args); i++ {
		option := args[i]
		if ok, hasValue := isFlag(cmdFlags, option); ok {
			newArgs = append(newArgs, option)
			if hasValue && len(args[i+1:]) > 0 {
				i++
				newArgs = append(newArgs, args[i])
			}
		} else {
			others = append(others, option)
		}
	}
	return append(newArgs, others...), nil
}

func isFlag(flags []cli.Flag, option string) (bool, bool) {
	if !strings.HasPrefix(option, "-") {
		return false, false
	}
	// --V or -v work the same
	option = strings.TrimLeft(option, "-")
	for _, flag := range flags {
		_, isBool := flag.(*cli.BoolFlag)
		for _, name := range flag.Names() {
			if option == name || strings.HasPrefix(option, name+"=") {
				return true, !isBool && !strings.Contains(option, "=")
			}
		}
	}
	return false, false
}
