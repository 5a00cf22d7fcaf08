package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/pomo/internal/cliconfig"
	"github.com/bft-labs/pomo/pkg/log"
)

const helpDescription = `
A pomodoro timer for the terminal.

Work in 25 minute pomodoros separated by short breaks; every fourth break is
a long one. Each interval starts when you press enter. Completed pomodoros are
recorded per day so a restarted session picks up today's count.

Configure via file ($HOME/.pomo/config.toml, or .yaml), POMO_* environment
variables, or flags.
`

var exampleUsage = strings.TrimSpace(`
  pomo
  pomo --pomodoro 50m --short-break 10m --long-break 30m
  pomo --record-format sqlite --record-dir ~/notes
  pomo status --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// options are the values bound to command line flags.
type options struct {
	cfg     cliconfig.Config
	cfgPath string
	watch   bool
}

func main() {
	opts := &options{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "pomo",
		Short:         "A pomodoro timer for the terminal",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimer(cmd, opts)
		},
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Start a pomodoro session (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimer(cmd, opts)
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Print today's completed pomodoros",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, opts)
		},
	}
	status.Flags().BoolVar(&opts.watch, "watch", false, "keep printing the count whenever the record changes")

	cfg := &opts.cfg
	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgPath, "config", "", "path to config file (default: $HOME/.pomo/config.toml)")
	flags.DurationVar(&cfg.Pomodoro, "pomodoro", cfg.Pomodoro, "length of a pomodoro")
	flags.DurationVar(&cfg.ShortBreak, "short-break", cfg.ShortBreak, "length of a short break")
	flags.DurationVar(&cfg.LongBreak, "long-break", cfg.LongBreak, "length of a long break")
	flags.StringVar(&cfg.RecordDir, "record-dir", cfg.RecordDir, "directory holding the record file and log")
	flags.StringVar(&cfg.RecordName, "record-name", cfg.RecordName, "record file name without extension")
	flags.StringVar(&cfg.RecordFormat, "record-format", cfg.RecordFormat, "record format: csv, sqlite or none")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flags.BoolVar(&cfg.Fresh, "fresh", cfg.Fresh, "start counting from zero instead of today's record")

	root.AddCommand(run, status)

	if err := root.Execute(); err != nil {
		zl, _ := log.NewConsole(os.Stderr, "error")
		zl.Error().Err(err).Msg("pomo")
		os.Exit(1)
	}
}

// loadConfig applies the config file, then POMO_* environment variables, on
// top of the flag values. Flags set on the command line always win.
func loadConfig(cmd *cobra.Command, opts *options) (cliconfig.Config, error) {
	cfg := opts.cfg

	cfgFile := opts.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	} else if opts.cfgPath != "" {
		return cfg, fmt.Errorf("config file %s not found", opts.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
