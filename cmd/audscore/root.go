// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/audscore/config"
)

// configEnv names the config file when --config is not given. It may come
// from a .env file in the working directory.
const configEnv = "AUDSCORE_CONFIG"

// app carries what every subcommand needs once the root flags are parsed.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string
	noColor   bool

	cfg *config.Root
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "audscore",
		Short:        "Score audio files by frequency band",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML config file (default $"+configEnv+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newAnalyzeCmd(a),
		newBandsCmd(a),
		newConvertCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	if a.cfgPath == "" {
		a.cfgPath = os.Getenv(configEnv)
	}

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.log.WithField("config", a.cfgPath).Debug("configuration loaded")

	return nil
}

func newLogger(cfg config.Log, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", config.ErrInvalidConfig, err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log, nil
}
