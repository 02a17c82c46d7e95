package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/model"
)

// envPrefix maps configuration keys to SENTSPLIT_* variables, so that
// SENTSPLIT_DATA serves both the CLI and the library default.
const envPrefix = "SENTSPLIT"

// app carries state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.Default()}

	root := &cobra.Command{
		Use:   "sentsplit",
		Short: "Sentence splitter for Ancient Greek and Latin",
		Long: `Split classical Greek and Latin text into sentences using language-specific
punctuation and a pretrained Punkt model of abbreviations, collocations and
sentence starters.

Models are read from <data>/<language>/<artifact>. Settings come from flags,
SENTSPLIT_* environment variables or a config file, in that order.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML, TOML or JSON)")
	pf.String("data", "", "model resource root (default $SENTSPLIT_DATA or ~/sentsplit_data)")
	pf.StringP("lang", "l", "", "language: "+languageList())
	pf.String("realign", "all", "realignment policy: none, quotes, brackets, all")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	for _, name := range []string{"data", "lang", "realign", "log-level", "log-format"} {
		_ = a.v.BindPFlag(name, pf.Lookup(name))
	}

	root.AddCommand(
		newSplitCmd(a),
		newCheckCmd(a),
		newConvertCmd(a),
		newLanguagesCmd(a),
		newBenchCmd(a),
	)
	return root
}

// init reads the environment and config file and builds the logger.
func (a *app) init(stderr io.Writer) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	logger, err := newLogger(stderr, a.v.GetString("log-level"), a.v.GetString("log-format"))
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded", "config", a.v.ConfigFileUsed(), "data", a.dataRoot())
	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// dataRoot returns the configured resource root or the library default.
func (a *app) dataRoot() string {
	if root := a.v.GetString("data"); root != "" {
		return root
	}
	return model.DefaultRoot()
}

// language returns the --lang setting, which every splitting command needs.
func (a *app) language() (string, error) {
	lang := a.v.GetString("lang")
	if lang == "" {
		return "", fmt.Errorf("no language given; use --lang (%s)", languageList())
	}
	return lang, nil
}

func (a *app) realign() (sentsplit.RealignPolicy, error) {
	return sentsplit.ParseRealignPolicy(a.v.GetString("realign"))
}

// resolver builds a Resolver from the merged configuration.
func (a *app) resolver() (*sentsplit.Resolver, error) {
	lang, err := a.language()
	if err != nil {
		return nil, err
	}
	policy, err := a.realign()
	if err != nil {
		return nil, err
	}

	return sentsplit.New(lang,
		sentsplit.WithResourceRoot(a.dataRoot()),
		sentsplit.WithRealign(policy),
		sentsplit.WithLogger(a.logger),
	)
}
