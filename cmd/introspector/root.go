package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/reflectkit/introspector/caller"
	"github.com/reflectkit/introspector/fieldmap"
	"github.com/reflectkit/introspector/internal/config"
	"github.com/reflectkit/introspector/logging"
)

type app struct {
	cfg     config.Config
	cfgPath string
	envFile string

	log      logging.Logger
	resolver *caller.Resolver
	reader   *fieldmap.Reader
}

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: config.DefaultConfig()}

	root := &cobra.Command{
		Use:               "introspector",
		Short:             "Inspect callers and struct fields of a running Go program",
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.introspector/config.toml)")
	pf.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file with INTROSPECTOR_* variables")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&a.cfg.Strategy, "strategy", a.cfg.Strategy, "caller strategy: auto, runtime or stack")
	pf.IntVar(&a.cfg.MaxDepth, "max-depth", a.cfg.MaxDepth, "maximum nesting of arrays and structs in a field map")
	pf.StringVar(&a.cfg.Categories, "categories", a.cfg.Categories, "expanded categories: all, none or a list of array,composite,pointer,unexported,embedded")
	pf.IntVar(&a.cfg.PlanCacheSize, "plan-cache-size", a.cfg.PlanCacheSize, "number of struct types with a cached field plan")

	root.AddCommand(
		newCalibrationCmd(a),
		newTraceCmd(a),
		newDumpCmd(a),
	)

	return root
}

// setup resolves the configuration of the command about to run and builds
// the resolver and reader from it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := config.LoadDotEnv(a.envFile); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
	}

	if cfgFile != "" && config.FileExists(cfgFile) {
		fc, err := config.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		config.ApplyFileConfig(&a.cfg, fc, changed)
	} else if a.cfgPath != "" {
		return fmt.Errorf("config file %s not found", a.cfgPath)
	}

	// INTROSPECTOR_* override the file but not explicit flags
	if err := config.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = logging.NewZerolog(cmd.ErrOrStderr(), level)
	a.log.Debug("configuration", logging.Any("config", a.cfg))

	strategies, _ := caller.StrategiesByName(a.cfg.Strategy)
	a.resolver = caller.New(caller.WithStrategies(strategies...), caller.WithLogger(a.log))

	opts, err := a.cfg.ReaderOptions()
	if err != nil {
		return err
	}
	a.reader, err = fieldmap.NewReader(append(opts, fieldmap.WithLogger(a.log))...)
	if err != nil {
		return fmt.Errorf("create reader: %w", err)
	}

	return nil
}
