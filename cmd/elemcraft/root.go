package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elemcraft/elemcraft/internal/infrastructure/system"
)

// globalOptions holds persistent flags shared by every command.
type globalOptions struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	noColor bool
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "elemcraft",
		Short: "Combine elements to discover new ones",
		Long: `Elemcraft is an elemental crafting game. Start from Water, Fire, Earth and
Air and combine pairs to discover new elements. Pairs without a known recipe
produce a freshly generated element, which is remembered from then on.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
			opts.initConfig()
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.elemcraft/config.yaml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	pf.String("backend", "", "storage backend: file, sqlite, memory")
	pf.String("storage-path", "", "storage directory (file) or database file (sqlite)")
	pf.String("storage-key", "", "save slot key")
	pf.Int64("seed", 0, "random seed for element generation (0 uses the clock)")
	pf.Bool("reveal", false, "discover every built-in recipe result on a fresh start")

	_ = opts.v.BindPFlag("storage.backend", pf.Lookup("backend"))
	_ = opts.v.BindPFlag("storage.path", pf.Lookup("storage-path"))
	_ = opts.v.BindPFlag("storage.key", pf.Lookup("storage-key"))
	_ = opts.v.BindPFlag("generator.seed", pf.Lookup("seed"))
	_ = opts.v.BindPFlag("game.reveal_seed_results", pf.Lookup("reveal"))

	cmd.AddCommand(
		newCombineCmd(opts),
		newPlaceCmd(opts),
		newListCmd(opts),
		newShowCmd(opts),
		newRecipesCmd(opts),
		newResetCmd(opts),
		newExportCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig wires environment variables into viper. ELEMCRAFT_STORAGE_BACKEND
// overrides storage.backend, and so on.
func (o *globalOptions) initConfig() {
	o.v.SetEnvPrefix("ELEMCRAFT")
	o.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	o.v.AutomaticEnv()
}

// configPath returns the config file to read.
func (o *globalOptions) configPath() string {
	if o.cfgFile != "" {
		return o.cfgFile
	}
	if env := os.Getenv("ELEMCRAFT_CONFIG"); env != "" {
		return env
	}
	return filepath.Join(system.DefaultDir(), "config.yaml")
}

// loadConfig reads the config file and applies flag and environment
// overrides on top of it.
func (o *globalOptions) loadConfig() (*system.Config, error) {
	path := o.configPath()
	cfg, err := system.NewConfigLoader().Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded config", "file", path)

	if o.v.IsSet("storage.backend") {
		cfg.Storage.Backend = system.StorageBackend(o.v.GetString("storage.backend"))
	}
	if o.v.IsSet("storage.path") {
		cfg.Storage.Path = o.v.GetString("storage.path")
	}
	if o.v.IsSet("storage.key") {
		cfg.Storage.Key = o.v.GetString("storage.key")
	}
	if o.v.IsSet("generator.seed") {
		cfg.Generator.Seed = o.v.GetInt64("generator.seed")
	}
	if o.v.IsSet("game.reveal_seed_results") {
		cfg.Game.RevealSeedResults = o.v.GetBool("game.reveal_seed_results")
	}

	return cfg, cfg.Validate()
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
