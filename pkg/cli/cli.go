// Package cli implements the idreg command-line interface, a thin surface
// over pkg/registry bound to a file-backed store.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/staylorx/id-registry/pkg/config"
	"github.com/staylorx/id-registry/pkg/logging"
	"github.com/staylorx/id-registry/pkg/registry"
	"github.com/staylorx/id-registry/pkg/store"
	"github.com/staylorx/id-registry/pkg/validation"
)

// rootFlags holds the persistent flag values shared by every command.
type rootFlags struct {
	configPath string
	storePath  string
	cache      bool
	logLevel   string
	logFormat  string
}

// app is the wired-up registry a command runs against.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	reg    *registry.Registry
}

// NewRootCmd builds the idreg command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "idreg",
		Short: "Manage globally unique typed identifiers",
		Long: `idreg registers, checks, and generates typed identifiers backed by a
JSON store file. Identifiers are written as type:code, e.g. isbn:123.

A whole set of identifiers is registered in one call and rejected on the
first duplicate or validation failure.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&flags.storePath, "store", "s", "", "JSON store file (default \"idreg.json\")")
	pf.BoolVar(&flags.cache, "cache", false, "wrap the store in the in-memory cache")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(
		newRegisterCmd(flags),
		newUnregisterCmd(flags),
		newCheckCmd(flags),
		newListCmd(flags),
		newGenerateCmd(flags),
		newClearCmd(flags),
	)
	return root
}

// newApp loads configuration, builds the logger, store, and registry, and
// wires configured validators. Flags override config-file values.
func newApp(flags *rootFlags) (*app, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return nil, err
		}
	}
	if flags.storePath != "" {
		cfg.StorePath = flags.storePath
	}
	if flags.cache {
		cfg.Cache = true
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})

	var backend store.Store = store.NewFileStore(cfg.StorePath, store.WithLogger(logger))
	if cfg.Cache {
		backend = store.NewCachedStore(backend)
	}

	reg := registry.New(backend)
	for idType, name := range cfg.Validators {
		fn, ok := validation.ByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown validator %q for type %q", name, idType)
		}
		reg.SetValidatorFunc(idType, fn)
	}

	return &app{cfg: cfg, logger: logger, reg: reg}, nil
}
