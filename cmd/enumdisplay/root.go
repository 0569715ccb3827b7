package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/display"
	"github.com/xy-planning-network/display/catalog"
	"github.com/xy-planning-network/display/internal/config"
)

// An app holds what every subcommand shares once the root command has run.
type app struct {
	envFile     string
	catalogPath string
	registered  bool

	cfg     config.Config
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := new(app)
	cmd := &cobra.Command{
		Use:           "enumdisplay",
		Short:         "Inspect, serve and persist display metadata of enumerations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "file of environment variables to load")
	flags.StringVar(&a.catalogPath, "catalog", "", "catalog file to read enumerations from (default $CATALOG_PATH)")
	flags.BoolVar(&a.registered, "registered", false, "include the enumerations built into this binary")

	cmd.AddCommand(newListCmd(a), newServeCmd(a), newSyncCmd(a), newDumpCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a.cfg = cfg
	a.logger = cfg.Logger()
	display.SetLogger(a.logger)

	if a.catalogPath == "" {
		a.catalogPath = cfg.CatalogPath
	}

	c, err := catalog.LoadFile(a.catalogPath)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("catalog"):
		a.logger.Debug("no catalog file found", "path", a.catalogPath)
		c, err = catalog.New(catalog.File{})
		if err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("loading catalog %s: %w", a.catalogPath, err)
	}
	a.catalog = c

	return nil
}

// source is every enumeration the command works with:
// those in the catalog file and, with --registered, those built into the binary.
func (a *app) source() display.Catalog {
	if !a.registered {
		return a.catalog
	}

	return merged{a.catalog, display.Registered()}
}

// enumerations resolves names against the source, in order.
// No names resolves every enumeration in the source.
func (a *app) enumerations(names []string) ([]display.Enumeration, error) {
	src := a.source()
	if len(names) == 0 {
		names = src.Names()
	}

	es := make([]display.Enumeration, len(names))
	for i, name := range names {
		e, err := src.Lookup(name)
		if err != nil {
			return nil, err
		}
		es[i] = e
	}

	return es, nil
}
