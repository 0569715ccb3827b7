package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/display/catalog"
	"github.com/xy-planning-network/display/postgres"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync [enum...]",
		Short: "Write enumerations to the enum_displays table",
		RunE: func(cmd *cobra.Command, args []string) error {
			es, err := a.enumerations(args)
			if err != nil {
				return err
			}

			db, err := a.connect()
			if err != nil {
				return err
			}

			if err := postgres.Sync(cmd.Context(), db, es...); err != nil {
				return err
			}

			for _, e := range es {
				a.logger.Info("synced enumeration", "enum", e.EnumName(), "members", e.Len())
			}

			return nil
		},
	}
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump enum...",
		Short: "Print enumerations read from the enum_displays table as a catalog file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.connect()
			if err != nil {
				return err
			}

			var f catalog.File
			for _, name := range args {
				rows, err := postgres.Load(cmd.Context(), db, name)
				if err != nil {
					return err
				}

				f.Enums = append(f.Enums, postgres.Spec(name, rows))
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(f); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}

func (a *app) connect() (*gorm.DB, error) {
	if a.cfg.Postgres == nil {
		return nil, fmt.Errorf("no database configured: set DATABASE_URL or DATABASE_HOST")
	}

	return postgres.Connect(a.cfg.Postgres, postgres.Migrations)
}
