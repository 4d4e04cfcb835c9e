package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"luxora-booking/internal/infra/db"
	"luxora-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

var migrationsDir string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply the Luxora database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&migrationsDir, "dir", "d", "migrations", "directory holding the *.sql migrations")

	root.AddCommand(upCmd(), statusCmd(), atlasCmd())
	return root
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadDBConfig()
			if err != nil {
				return err
			}
			pool, cleanup, err := db.Connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			applied, err := db.Migrate(cmd.Context(), pool, os.DirFS(migrationsDir))
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				cmd.Println("database is up to date")
				return nil
			}
			for _, v := range applied {
				cmd.Println("applied", v)
			}
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadDBConfig()
			if err != nil {
				return err
			}
			pool, cleanup, err := db.Connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			statuses, err := db.Status(cmd.Context(), pool, os.DirFS(migrationsDir))
			if err != nil {
				return err
			}
			for _, s := range statuses {
				mark := "pending"
				if s.Applied {
					mark = "applied"
				}
				cmd.Printf("%-8s %s\n", mark, s.Version)
			}
			return nil
		},
	}
}

// atlasCmd delegates to the atlas CLI, which must be on PATH and expects an
// atlas.sum next to the migrations (run `atlas migrate hash` first).
func atlasCmd() *cobra.Command {
	var atlasBin string
	cmd := &cobra.Command{
		Use:   "atlas",
		Short: "Apply migrations with the atlas CLI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadDBConfig()
			if err != nil {
				return err
			}
			client, err := atlasexec.NewClient(".", atlasBin)
			if err != nil {
				return fmt.Errorf("failed to init atlas client: %w", err)
			}
			res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
				URL:    cfg.BuildDSN(),
				DirURL: "file://" + migrationsDir,
			})
			if err != nil {
				return fmt.Errorf("atlas migrate apply failed: %w", err)
			}
			cmd.Printf("applied %d migrations, now at version %q\n", len(res.Applied), res.Target)
			return nil
		},
	}
	cmd.Flags().StringVar(&atlasBin, "atlas-bin", "atlas", "path to the atlas binary")
	return cmd
}
