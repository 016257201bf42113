package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"translationhub/internal/repository/postgres"
	"translationhub/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var count, chunk int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed locales, tags, fake translations and the admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			users, err := a.authService()
			if err != nil {
				return err
			}
			seeder := seed.New(seed.Config{
				Repos:     a.store.Repositories(),
				Bulk:      postgres.NewBulkTranslationWriter(a.db),
				Users:     users,
				ChunkSize: chunk,
			}, a.logger)

			summary, err := seeder.Run(cmd.Context(), count, seed.AdminUser{
				Email:    a.cfg.Admin.Email,
				Password: a.cfg.Admin.Password,
				Name:     a.cfg.Admin.Name,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d locales, %d tags, %d translations (admin created: %t)\n",
				summary.Locales, summary.Tags, summary.Translations, summary.AdminCreated)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 100000, "number of fake translations")
	cmd.Flags().IntVar(&chunk, "chunk", seed.DefaultChunkSize, "rows per bulk insert")
	return cmd
}
