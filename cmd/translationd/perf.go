package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"translationhub/internal/repository/postgres"
	"translationhub/internal/seed"
)

func newPerfCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "perf",
		Short: "Seed a large dataset and time the index and export operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			exportCache, err := a.exportCache(cmd.Context())
			if err != nil {
				return err
			}
			seeder := seed.New(seed.Config{
				Repos: a.store.Repositories(),
				Bulk:  postgres.NewBulkTranslationWriter(a.db),
			}, a.logger)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seeding %d translations...\n", count)
			report, err := seeder.RunPerf(cmd.Context(), seed.PerfTarget{
				Translations: a.translationService(),
				Export:       a.exportService(exportCache),
			}, count, seed.PerfBudget{
				MaxIndex:  a.cfg.Perf.MaxIndex,
				MaxExport: a.cfg.Perf.MaxExport,
			})
			if err != nil {
				return err
			}
			report.Render(out)
			if !report.Passed() {
				return errors.New("performance budget exceeded")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 100000, "number of translations to seed")
	return cmd
}
