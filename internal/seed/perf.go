package seed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"translationhub/internal/domain"
)

// PerfBudget holds the latency limits checked by RunPerf.
type PerfBudget struct {
	MaxIndex  time.Duration
	MaxExport time.Duration
}

// PerfTarget is the service surface exercised by RunPerf.
type PerfTarget struct {
	Translations domain.TranslationService
	Export       domain.ExportService
}

// PerfMeasurement is one timed operation.
type PerfMeasurement struct {
	Name    string
	Elapsed time.Duration
	// Budget is zero for operations that are reported but not checked.
	Budget time.Duration
}

// Passed reports whether the measurement stayed under its budget.
func (m PerfMeasurement) Passed() bool {
	return m.Budget == 0 || m.Elapsed < m.Budget
}

// PerfReport is the outcome of RunPerf.
type PerfReport struct {
	Count        int
	Inserted     int
	Measurements []PerfMeasurement
}

// Passed reports whether every measurement stayed under its budget.
func (r *PerfReport) Passed() bool {
	for _, m := range r.Measurements {
		if !m.Passed() {
			return false
		}
	}
	return true
}

// Render writes the report as a table.
func (r *PerfReport) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Operation", "Elapsed (ms)", "Budget (ms)", "Result"})
	for _, m := range r.Measurements {
		budget, result := "-", "-"
		if m.Budget > 0 {
			budget = fmt.Sprintf("%d", m.Budget.Milliseconds())
			result = "PASS"
			if !m.Passed() {
				result = "FAIL"
			}
		}
		t.AppendRow(table.Row{m.Name, fmt.Sprintf("%.2f", float64(m.Elapsed.Microseconds())/1000), budget, result})
	}
	t.AppendFooter(table.Row{"Translations", r.Inserted, "", ""})
	t.Render()
}

// RunPerf seeds count translations in "en" tagged "web", then times the first index page
// and the tagged export against budget.
func (s *Seeder) RunPerf(ctx context.Context, target PerfTarget, count int, budget PerfBudget) (*PerfReport, error) {
	locale, err := s.repos.Locales.Ensure(ctx, "en", "English")
	if err != nil {
		return nil, fmt.Errorf("ensure locale: %w", err)
	}
	tagIDs, err := s.SeedTags(ctx, "web")
	if err != nil {
		return nil, err
	}

	report := &PerfReport{Count: count}
	start := time.Now()
	report.Inserted, err = s.SeedTranslations(ctx, TranslationPlan{
		Count:     count,
		LocaleIDs: []int64{locale.ID},
		TagIDs:    tagIDs,
		MinTags:   1,
		MaxTags:   1,
	})
	if err != nil {
		return nil, err
	}
	report.Measurements = append(report.Measurements, PerfMeasurement{
		Name:    fmt.Sprintf("seed %d translations", count),
		Elapsed: time.Since(start),
	})

	start = time.Now()
	if _, err := target.Translations.List(ctx, 1); err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	report.Measurements = append(report.Measurements, PerfMeasurement{
		Name: "index page 1", Elapsed: time.Since(start), Budget: budget.MaxIndex,
	})

	start = time.Now()
	if _, err := target.Export.Export(ctx, "en", "web"); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	report.Measurements = append(report.Measurements, PerfMeasurement{
		Name: "export en?tag=web", Elapsed: time.Since(start), Budget: budget.MaxExport,
	})
	return report, nil
}
