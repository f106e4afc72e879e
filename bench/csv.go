package bench

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes summaries as a CSV table: one row per algorithm, columns
// search_name, mean_elapsed_seconds, ci95_elapsed, mean_expanded,
// ci95_expanded — the Go-side equivalent of the reference harness's
// save_results DataFrame dump.
func WriteCSV(w io.Writer, summaries []Summary) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"search_name", "mean_elapsed_seconds", "ci95_elapsed", "mean_expanded", "ci95_expanded"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("bench: writing CSV header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			s.SearchName,
			fmt.Sprintf("%.6f", s.MeanElapsedSeconds),
			fmt.Sprintf("%.6f", s.CI95Elapsed),
			fmt.Sprintf("%.3f", s.MeanExpanded),
			fmt.Sprintf("%.3f", s.CI95Expanded),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("bench: writing CSV row for %s: %w", s.SearchName, err)
		}
	}

	writer.Flush()

	return writer.Error()
}
