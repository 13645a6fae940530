// Package output renders run results: the console summary, the optional
// JSON report, the live progress line and the raw CSV export.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jaguzmanb1/meliload/internal/metrics"
)

// Report bundles everything the final output carries.
type Report struct {
	metrics.Summary
	Warnings []metrics.StatusBucket `json:"warnings,omitempty"`
}

// PrintReport writes the human-readable performance summary. Color is used
// only when w is an interactive terminal.
func PrintReport(w io.Writer, rep Report) {
	header := color.New(color.FgCyan, color.Bold)
	warn := color.New(color.FgYellow)
	if !IsTerminal(w) {
		header.DisableColor()
		warn.DisableColor()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, header.Sprint("==== Performance summary ===="))
	fmt.Fprintf(w, "Requests : %d\n", rep.Count)
	fmt.Fprintf(w, "Mean     : %.2f ms\n", rep.MeanMs)
	fmt.Fprintf(w, "Median   : %.2f ms\n", rep.MedianMs)
	fmt.Fprintf(w, "P95      : %.2f ms\n", rep.P95Ms)
	fmt.Fprintf(w, "Min | Max: %.2f ms | %.2f ms\n", rep.MinMs, rep.MaxMs)
	if len(rep.Warnings) > 0 {
		fmt.Fprintln(w, warn.Sprintf("Warnings : %d (%s)", totalWarnings(rep.Warnings), bucketList(rep.Warnings)))
	}
	fmt.Fprintln(w, header.Sprint("=============================="))
	fmt.Fprintln(w)
}

// PrintJSONReport writes the machine-readable summary.
func PrintJSONReport(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func totalWarnings(buckets []metrics.StatusBucket) int64 {
	var total int64
	for _, b := range buckets {
		total += b.Count
	}
	return total
}

func bucketList(buckets []metrics.StatusBucket) string {
	parts := make([]string, len(buckets))
	for i, b := range buckets {
		parts[i] = fmt.Sprintf("%d: %d", b.Status, b.Count)
	}
	return strings.Join(parts, ", ")
}
