package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jaguzmanb1/meliload/internal/metrics"
	"github.com/jaguzmanb1/meliload/internal/output"
)

func sampleReport(t *testing.T) output.Report {
	t.Helper()
	s, err := metrics.Summarize([]time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	return output.Report{Summary: s}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	output.PrintReport(&buf, sampleReport(t))

	out := buf.String()
	for _, want := range []string{
		"==== Performance summary ====",
		"Requests : 3",
		"Mean     : 20.00 ms",
		"Median   : 20.00 ms",
		"P95      : 29.00 ms",
		"Min | Max: 10.00 ms | 30.00 ms",
		"==============================",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\ngot:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warnings") {
		t.Errorf("report mentions warnings with none recorded:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("report contains color escapes for a non-terminal writer:\n%s", out)
	}
}

func TestPrintReportWithWarnings(t *testing.T) {
	rep := sampleReport(t)
	rep.Warnings = []metrics.StatusBucket{
		{Status: 404, Count: 2},
		{Status: 500, Count: 1},
	}

	var buf bytes.Buffer
	output.PrintReport(&buf, rep)

	if want := "Warnings : 3 (404: 2, 500: 1)"; !strings.Contains(buf.String(), want) {
		t.Errorf("report missing %q\ngot:\n%s", want, buf.String())
	}
}

func TestPrintJSONReport(t *testing.T) {
	rep := sampleReport(t)
	rep.Warnings = []metrics.StatusBucket{{Status: 503, Count: 4}}

	var buf bytes.Buffer
	if err := output.PrintJSONReport(&buf, rep); err != nil {
		t.Fatalf("PrintJSONReport() error = %v", err)
	}

	var decoded struct {
		Requests int     `json:"requests"`
		MeanMs   float64 `json:"mean_ms"`
		P95Ms    float64 `json:"p95_ms"`
		Warnings []struct {
			Status int   `json:"status"`
			Count  int64 `json:"count"`
		} `json:"warnings"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v\njson:\n%s", err, buf.String())
	}

	if decoded.Requests != 3 {
		t.Errorf("requests = %d, want 3", decoded.Requests)
	}
	if decoded.MeanMs != 20 {
		t.Errorf("mean_ms = %v, want 20", decoded.MeanMs)
	}
	if len(decoded.Warnings) != 1 || decoded.Warnings[0].Status != 503 || decoded.Warnings[0].Count != 4 {
		t.Errorf("warnings = %+v, want [{503 4}]", decoded.Warnings)
	}
}
