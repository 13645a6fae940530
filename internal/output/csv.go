package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// WriteCSV writes every raw sample, converted to milliseconds, as one row of
// a single-column CSV. Row order is collection order. The target file is
// overwritten.
func WriteCSV(path string, samples []time.Duration) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"elapsed_ms"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range samples {
		ms := float64(s) / float64(time.Millisecond)
		if err := w.Write([]string{strconv.FormatFloat(ms, 'f', -1, 64)}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
