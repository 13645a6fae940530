package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Defaults applied before config file settings and flag overrides.
const (
	DefaultTargetURL   = "http://localhost:9090/meli_discount"
	DefaultBatchSize   = 100
	DefaultConcurrency = 10
	DefaultIterations  = 10
	DefaultTimeout     = 30 * time.Second
)

type Config struct {
	TargetURL    string        `mapstructure:"target"`
	IDs          []string      `mapstructure:"ids"`
	IDFile       string        `mapstructure:"ids_file"`
	SyntheticIDs int           `mapstructure:"num_ids"`
	BatchSize    int           `mapstructure:"batch_size"`
	Concurrency  int           `mapstructure:"concurrency"`
	Iterations   int           `mapstructure:"runs"`
	Timeout      time.Duration `mapstructure:"timeout"`
	CSVPath      string        `mapstructure:"csv"`
	JSONOutput   bool          `mapstructure:"json_output"`
	ConfigFile   string        `mapstructure:"-"`
}

// HasIDSource reports whether any item id source is configured.
// Inline ids take precedence over a file, which takes precedence over
// synthetic generation; resolution happens in the feeder package.
func (c Config) HasIDSource() bool {
	return len(c.IDs) > 0 || strings.TrimSpace(c.IDFile) != "" || c.SyntheticIDs > 0
}

type ValidationError struct {
	issues []string
}

func (e ValidationError) Error() string {
	if len(e.issues) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.issues, "; "))
}

func (e ValidationError) Issues() []string {
	return append([]string(nil), e.issues...)
}

func (c Config) Validate() error {
	var issues []string

	if strings.TrimSpace(c.TargetURL) == "" {
		issues = append(issues, "target is required (use --help for usage information)")
	}

	if !c.HasIDSource() && c.SyntheticIDs >= 0 {
		issues = append(issues, "an item id source is required: set --ids, --ids-file or --num-ids")
	}

	if c.SyntheticIDs < 0 {
		issues = append(issues, "num-ids must be >= 0")
	}
	if c.BatchSize < 1 {
		issues = append(issues, "batch-size must be >= 1")
	}
	if c.Concurrency < 1 {
		issues = append(issues, "concurrency must be >= 1")
	}
	if c.Iterations < 1 {
		issues = append(issues, "runs must be >= 1")
	}
	if c.Timeout < 0 {
		issues = append(issues, "timeout must be >= 0")
	}

	// Security warning for high concurrency
	if c.Concurrency > 500 {
		fmt.Fprintf(os.Stderr, "WARNING: High concurrency configured (%d workers). Ensure you have authorization to test the target system.\n", c.Concurrency)
	}

	if len(issues) > 0 {
		return ValidationError{issues: issues}
	}

	return nil
}
