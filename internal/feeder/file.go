package feeder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// loadFile reads identifiers from path. Files with a .json extension are
// parsed as JSON; everything else is treated as newline-delimited text.
func loadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ids file: %w", err)
	}

	var ids []string
	if strings.EqualFold(filepath.Ext(path), ".json") {
		ids, err = parseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("ids file %s: %w", path, err)
		}
	} else {
		ids = parseLines(data)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("ids file %s yields no identifiers", path)
	}
	return ids, nil
}

// parseLines returns every non-blank line, whitespace trimmed, in order.
func parseLines(data []byte) []string {
	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		if id := strings.TrimSpace(line); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// parseJSON accepts the fixture shapes the seeder emits: an object keyed by
// identifier contributes its keys, an array contributes its string elements
// or each element's "id" field.
func parseJSON(data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("not valid JSON")
	}

	root := gjson.ParseBytes(data)
	var ids []string
	switch {
	case root.IsObject():
		root.ForEach(func(key, _ gjson.Result) bool {
			ids = append(ids, key.String())
			return true
		})
	case root.IsArray():
		for _, el := range root.Array() {
			if el.IsObject() {
				if id := el.Get("id"); id.Exists() {
					ids = append(ids, id.String())
				}
				continue
			}
			if s := strings.TrimSpace(el.String()); s != "" {
				ids = append(ids, s)
			}
		}
	default:
		return nil, fmt.Errorf("expected a JSON object or array at the top level")
	}
	return ids, nil
}
