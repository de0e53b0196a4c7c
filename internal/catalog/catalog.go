// Package catalog loads and holds the reference food table: one row per
// food with its calories per 100g. The table is built once at startup and
// is read-only afterwards, so it is safe to share across concurrent
// lookups without locking.
package catalog

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/susrithamallela/foodvision/internal/normalize"
)

// Entry is one reference food.
type Entry struct {
	Name            string  `json:"food_name"`
	NormalizedName  string  `json:"normalized_name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
}

// Table is an ordered, immutable reference table. Source order is
// preserved; duplicate normalized names are legal and the first occurrence
// wins for exact matching.
type Table struct {
	entries []Entry
	exact   map[string]int // normalized name -> index of first occurrence
}

// Calories per 100g outside this range are treated as data errors.
const maxCaloriesPer100g = 10000

//go:embed food_db.csv
var defaultFS embed.FS

// Load parses a CSV reference source. The header must contain food_name
// and calories_per_100g columns (extra columns are ignored). Any malformed
// row or out-of-range calorie value is an error: a partially loaded table
// must never serve lookups. Entries whose name normalizes to the empty
// string can never match anything useful and are dropped with a warning.
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read food db header: %w", err)
	}
	nameCol, calCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "food_name":
			nameCol = i
		case "calories_per_100g":
			calCol = i
		}
	}
	if nameCol < 0 || calCol < 0 {
		return nil, fmt.Errorf("food db header must contain food_name and calories_per_100g, got %v", header)
	}

	t := &Table{exact: make(map[string]int)}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read food db line %d: %w", line, err)
		}
		name := rec[nameCol]
		cal, err := strconv.ParseFloat(strings.TrimSpace(rec[calCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("food db line %d: bad calories for %q: %w", line, name, err)
		}
		if cal < 0 || cal > maxCaloriesPer100g {
			return nil, fmt.Errorf("food db line %d: calories %v for %q outside [0, %d]", line, cal, name, maxCaloriesPer100g)
		}
		norm := normalize.Label(name)
		if norm == "" {
			slog.Warn("dropping food db entry with empty normalized name", "line", line, "food_name", name)
			continue
		}
		if _, ok := t.exact[norm]; !ok {
			t.exact[norm] = len(t.entries)
		}
		t.entries = append(t.entries, Entry{
			Name:            name,
			NormalizedName:  norm,
			CaloriesPer100g: cal,
		})
	}
	if len(t.entries) == 0 {
		return nil, errors.New("food db has no usable entries")
	}
	return t, nil
}

// LoadFile loads a reference table from a CSV file on disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open food db: %w", err)
	}
	defer f.Close() //nolint:errcheck
	return Load(f)
}

// LoadDefault loads the food database embedded in the binary.
func LoadDefault() (*Table, error) {
	f, err := defaultFS.Open("food_db.csv")
	if err != nil {
		return nil, fmt.Errorf("open embedded food db: %w", err)
	}
	defer f.Close() //nolint:errcheck
	return Load(f)
}

// Entries returns the table rows in source order. Callers must treat the
// returned slice as read-only.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Len reports the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Exact returns the first entry whose normalized name equals the given
// normalized label.
func (t *Table) Exact(normalized string) (Entry, bool) {
	i, ok := t.exact[normalized]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}
