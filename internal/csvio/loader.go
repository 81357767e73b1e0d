package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/vess/classmate-finder/internal/overlap"
	"github.com/vess/classmate-finder/pkg/model"
)

var notDigit = regexp.MustCompile("[^0-9]+")

// The survey export quotes cells with '|'. encoding/csv has no quote rune
// setting, so cells are parsed lazily and trimmed afterwards.
func trimQuote(cell string) string {
	return strings.Trim(cell, "|")
}

// Remove every whitespace rune from a course cell.
func stripSpaces(cell string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cell)
}

// LoadEnrollments reads and parses <dirname>/<filebase>.csv for survey data.
// It returns one enrollment per non-empty course cell, in row order then
// cell order within the row.
func LoadEnrollments(cfg *overlap.Configuration, dirname string, filebase string) ([]*model.Enrollment, error) {
	filename := filepath.Join(dirname, filebase+".csv")
	// Check existence up front so a bad argument fails before any read.
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("no such file: %s", filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ','
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse data from %s: %w", filename, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no header row in %s", filename)
	}

	nameIndex := slices.IndexFunc(rows[0], func(cell string) bool {
		return trimQuote(cell) == cfg.NameColumn
	})
	if nameIndex < 0 {
		return nil, fmt.Errorf("column %q not found in header of %s", cfg.NameColumn, filename)
	}

	enrollments := []*model.Enrollment{}
	for _, row := range rows[1:] {
		if nameIndex >= len(row) {
			continue
		}
		name := trimQuote(row[nameIndex])
		cells := slices.Delete(slices.Clone(row), nameIndex, nameIndex+1)
		// Survey form layout: course answers sit between the two leading
		// bookkeeping columns and the trailing free-form column.
		for i := 2; i < len(cells)-1; i++ {
			cell := trimQuote(cells[i])
			if cell == "" {
				continue
			}
			enrollments = append(enrollments, parseCourseCell(name, cell, cfg.DefaultSection))
		}
	}
	return enrollments, nil
}

// parseCourseCell splits a raw answer like "초급프랑스어1 (003반)" into the
// course label and its digits-only section number.
func parseCourseCell(name string, cell string, defaultSection string) *model.Enrollment {
	course, tail, found := strings.Cut(stripSpaces(cell), "(")
	if !found {
		tail = defaultSection
	}
	return &model.Enrollment{
		Name:    name,
		Course:  course,
		Section: notDigit.ReplaceAllString(tail, ""),
	}
}
