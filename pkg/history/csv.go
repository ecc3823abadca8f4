package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var csvHeader = []string{"Month", "Hour", "Average_RRP", "SD_RRP"}

// LoadCSV reads a table produced by the offline price aggregation. The first
// row must be the header Month,Hour,Average_RRP,SD_RRP and every one of the 288
// month and hour combinations must appear exactly once.
func LoadCSV(r io.Reader) (Table, error) {
	var t Table
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return t, fmt.Errorf("failed to read header: %w", err)
	}
	for i, name := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return t, fmt.Errorf("unexpected header column %d: got %q, want %q", i+1, header[i], name)
		}
	}

	var seen [12][24]bool
	count := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return t, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		month, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil || month < 1 || month > 12 {
			return t, fmt.Errorf("line %d: invalid month %q", line, rec[0])
		}
		hour, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil || hour < 0 || hour > 23 {
			return t, fmt.Errorf("line %d: invalid hour %q", line, rec[1])
		}
		mean, err := parseFinite(rec[2])
		if err != nil {
			return t, fmt.Errorf("line %d: invalid Average_RRP: %w", line, err)
		}
		sd, err := parseFinite(rec[3])
		if err != nil {
			return t, fmt.Errorf("line %d: invalid SD_RRP: %w", line, err)
		}
		if sd < 0 {
			return t, fmt.Errorf("line %d: negative SD_RRP %v", line, sd)
		}
		if seen[month-1][hour] {
			return t, fmt.Errorf("line %d: duplicate row for month %d hour %d", line, month, hour)
		}
		seen[month-1][hour] = true
		t[month-1][hour] = Stats{Mean: mean, StdDev: sd}
		count++
	}

	if count != 12*24 {
		for m := range seen {
			for h := range seen[m] {
				if !seen[m][h] {
					return t, fmt.Errorf("missing row for month %d hour %d (%d of %d rows present)", m+1, h, count, 12*24)
				}
			}
		}
	}
	return t, nil
}

// WriteCSV writes the table in the format LoadCSV reads.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for m := range t {
		for h, s := range t[m] {
			err := cw.Write([]string{
				strconv.Itoa(m + 1),
				strconv.Itoa(h),
				strconv.FormatFloat(s.Mean, 'f', -1, 64),
				strconv.FormatFloat(s.StdDev, 'f', -1, 64),
			})
			if err != nil {
				return fmt.Errorf("failed to write month %d hour %d: %w", m+1, h, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}
