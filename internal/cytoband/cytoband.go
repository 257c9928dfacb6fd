// Copyright 2018 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cytoband provides support for parsing UCSC style cytoband
// reference tables and locating the band that contains a position.
package cytoband

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
)

// The number of tab separated fields in a well formed row:
// chrom, start, end, band and stain.
const rowFields = 5

// Entry describes a single stained band on a chromosome.  The interval is
// half open: a position p lies inside the band when Start <= p < End.
type Entry struct {
	Chromosome string
	Start, End uint32
	Band       string
	Stain      string
}

// MalformedRowError indicates a table row that could not be parsed into an
// Entry.
type MalformedRowError struct {
	Row    string
	Reason string
}

func (err *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row %q: %s", err.Row, err.Reason)
}

// Table holds the bands of a reference table, grouped by chromosome and
// sorted by start position.  A Table is immutable once built by Read.
type Table struct {
	bands   map[string][]Entry
	skipped int
}

// Read parses a tab separated cytoband table from r.  A first row that does
// not parse is taken to be a column header and ignored.  Any other malformed
// row is logged and skipped so that one bad row does not discard an
// otherwise usable reference file; Skipped reports how many rows were lost
// this way.  Read fails only when r itself fails.
func Read(r io.Reader) (*Table, error) {
	table := &Table{bands: make(map[string][]Entry)}

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		row := strings.TrimRight(scanner.Text(), "\r")
		if row == "" {
			continue
		}
		entry, err := parseRow(row)
		if err != nil {
			if line == 1 {
				continue
			}
			log.Printf("Skipping cytoband row %d: %v", line, err)
			table.skipped++
			continue
		}
		table.bands[entry.Chromosome] = append(table.bands[entry.Chromosome], entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %v", err)
	}

	for _, entries := range table.bands {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Start < entries[j].Start
		})
	}
	return table, nil
}

func parseRow(row string) (Entry, error) {
	fields := strings.Split(row, "\t")
	if len(fields) < rowFields {
		return Entry{}, &MalformedRowError{row, fmt.Sprintf("%d fields (want %d)", len(fields), rowFields)}
	}
	start, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return Entry{}, &MalformedRowError{row, fmt.Sprintf("parsing start: %v", err)}
	}
	end, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return Entry{}, &MalformedRowError{row, fmt.Sprintf("parsing end: %v", err)}
	}
	if start >= end {
		return Entry{}, &MalformedRowError{row, fmt.Sprintf("start (%d) is not before end (%d)", start, end)}
	}
	return Entry{
		Chromosome: fields[0],
		Start:      uint32(start),
		End:        uint32(end),
		Band:       fields[3],
		Stain:      fields[4],
	}, nil
}

// Locate returns the band on chromosome whose half open interval contains
// pos.  A position equal to a band's end belongs to the following band.
// The second return value is false when pos lies before the first band or
// after the last band of the chromosome.
func (t *Table) Locate(chromosome string, pos uint32) (Entry, bool) {
	entries := t.bands[chromosome]
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].End > pos
	})
	if i == len(entries) || entries[i].Start > pos {
		return Entry{}, false
	}
	return entries[i], true
}

// Len returns the total number of bands in the table.
func (t *Table) Len() int {
	var n int
	for _, entries := range t.bands {
		n += len(entries)
	}
	return n
}

// Skipped returns the number of malformed rows dropped while reading the
// table.
func (t *Table) Skipped() int {
	return t.skipped
}
