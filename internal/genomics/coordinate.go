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

// Package genomics contains definitions related to genomic coordinates.
package genomics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// coordinatePattern matches inputs like "chr16:15489724-16367962".  The
// "chr" prefix is optional on input and the mitochondrial chromosome may be
// written as either "M" or "MT".
var coordinatePattern = regexp.MustCompile(`^(?:chr)?([0-9]{1,2}|X|Y|MT?):([0-9]+)-([0-9]+)$`)

// CoordinateRange defines a range of positions on a single chromosome.
type CoordinateRange struct {
	// Chromosome is the normalized chromosome name, always carrying the
	// "chr" prefix (chr1 through chr22, chrX, chrY or chrM).
	Chromosome string
	// Start and End specify the range in base pairs, with Start <= End.
	Start, End uint32
}

func (r CoordinateRange) String() string {
	return fmt.Sprintf("%s:%d-%d", r.Chromosome, r.Start, r.End)
}

// InvalidCoordinateError indicates that an input string could not be parsed
// into a CoordinateRange.
type InvalidCoordinateError struct {
	Input  string
	Reason string
}

func (err *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate %q: %s", err.Input, err.Reason)
}

// ParseCoordinate parses an input of the form "<chromosome>:<start>-<end>"
// into a CoordinateRange.  Commas inside the position fields are ignored,
// so "chr16:15,489,724-16,367,962" and "chr16:15489724-16367962" parse to
// the same range.
func ParseCoordinate(input string) (CoordinateRange, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(input), ",", "")

	groups := coordinatePattern.FindStringSubmatch(cleaned)
	if groups == nil {
		return CoordinateRange{}, &InvalidCoordinateError{input, "want <chromosome>:<start>-<end>"}
	}

	chromosome, err := normalizeChromosome(groups[1])
	if err != nil {
		return CoordinateRange{}, &InvalidCoordinateError{input, err.Error()}
	}

	start, err := strconv.ParseUint(groups[2], 10, 32)
	if err != nil {
		return CoordinateRange{}, &InvalidCoordinateError{input, fmt.Sprintf("parsing start: %v", err)}
	}
	end, err := strconv.ParseUint(groups[3], 10, 32)
	if err != nil {
		return CoordinateRange{}, &InvalidCoordinateError{input, fmt.Sprintf("parsing end: %v", err)}
	}
	if start > end {
		return CoordinateRange{}, &InvalidCoordinateError{input, fmt.Sprintf("start (%d) is after end (%d)", start, end)}
	}

	return CoordinateRange{
		Chromosome: chromosome,
		Start:      uint32(start),
		End:        uint32(end),
	}, nil
}

// normalizeChromosome maps a bare chromosome name to its canonical
// chr-prefixed form.  "MT" is folded into "M".
func normalizeChromosome(name string) (string, error) {
	switch name {
	case "X", "Y":
		return "chr" + name, nil
	case "M", "MT":
		return "chrM", nil
	}
	n, err := strconv.Atoi(name)
	if err != nil || n < 1 || n > 22 {
		return "", fmt.Errorf("unknown chromosome %q", name)
	}
	return fmt.Sprintf("chr%d", n), nil
}
