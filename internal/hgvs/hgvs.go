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

// Package hgvs formats copy number variants using HGVS style nomenclature.
package hgvs

import (
	"fmt"
	"strings"

	"github.com/hgvstools/cnvanno/internal/genomics"
)

// UnknownBand is rendered in place of a band name when a position falls
// outside every band of its chromosome.
const UnknownBand = "unknown"

// Event identifies the type of copy number change.
type Event int

const (
	Deletion Event = iota
	Duplication
)

func (e Event) String() string {
	if e == Duplication {
		return "duplication"
	}
	return "deletion"
}

// Ploidy returns the display copy count for the event, relative to the
// normal diploid count of two.
func (e Event) Ploidy() int {
	if e == Duplication {
		return 3
	}
	return 1
}

// ParseEvent parses an event token.  Matching is case insensitive and the
// short forms "dup" and "del" are accepted.
func ParseEvent(input string) (Event, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "duplication", "dup":
		return Duplication, nil
	case "deletion", "del":
		return Deletion, nil
	}
	return 0, fmt.Errorf("invalid event type %q (want \"duplication\" or \"deletion\")", input)
}

// Notation returns the bare HGVS line for an imprecise copy number change,
// for example "chr16:(?_15489724)_(16367962_?) [3]".
func Notation(r genomics.CoordinateRange, event Event) string {
	return fmt.Sprintf("%s:(?_%d)_(%d_?) [%d]", r.Chromosome, r.Start, r.End, event.Ploidy())
}

// BandRange renders the cytoband label spanned by a range.  When both ends
// fall inside the same band a single label is produced instead of a
// hyphenated pair.  Empty band names render as UnknownBand.
func BandRange(startBand, endBand string) string {
	if startBand == "" {
		startBand = UnknownBand
	}
	if endBand == "" {
		endBand = UnknownBand
	}
	if startBand == endBand {
		return startBand
	}
	return startBand + "-" + endBand
}

// Annotation returns the full two line annotation: the HGVS line followed
// by the cytoband line, for example
//
//	chr16:(?_15489724)_(16367962_?) [3]
//	(chr16p13.11-p12.3 partial duplication)
func Annotation(r genomics.CoordinateRange, event Event, startBand, endBand string) string {
	return fmt.Sprintf("%s\n(%s%s partial %s)", Notation(r, event), r.Chromosome, BandRange(startBand, endBand), event)
}
