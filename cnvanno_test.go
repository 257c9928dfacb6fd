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

package cnvanno

import (
	"strings"
	"testing"

	"github.com/hgvstools/cnvanno/internal/genomics"
)

const testTable = `chr16	0	7800000	p13.3	gneg
chr16	7800000	10400000	p13.2	gpos50
chr16	10400000	12500000	p13.13	gneg
chr16	12500000	14700000	p13.12	gpos50
chr16	14700000	16000000	p13.11	gneg
chr16	16000000	21200000	p12.3	gvar
`

func TestAnnotate(t *testing.T) {
	testCases := []struct {
		name       string
		coordinate string
		event      string
		want       string
	}{
		{
			"duplication across bands",
			"chr16:15489724-16367962", "duplication",
			"chr16:(?_15489724)_(16367962_?) [3]\n(chr16p13.11-p12.3 partial duplication)",
		},
		{
			"deletion within one band",
			"chr16:14800000-15900000", "deletion",
			"chr16:(?_14800000)_(15900000_?) [1]\n(chr16p13.11 partial deletion)",
		},
		{
			"commas and short event token",
			"chr16:15,489,724-16,367,962", "dup",
			"chr16:(?_15489724)_(16367962_?) [3]\n(chr16p13.11-p12.3 partial duplication)",
		},
		{
			"range past the last band",
			"chr16:16500000-30000000", "deletion",
			"chr16:(?_16500000)_(30000000_?) [1]\n(chr16p12.3-unknown partial deletion)",
		},
		{
			"chromosome missing from table",
			"chr2:100-200", "duplication",
			"chr2:(?_100)_(200_?) [3]\n(chr2unknown partial duplication)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Annotate(strings.NewReader(testTable), tc.coordinate, tc.event)
			if err != nil {
				t.Fatalf("Annotate() returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Wrong annotation:\ngot  %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestAnnotate_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		coordinate string
		event      string
	}{
		{"inverted range", "chrX:100-50", "deletion"},
		{"malformed coordinate", "somewhere", "deletion"},
		{"unknown event", "chr16:100-200", "inversion"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got, err := Annotate(strings.NewReader(testTable), tc.coordinate, tc.event); err == nil {
				t.Fatalf("Annotate(): expected error, got %q", got)
			}
		})
	}
}

func TestAnnotate_InvertedRangeError(t *testing.T) {
	_, err := Annotate(strings.NewReader(testTable), "chrX:100-50", "deletion")
	if _, ok := err.(*genomics.InvalidCoordinateError); !ok {
		t.Fatalf("Wrong error type: got %T (%v), want *genomics.InvalidCoordinateError", err, err)
	}
}
