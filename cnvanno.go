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

// Package cnvanno converts a genomic coordinate range and a copy number
// variant event type into an HGVS style annotation, enriched with cytoband
// labels looked up from a user supplied reference table.
package cnvanno

import (
	"io"

	"github.com/hgvstools/cnvanno/internal/cytoband"
	"github.com/hgvstools/cnvanno/internal/genomics"
	"github.com/hgvstools/cnvanno/internal/hgvs"
)

// Annotate runs the whole pipeline on raw inputs: it reads a cytoband
// reference table from table, parses the coordinate and event strings and
// returns the formatted annotation.
func Annotate(table io.Reader, coordinate, event string) (string, error) {
	bands, err := cytoband.Read(table)
	if err != nil {
		return "", err
	}
	return AnnotateWith(bands, coordinate, event)
}

// AnnotateWith is like Annotate for callers that have already loaded the
// reference table and want to reuse it across requests.
func AnnotateWith(table *cytoband.Table, coordinate, event string) (string, error) {
	r, err := genomics.ParseCoordinate(coordinate)
	if err != nil {
		return "", err
	}

	ev, err := hgvs.ParseEvent(event)
	if err != nil {
		return "", err
	}

	var startBand, endBand string
	if entry, ok := table.Locate(r.Chromosome, r.Start); ok {
		startBand = entry.Band
	}
	if entry, ok := table.Locate(r.Chromosome, r.End); ok {
		endBand = entry.Band
	}

	return hgvs.Annotation(r, ev, startBand, endBand), nil
}
