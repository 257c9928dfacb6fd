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

package api

import (
	"context"
	"io"

	"github.com/hgvstools/cnvanno/internal/cytoband"
	"github.com/hgvstools/cnvanno/internal/genomics"
	"github.com/hgvstools/cnvanno/internal/hgvs"
)

// annotation is the outcome of one annotation request.  StartBand and
// EndBand are empty when the corresponding position falls outside every
// band of its chromosome.
type annotation struct {
	Coordinate genomics.CoordinateRange
	Event      hgvs.Event
	StartBand  string
	EndBand    string
}

type annotateRequest struct {
	table      ObjectHandle
	coordinate string
	event      string
}

func (req *annotateRequest) handle(ctx context.Context) (*annotation, error) {
	table, err := req.table.NewRangeReader(ctx, 0, -1)
	if err != nil {
		return nil, newStorageError("opening reference table", err)
	}
	defer table.Close()

	return annotate(table, req.coordinate, req.event)
}

// annotate loads a cytoband table from r and resolves the coordinate and
// event inputs against it.  Input errors are returned as InvalidInput API
// errors; a position with no enclosing band is not an error.
func annotate(r io.Reader, coordinate, event string) (*annotation, error) {
	table, err := cytoband.Read(r)
	if err != nil {
		return nil, newInvalidInputError("reading reference table", err)
	}

	coord, err := genomics.ParseCoordinate(coordinate)
	if err != nil {
		return nil, newInvalidInputError("parsing coordinate", err)
	}

	ev, err := hgvs.ParseEvent(event)
	if err != nil {
		return nil, newInvalidInputError("parsing event", err)
	}

	result := &annotation{Coordinate: coord, Event: ev}
	if entry, ok := table.Locate(coord.Chromosome, coord.Start); ok {
		result.StartBand = entry.Band
	}
	if entry, ok := table.Locate(coord.Chromosome, coord.End); ok {
		result.EndBand = entry.Band
	}
	return result, nil
}
