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

// Package api implements the CNV annotation API.
//
// Cytoband reference tables are either read from GCS objects named in the
// request path or supplied directly as the request body.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hgvstools/cnvanno/internal/analytics"
	"github.com/hgvstools/cnvanno/internal/hgvs"
)

const (
	annotatePath = "/annotate/"
	uploadPath   = "/upload"
)

var (
	errInvalidOrUnspecifiedID = errors.New("invalid or unspecified reference table ID")
	errMissingOrInvalidToken  = errors.New("missing or invalid token")
)

// NewStorageClientFunc is the type of function that constructs the
// appropriate storage.Client to satisfy the incoming request. Any headers
// that caused this particular client to be created are returned to allow
// the caller to authenticate follow-up requests correctly.
type NewStorageClientFunc func(*http.Request) (Client, http.Header, error)

// Server provides a CNV annotation server.  Must be created with NewServer.
type Server struct {
	newStorageClient NewStorageClientFunc
	whitelist        map[string]bool
}

// NewServer returns a new Server.  The server will call newStorageClient on
// each request to determine which GCS storage client to use for reading
// cytoband reference tables.
func NewServer(newStorageClient NewStorageClientFunc) *Server {
	return &Server{newStorageClient, make(map[string]bool)}
}

// Whitelist adds buckets to the set of buckets from which the server is
// allowed to read reference tables. If Whitelist is never called for a
// given Server then reads from any bucket are allowed.
func (server *Server) Whitelist(buckets []string) {
	for _, bucket := range buckets {
		server.whitelist[bucket] = true
	}
}

// Export registers the annotation API endpoints with mux.
func (server *Server) Export(mux *http.ServeMux) {
	mux.Handle(annotatePath, forwardOrigin(server.serveAnnotate))
	mux.Handle(uploadPath, forwardOrigin(server.serveUpload))
}

func (server *Server) serveAnnotate(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	track := analytics.TrackerFromContext(ctx)
	track(analytics.Event("Annotate", "Annotate Request Received", "", nil))

	bucket, object, err := parseID(req.URL.Path[len(annotatePath):])
	if err != nil {
		writeError(w, newInvalidInputError("parsing reference table ID", err))
		return
	}

	if err := server.checkWhitelist(bucket); err != nil {
		writeError(w, newPermissionDeniedError("checking whitelist", err))
		return
	}

	gcs, _, err := server.newStorageClient(req)
	if err != nil {
		writeError(w, newStorageError("creating client", err))
		return
	}

	query := req.URL.Query()
	request := &annotateRequest{
		table:      gcs.NewObjectHandle(bucket, object),
		coordinate: query.Get("coordinate"),
		event:      query.Get("event"),
	}

	result, err := request.handle(ctx)
	if err != nil {
		track(analytics.Event("Annotate", "Annotate Request Failed", "", nil))
		writeError(w, err)
		return
	}

	writeResult(w, result)
	track(analytics.Event("Annotate", "Annotate Response Sent", "", nil))
}

func (server *Server) serveUpload(w http.ResponseWriter, req *http.Request) {
	track := analytics.TrackerFromContext(req.Context())
	track(analytics.Event("Upload", "Upload Request Received", "", nil))

	if req.Method != "POST" {
		writeHTTPError(w, http.StatusMethodNotAllowed, fmt.Errorf("unsupported method %q", req.Method))
		return
	}
	defer req.Body.Close()

	query := req.URL.Query()
	result, err := annotate(req.Body, query.Get("coordinate"), query.Get("event"))
	if err != nil {
		track(analytics.Event("Upload", "Upload Request Failed", "", nil))
		writeError(w, err)
		return
	}

	writeResult(w, result)
	track(analytics.Event("Upload", "Upload Response Sent", "", nil))
}

func (server *Server) checkWhitelist(bucket string) error {
	if len(server.whitelist) == 0 || server.whitelist[bucket] {
		return nil
	}
	return fmt.Errorf("access to bucket %s is not allowed", bucket)
}

// parseID parses path and returns a GCS bucket and object, or an error.
func parseID(path string) (string, string, error) {
	if parts := strings.SplitN(path, "/", 2); len(parts) == 2 {
		if parts[0] != "" && parts[1] != "" {
			return parts[0], parts[1], nil
		}
	}
	return "", "", errInvalidOrUnspecifiedID
}

func writeResult(w http.ResponseWriter, result *annotation) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cnvanno": map[string]interface{}{
			"coordinate": result.Coordinate.String(),
			"event":      result.Event.String(),
			"cytoband":   hgvs.BandRange(result.StartBand, result.EndBand),
			"hgvs":       hgvs.Notation(result.Coordinate, result.Event),
			"annotation": hgvs.Annotation(result.Coordinate, result.Event, result.StartBand, result.EndBand),
		}})
}

// apiError is used to capture errors that have been defined in the API.
type apiError struct {
	name  string
	code  int
	cause error
}

func (err *apiError) Error() string {
	return fmt.Sprintf("%s (%d): %v", err.name, err.code, err.cause)
}

func newApiError(name string, code int, context string, err error) error {
	return &apiError{name, code, fmt.Errorf("%s: %v", context, err)}
}

func newInvalidAuthenticationError(context string, err error) error {
	return newApiError("InvalidAuthentication", http.StatusUnauthorized, context, err)
}

func newInvalidInputError(context string, err error) error {
	return newApiError("InvalidInput", http.StatusBadRequest, context, err)
}

func newPermissionDeniedError(context string, err error) error {
	return newApiError("PermissionDenied", http.StatusForbidden, context, err)
}

func newNotFoundError(context string, err error) error {
	return newApiError("NotFound", http.StatusNotFound, context, err)
}

// writeError writes either a JSON object or bare HTTP error describing err
// to w.  A JSON object is written only when the error has a name and code
// defined by the API.
func writeError(w http.ResponseWriter, err error) {
	if err, ok := err.(*apiError); ok {
		writeJSON(w, err.code, map[string]interface{}{
			"error":   err.name,
			"message": fmt.Sprintf("%s: %v", http.StatusText(err.code), err.cause),
		})
		return
	}

	writeHTTPError(w, http.StatusInternalServerError, err)
}

func writeHTTPError(w http.ResponseWriter, code int, err error) {
	http.Error(w, fmt.Sprintf("%s: %v", http.StatusText(code), err), code)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Add("Content-type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

type forwardOrigin func(w http.ResponseWriter, req *http.Request)

func (f forwardOrigin) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if origin := req.Header.Get("Origin"); origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
	}
	f(w, req)
}
