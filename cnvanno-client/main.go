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

// This binary provides a CNV annotation client.  It annotates against a
// local cytoband file, or queries annotation servers named on the command
// line, with optional Google authentication.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/oauth2/google"

	"github.com/hgvstools/cnvanno"
)

const (
	scope = "https://www.googleapis.com/auth/devstorage.read_only"
)

var (
	cytobandFile = flag.String("cytoband", "", "local cytoband reference file (skips any server queries)")
	coordinate   = flag.String("coordinate", "", "coordinate range, e.g. chr16:15489724-16367962")
	event        = flag.String("event", "", "event type (duplication or deletion)")
	output       = flag.String("o", "", "output filename")
	auth         = flag.Bool("auth", false, "authenticate server requests with Google application default credentials")
	cpuProfile   = flag.Bool("cpu_profile", false, "write a CPU profile to the current directory")
)

func main() {
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	w := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to open output file: %v", err)
		}
		defer f.Close()

		w = f
	}

	if *coordinate == "" || *event == "" {
		log.Fatalf("You must specify both -coordinate and -event.")
	}

	if *cytobandFile != "" {
		f, err := os.Open(*cytobandFile)
		if err != nil {
			log.Fatalf("Failed to open cytoband file: %v", err)
		}
		defer f.Close()

		annotation, err := cnvanno.Annotate(f, *coordinate, *event)
		if err != nil {
			log.Fatalf("Annotation failed: %v", err)
		}
		fmt.Fprintln(w, annotation)
		return
	}

	client := http.DefaultClient
	if *auth {
		authenticated, err := google.DefaultClient(context.Background(), scope)
		if err != nil {
			log.Fatalf("Failed to create authenticated client: %v", err)
		}
		client = authenticated
	}

	for _, target := range flag.Args() {
		log.Printf("Fetching %q", target)
		target = addParameter(target, "coordinate", *coordinate)
		target = addParameter(target, "event", *event)

		resp, err := client.Get(target)
		if err != nil {
			log.Fatalf("Request failed: %v", err)
		}

		if resp.StatusCode != http.StatusOK {
			log.Fatalf("Unexpected response: %v", errorFromResponse(resp))
		}

		var result struct {
			Container struct {
				Annotation string `json:"annotation"`
			} `json:"cnvanno"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			log.Fatalf("Failed to decode response: %v", err)
		}
		resp.Body.Close()

		fmt.Fprintln(w, result.Container.Annotation)
	}
}

func addParameter(input, name, value string) string {
	values := url.Values{}
	values.Set(name, value)
	if strings.Contains(input, "?") {
		return input + "&" + values.Encode()
	}
	return input + "?" + values.Encode()
}

func errorFromResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusBadRequest:
		v := make(map[string]string)
		if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
			return fmt.Errorf("bad request: parsing response body: %v", err)
		}
		if message, ok := v["message"]; ok {
			return fmt.Errorf("bad request: %v", message)
		}
	}
	return fmt.Errorf("unexpected response status: %q", resp.Status)
}
