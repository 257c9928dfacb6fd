// Package cnvanno exposes the annotation API as an App Engine service.
package cnvanno

import (
	"net/http"
	"os"
	"strings"

	"github.com/hgvstools/cnvanno/api"
	"google.golang.org/appengine"
)

func init() {
	mux := http.NewServeMux()
	server := api.NewServer(newAppEngineClient)
	if list := os.Getenv("BUCKET_WHITELIST"); list != "" {
		server.Whitelist(strings.Split(list, ","))
	}
	server.Export(mux)
	http.HandleFunc("/", mux.ServeHTTP)
}

func newAppEngineClient(req *http.Request) (api.Client, http.Header, error) {
	return api.NewClientFromBearerToken(req.WithContext(appengine.NewContext(req)))
}
