package file

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/hgvstools/cnvanno/cnvanno-upload-server/model"
)

const wantAnnotation = "chr16:(?_15489724)_(16367962_?) [3]\n(chr16p13.11-p12.3 partial duplication)"

func setupRouter() *gin.Engine {
	r := gin.Default()
	r.GET("/annotate/:table", NewAnnotateHandler("./testdata"))
	r.POST("/annotate", NewUploadHandler())
	return r
}

func TestAnnotateRoute(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	target := "/annotate/cytoBand.txt?coordinate=" +
		url.QueryEscape("chr16:15489724-16367962") + "&event=duplication"
	req, _ := http.NewRequest("GET", target, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, wantAnnotation, resp.Cnvanno.Annotation)
}

func TestAnnotateRoute_MissingTable(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/annotate/nope.txt?coordinate=chr16:100-200&event=deletion", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnnotateRoute_BadCoordinate(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/annotate/cytoBand.txt?coordinate=chrX:100-50&event=deletion", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRoute(t *testing.T) {
	router := setupRouter()

	table, err := ioutil.ReadFile("./testdata/cytoBand.txt")
	assert.NoError(t, err)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("cytoband", "cytoBand.txt")
	assert.NoError(t, err)
	_, err = part.Write(table)
	assert.NoError(t, err)
	assert.NoError(t, form.WriteField("coordinate", "chr16:15489724-16367962"))
	assert.NoError(t, form.WriteField("event", "duplication"))
	assert.NoError(t, form.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/annotate", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, wantAnnotation, resp.Cnvanno.Annotation)
}

func TestUploadRoute_MissingFile(t *testing.T) {
	router := setupRouter()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	assert.NoError(t, form.WriteField("coordinate", "chr16:100-200"))
	assert.NoError(t, form.WriteField("event", "deletion"))
	assert.NoError(t, form.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/annotate", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
