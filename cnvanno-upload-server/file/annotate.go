package file

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/hgvstools/cnvanno"
	"github.com/hgvstools/cnvanno/cnvanno-upload-server/model"
)

// NewAnnotateHandler builds a gin handler that annotates against cytoband
// reference files stored in directory.
func NewAnnotateHandler(directory string) func(c *gin.Context) {
	return func(c *gin.Context) {
		// Base strips any path separators smuggled into the table name.
		name := filepath.Base(c.Param("table"))

		f, err := os.Open(filepath.Join(directory, name))
		if err != nil {
			c.String(http.StatusNotFound, "Error finding the reference table")
			return
		}
		defer f.Close()

		annotation, err := cnvanno.Annotate(f, c.Query("coordinate"), c.Query("event"))
		if err != nil {
			c.String(http.StatusBadRequest, "Error annotating: %v", err)
			return
		}

		c.JSON(http.StatusOK, model.NewResponse(annotation))
	}
}

// NewUploadHandler builds a gin handler that takes the cytoband reference
// table as a multipart file upload named "cytoband", with the coordinate
// and event supplied as form fields.
func NewUploadHandler() func(c *gin.Context) {
	return func(c *gin.Context) {
		upload, err := c.FormFile("cytoband")
		if err != nil {
			c.String(http.StatusBadRequest, "Error reading the uploaded table")
			return
		}

		f, err := upload.Open()
		if err != nil {
			c.String(http.StatusBadRequest, "Error opening the uploaded table")
			return
		}
		defer f.Close()

		annotation, err := cnvanno.Annotate(f, c.PostForm("coordinate"), c.PostForm("event"))
		if err != nil {
			c.String(http.StatusBadRequest, "Error annotating: %v", err)
			return
		}

		c.JSON(http.StatusOK, model.NewResponse(annotation))
	}
}
