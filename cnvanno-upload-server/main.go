// This binary provides a CNV annotation server that serves cytoband
// reference tables from a local directory and accepts uploaded tables.
package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hgvstools/cnvanno/cnvanno-upload-server/file"
)

var (
	port      = flag.Int("port", 8080, "HTTP service port")
	directory = flag.String("directory", "", "directory that contains cytoband reference files")
)

func main() {
	flag.Parse()

	if *directory == "" {
		log.Fatalf("You must specify -directory.")
	}

	router := gin.Default()
	router.GET("/annotate/:table", file.NewAnnotateHandler(*directory))
	router.POST("/annotate", file.NewUploadHandler())
	router.Run(":" + strconv.Itoa(*port))
}
