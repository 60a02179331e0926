package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"tableview/backend/internal/metrics"
	"tableview/backend/internal/service"
)

// parserFor resolves the parser for an uploaded file name.
// By default, it returns service.ParserFor(), but can be overridden in tests.
var parserFor func(filename string) (service.TableParser, error) = service.ParserFor

var collector = metrics.NewCollector(prometheus.DefaultRegisterer)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

func MockDataHandler(c *gin.Context) {
	c.JSON(http.StatusOK, service.MockDataset())
}

func UploadHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		collector.RecordRejected("")
		processingError(c, err)
		return
	}

	parser, err := parserFor(fileHeader.Filename)
	if err != nil {
		collector.RecordRejected("")
		processingError(c, err)
		return
	}

	content, err := readUpload(fileHeader)
	if err != nil {
		collector.RecordRejected(parser.Format())
		processingError(c, err)
		return
	}

	start := time.Now()
	dataset, err := parser.Parse(content)
	elapsed := time.Since(start)
	if err != nil {
		collector.RecordUpload(parser.Format(), false, elapsed, 0)
		processingError(c, err)
		return
	}
	collector.RecordUpload(parser.Format(), true, elapsed, dataset.Shape.Rows)

	zap.L().Info("file parsed",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("filename", fileHeader.Filename),
		zap.String("format", parser.Format()),
		zap.Int64("size", fileHeader.Size),
		zap.Int("rows", dataset.Shape.Rows),
		zap.Int("columns", dataset.Shape.Columns),
		zap.Duration("duration", elapsed))

	c.JSON(http.StatusOK, dataset)
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// processingError is the single client error of the upload route.
func processingError(c *gin.Context, err error) {
	zap.L().Warn("upload rejected",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err))

	c.JSON(http.StatusBadRequest, gin.H{"detail": "Error processing file: " + err.Error()})
}
