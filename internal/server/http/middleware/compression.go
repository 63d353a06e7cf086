package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest unwraps gzip encoded request bodies before binding.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isGzipEncoded(c.GetHeader("Content-Encoding")) {
			c.Next()
			return
		}

		body := c.Request.Body
		defer body.Close()

		reader, err := gzip.NewReader(body)
		if err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			AbortWithDetail(c, http.StatusBadRequest, nil, "invalid request body: "+err.Error())
			return
		}
		defer reader.Close()

		c.Request.Body = reader
		c.Request.ContentLength = -1
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}

func isGzipEncoded(header string) bool {
	for _, coding := range strings.Split(header, ",") {
		if strings.EqualFold(strings.TrimSpace(coding), "gzip") {
			return true
		}
	}
	return false
}
