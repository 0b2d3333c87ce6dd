package api

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/memorydb/database"
	"github.com/fulldump/memorydb/service"
)

func TestCompression(t *testing.T) {

	biff.Alternative("Compression", func(a *biff.A) {

		db := database.NewDatabase(&database.Config{})
		db.Load()

		b := Build(service.NewService(db), "v1.2.3", "", "")
		b.WithInterceptors(Compression)

		api := apitest.NewWithHandler(b)

		a.Alternative("Gzip accepted", func(a *biff.A) {
			resp := api.Request("GET", "/release").
				WithHeader("Accept-Encoding", "gzip").
				Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.Header.Get("Content-Encoding"), "gzip")

			gz, err := gzip.NewReader(bytes.NewReader(resp.BodyBytes()))
			biff.AssertNil(err)
			body, err := io.ReadAll(gz)
			biff.AssertNil(err)
			biff.AssertTrue(strings.Contains(string(body), "v1.2.3"))
		})

		a.Alternative("Gzip refused", func(a *biff.A) {
			resp := api.Request("GET", "/release").
				WithHeader("Accept-Encoding", "gzip;q=0").
				Do()
			biff.AssertEqual(resp.Header.Get("Content-Encoding"), "")
			biff.AssertTrue(strings.Contains(resp.BodyString(), "v1.2.3"))
		})

		a.Alternative("No content", func(a *biff.A) {
			resp := api.Request("POST", "/v1/collections/users:insert").
				WithHeader("Accept-Encoding", "gzip").
				Do()
			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)
			biff.AssertEqual(resp.Header.Get("Content-Encoding"), "")
		})
	})
}

func TestAcceptsGzip(t *testing.T) {
	biff.AssertTrue(acceptsGzip("gzip"))
	biff.AssertTrue(acceptsGzip("deflate, gzip;q=0.8"))
	biff.AssertTrue(acceptsGzip("*"))
	biff.AssertFalse(acceptsGzip(""))
	biff.AssertFalse(acceptsGzip("br, deflate"))
	biff.AssertFalse(acceptsGzip("gzip;q=0"))
	biff.AssertFalse(acceptsGzip("gzip; q=0.000"))
}
