package api

import (
	"net/http"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/memorydb/database"
	"github.com/fulldump/memorydb/service"
)

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		db := database.NewDatabase(&database.Config{})

		biff.AssertNil(db.Load())
		biff.AssertEqual(db.GetStatus(), database.StatusOperating)

		s := service.NewService(db)

		b := Build(s, "test", "", "")
		b.WithInterceptors(
			RequestId,
			InterceptorUnavailable(db),
			RecoverFromPanic,
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

	})
}

func TestUnavailable(t *testing.T) {

	db := database.NewDatabase(&database.Config{})

	b := Build(service.NewService(db), "test", "", "")
	b.WithInterceptors(
		InterceptorUnavailable(db),
		PrettyErrorInterceptor,
	)

	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/v1/collections").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)
	biff.AssertEqualJson(resp.BodyJson(), map[string]any{
		"error": map[string]any{
			"message":     "temporary unavailable: opening",
			"description": "database is not operating, try again later",
		},
	})

	db.Load()

	resp = api.Request("GET", "/v1/collections").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusOK)
}

func TestRequestId(t *testing.T) {

	db := database.NewDatabase(&database.Config{})
	db.Load()

	b := Build(service.NewService(db), "test", "", "")
	b.WithInterceptors(
		RequestId,
		PrettyErrorInterceptor,
	)

	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/release").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusOK)
	biff.AssertEqual(len(resp.Header.Get("X-Request-Id")), 36)

	resp = api.Request("GET", "/release").
		WithHeader("X-Request-Id", "my-request").
		Do()
	biff.AssertEqual(resp.Header.Get("X-Request-Id"), "my-request")
}

func TestNotImplemented(t *testing.T) {

	db := database.NewDatabase(&database.Config{})
	db.Load()

	b := Build(service.NewService(db), "test", "", "")
	b.WithInterceptors(PrettyErrorInterceptor)

	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/v1/invented").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusNotImplemented)
	biff.AssertEqualJson(resp.BodyJson(), map[string]any{
		"error": map[string]any{
			"message":     "not implemented",
			"description": "this endpoint does not exist, please check the documentation",
		},
	})
}
