package service

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

func ndjson(items ...JSON) string {
	body := ""
	for _, item := range items {
		line, _ := json.Marshal(item)
		body += string(line) + "\n"
	}
	return body
}

func readLines(body string) []interface{} {
	result := []interface{}{}
	d := json.NewDecoder(strings.NewReader(body))
	for {
		var item interface{}
		err := d.Decode(&item)
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		result = append(result, item)
	}
	return result
}

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	findAll := func() []interface{} {
		resp := apiRequest("POST", "/collections/users:find").
			WithBodyJson(JSON{"limit": -1}).Do()
		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		return readLines(resp.BodyString())
	}

	a.Alternative("Create collection", func(a *biff.A) {
		resp := apiRequest("POST", "/collections").
			WithBodyJson(JSON{
				"name": "users",
			}).Do()
		Save(resp, "Create collection", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"name":     "users",
			"identity": "id",
			"total":    0,
			"last_id":  0,
		})

		a.Alternative("Retrieve collection", func(a *biff.A) {
			resp := apiRequest("GET", "/collections/users").Do()
			Save(resp, "Retrieve collection", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"name":     "users",
				"identity": "id",
				"total":    0,
				"last_id":  0,
			})
		})

		a.Alternative("List collections", func(a *biff.A) {
			apiRequest("POST", "/collections").
				WithBodyJson(JSON{"name": "books", "identity": "isbn"}).Do()

			resp := apiRequest("GET", "/collections").Do()
			Save(resp, "List collections", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{
				{"name": "books", "identity": "isbn", "total": 0, "last_id": 0},
				{"name": "users", "identity": "id", "total": 0, "last_id": 0},
			})
		})

		a.Alternative("Create collection twice", func(a *biff.A) {
			resp := apiRequest("POST", "/collections").
				WithBodyJson(JSON{"name": "users"}).Do()
			Save(resp, "Create collection - conflict", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"error": JSON{
					"message":     "collection already exists",
					"description": "collection name is already taken",
				},
			})
		})

		a.Alternative("Drop collection", func(a *biff.A) {
			resp := apiRequest("POST", "/collections/users:dropCollection").Do()
			Save(resp, "Drop collection", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			a.Alternative("Get dropped collection", func(a *biff.A) {
				resp := apiRequest("GET", "/collections/users").Do()
				Save(resp, "Get collection - not found", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})
		})

		a.Alternative("Insert without identity", func(a *biff.A) {
			resp := apiRequest("POST", "/collections/users:insert").
				WithBodyString(ndjson(JSON{"name": "a"}, JSON{"name": "b"})).Do()
			Save(resp, "Insert - autoincrement", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			biff.AssertEqualJson(readLines(resp.BodyString()), []JSON{
				{"id": 1, "name": "a"},
				{"id": 2, "name": "b"},
			})
			biff.AssertEqual(len(findAll()), 2)

			a.Alternative("Update", func(a *biff.A) {
				resp := apiRequest("POST", "/collections/users:update").
					WithBodyJson(JSON{"id": 1, "name": "a2"}).Do()
				Save(resp, "Update", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(findAll(), []JSON{
					{"id": 1, "name": "a2"},
					{"id": 2, "name": "b"},
				})
			})

			a.Alternative("Update without identity", func(a *biff.A) {
				resp := apiRequest("POST", "/collections/users:update").
					WithBodyJson(JSON{"name": "nobody"}).Do()
				Save(resp, "Update - missing identity", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Remove", func(a *biff.A) {
				resp := apiRequest("POST", "/collections/users:remove").
					WithBodyJson(JSON{"id": 1}).Do()
				Save(resp, "Remove", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(findAll(), []JSON{
					{"id": 2, "name": "b"},
				})

				a.Alternative("Clear", func(a *biff.A) {
					resp := apiRequest("POST", "/collections/users:clear").Do()
					Save(resp, "Clear", ``)

					biff.AssertEqual(resp.StatusCode, http.StatusOK)
					biff.AssertEqual(len(findAll()), 0)

					resp = apiRequest("POST", "/collections/users:insert").
						WithBodyJson(JSON{"name": "fresh"}).Do()
					biff.AssertEqualJson(resp.BodyJson(), JSON{"id": 1, "name": "fresh"})
				})
			})

			a.Alternative("Remove missing record", func(a *biff.A) {
				resp := apiRequest("POST", "/collections/users:remove").
					WithBodyJson(JSON{"id": 99}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(len(findAll()), 2)
			})

			a.Alternative("Patch", func(a *biff.A) {
				resp := apiRequest("POST", "/collections/users:patch").
					WithBodyJson(JSON{
						"id":    2,
						"patch": JSON{"address.city": "Madrid"},
					}).Do()
				Save(resp, "Patch", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"id":      2,
					"name":    "b",
					"address": JSON{"city": "Madrid"},
				})
			})

			a.Alternative("Find with filter", func(a *biff.A) {
				resp := apiRequest("POST", "/collections/users:find").
					WithBodyJson(JSON{
						"filter": JSON{"name": "b"},
						"fields": []string{"name"},
					}).Do()
				Save(resp, "Find - filter", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{"id": 2, "name": "b"})
			})
		})

		a.Alternative("Insert with identity", func(a *biff.A) {
			resp := apiRequest("POST", "/collections/users:insert").
				WithBodyJson(JSON{"id": 10, "name": "x"}).Do()
			Save(resp, "Insert - explicit identity", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			biff.AssertEqualJson(resp.BodyJson(), JSON{"id": 10, "name": "x"})

			a.Alternative("Then without identity", func(a *biff.A) {
				resp := apiRequest("POST", "/collections/users:insert").
					WithBodyJson(JSON{"name": "y"}).Do()

				biff.AssertEqualJson(resp.BodyJson(), JSON{"id": 11, "name": "y"})
			})

			a.Alternative("Lower identity, then without identity", func(a *biff.A) {
				apiRequest("POST", "/collections/users:insert").
					WithBodyJson(JSON{"id": 2}).Do()
				resp := apiRequest("POST", "/collections/users:insert").
					WithBodyJson(JSON{"name": "y"}).Do()

				biff.AssertEqualJson(resp.BodyJson(), JSON{"id": 11, "name": "y"})
			})

			a.Alternative("Duplicated identity in the middle of a stream", func(a *biff.A) {
				resp := apiRequest("POST", "/collections/users:insert").
					WithBodyString(ndjson(
						JSON{"name": "y"},
						JSON{"id": 10, "name": "again"},
						JSON{"name": "z"},
					)).Do()
				Save(resp, "Insert many - error after the first record", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusCreated)
				biff.AssertEqualJson(readLines(resp.BodyString()), []JSON{
					{"id": 11, "name": "y"},
					{"error": JSON{"message": "duplicate identity value violates unique constraint"}},
				})
				biff.AssertEqualJson(findAll(), []JSON{
					{"id": 10, "name": "x"},
					{"id": 11, "name": "y"},
				})
			})

			a.Alternative("Duplicated identity", func(a *biff.A) {
				resp := apiRequest("POST", "/collections/users:insert").
					WithBodyJson(JSON{"id": 10, "name": "other"}).Do()
				Save(resp, "Insert - unique constraint violation", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusConflict)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"error": JSON{
						"message":     "duplicate identity value violates unique constraint",
						"description": "choose another identity value or omit it",
					},
				})
				biff.AssertEqualJson(findAll(), []JSON{
					{"id": 10, "name": "x"},
				})
			})
		})

		a.Alternative("Insert invalid identity", func(a *biff.A) {
			resp := apiRequest("POST", "/collections/users:insert").
				WithBodyJson(JSON{"id": "ten"}).Do()
			Save(resp, "Insert - invalid identity", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Insert nothing", func(a *biff.A) {
			resp := apiRequest("POST", "/collections/users:insert").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)
		})

		a.Alternative("Insert malformed", func(a *biff.A) {
			resp := apiRequest("POST", "/collections/users:insert").
				WithBodyString(`{"name": `).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})
	})

	a.Alternative("Insert into a new collection", func(a *biff.A) {
		resp := apiRequest("POST", "/collections/posts:insert").
			WithBodyJson(JSON{"title": "hello"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{"id": 1, "title": "hello"})

		resp = apiRequest("GET", "/collections/posts").Do()
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"name":     "posts",
			"identity": "id",
			"total":    1,
			"last_id":  1,
		})
	})

	a.Alternative("Find in missing collection", func(a *biff.A) {
		resp := apiRequest("POST", "/collections/nope:find").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})
}
