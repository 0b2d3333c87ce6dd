package apicollectionv1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/memorydb/service"
)

func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	query := service.NewFindQuery()
	if len(requestBody) > 0 {
		err = json.Unmarshal(requestBody, query)
		if err != nil {
			return err
		}
	}

	s := GetServicer(ctx)
	collectionName := box.GetUrlParameter(ctx, "collectionName")

	return s.Find(collectionName, query, func(payload json.RawMessage) bool {
		w.Write(payload)
		w.Write([]byte("\n"))
		return true
	})
}
