package apicollectionv1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/memorydb/collection"
)

// remove deletes the record with the identity of the body. Removing a
// missing record succeeds.
func remove(ctx context.Context, r *http.Request) error {

	record := collection.Record{}
	err := json.NewDecoder(r.Body).Decode(&record)
	if err != nil {
		return err
	}

	s := GetServicer(ctx)
	collectionName := box.GetUrlParameter(ctx, "collectionName")
	col, err := s.GetCollection(collectionName)
	if err != nil {
		return err
	}

	return col.Delete(record)
}
