package apicollectionv1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/memorydb/collection"
)

// update overwrites the whole record stored under the identity of the body.
func update(ctx context.Context, r *http.Request) (collection.Record, error) {

	record := collection.Record{}
	err := json.NewDecoder(r.Body).Decode(&record)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	collectionName := box.GetUrlParameter(ctx, "collectionName")
	col, err := s.GetCollection(collectionName)
	if err != nil {
		return nil, err
	}

	err = col.Update(record)
	if err != nil {
		return nil, err
	}

	return record, nil
}
