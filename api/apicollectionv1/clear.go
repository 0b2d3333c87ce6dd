package apicollectionv1

import (
	"context"

	"github.com/fulldump/box"
)

// clear drops every record and resets the primary key, like truncating a
// table.
func clear(ctx context.Context) (*CollectionResponse, error) {

	s := GetServicer(ctx)
	collectionName := box.GetUrlParameter(ctx, "collectionName")
	col, err := s.GetCollection(collectionName)
	if err != nil {
		return nil, err
	}

	col.Clear()

	return newCollectionResponse(col), nil
}
