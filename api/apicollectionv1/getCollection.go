package apicollectionv1

import (
	"context"

	"github.com/fulldump/box"
)

func getCollection(ctx context.Context) (*CollectionResponse, error) {

	s := GetServicer(ctx)

	collectionName := box.GetUrlParameter(ctx, "collectionName")

	collection, err := s.GetCollection(collectionName)
	if err != nil {
		return nil, err
	}

	return newCollectionResponse(collection), nil
}
