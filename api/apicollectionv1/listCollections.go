package apicollectionv1

import (
	"context"

	"github.com/fulldump/memorydb/utils"
)

func listCollections(ctx context.Context) []*CollectionResponse {

	s := GetServicer(ctx)
	collections := s.ListCollections()

	result := []*CollectionResponse{}
	for _, name := range utils.GetKeys(collections) {
		result = append(result, newCollectionResponse(collections[name]))
	}

	return result
}
