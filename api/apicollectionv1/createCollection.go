package apicollectionv1

import (
	"context"
	"net/http"
)

type createCollectionRequest struct {
	Name     string `json:"name"`
	Identity string `json:"identity"`
}

func createCollection(ctx context.Context, w http.ResponseWriter, input *createCollectionRequest) (*CollectionResponse, error) {

	s := GetServicer(ctx)

	collection, err := s.CreateCollection(input.Name, input.Identity)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return newCollectionResponse(collection), nil
}
