package apicollectionv1

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/memorydb/collection"
)

type patchRequest struct {
	Id    collection.ID  `json:"id"`
	Patch map[string]any `json:"patch"`
}

func patch(ctx context.Context, input *patchRequest) (collection.Record, error) {

	s := GetServicer(ctx)
	collectionName := box.GetUrlParameter(ctx, "collectionName")

	if input.Id == 0 {
		return nil, collection.ErrMissingIdentity
	}

	return s.Patch(collectionName, input.Id, input.Patch)
}
