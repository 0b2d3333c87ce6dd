package apicollectionv1

import (
	"github.com/fulldump/memorydb/collection"
)

type CollectionResponse struct {
	Name     string        `json:"name"`
	Identity string        `json:"identity"`
	Total    int           `json:"total"`
	LastId   collection.ID `json:"last_id"`
}

func newCollectionResponse(col *collection.Collection) *CollectionResponse {
	return &CollectionResponse{
		Name:     col.Name(),
		Identity: col.Identity(),
		Total:    col.Len(),
		LastId:   col.LastID(),
	}
}
