package apicollectionv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/memorydb/service"
)

func BuildV1Collection(v1 *box.R, s service.Servicer) *box.R {

	collections := v1.Resource("/collections").
		WithActions(
			box.Get(listCollections),
			box.Post(createCollection),
		)

	v1.Resource("/collections/{collectionName}").
		WithActions(
			box.Get(getCollection),
			box.ActionPost(insert),
			box.ActionPost(update),
			box.ActionPost(remove),
			box.ActionPost(find),
			box.ActionPost(patch),
			box.ActionPost(clear),
			box.ActionPost(dropCollection),
		)

	return collections
}
