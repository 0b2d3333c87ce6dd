package service

import (
	"encoding/json"

	"github.com/fulldump/memorydb/collection"
	"github.com/fulldump/memorydb/database"
)

var ErrorCollectionNotFound = database.ErrCollectionNotFound
var ErrorCollectionAlreadyExists = database.ErrCollectionAlreadyExists

type Servicer interface {
	CreateCollection(name, identity string) (*collection.Collection, error)
	GetCollection(name string) (*collection.Collection, error)
	ListCollections() map[string]*collection.Collection
	DeleteCollection(name string) error
	Find(name string, query *FindQuery, f func(payload json.RawMessage) bool) error
	Patch(name string, id collection.ID, diff map[string]any) (collection.Record, error)
}
