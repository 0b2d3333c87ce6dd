package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SierraSoftworks/connor"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/fulldump/memorydb/collection"
	"github.com/fulldump/memorydb/database"
	"github.com/fulldump/memorydb/utils"
)

var ErrIdentityImmutable = errors.New("identity field can not be patched")

type Service struct {
	db *database.Database
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) CreateCollection(name, identity string) (*collection.Collection, error) {
	return s.db.CreateCollection(name, identity)
}

func (s *Service) GetCollection(name string) (*collection.Collection, error) {
	return s.db.GetCollection(name)
}

func (s *Service) ListCollections() map[string]*collection.Collection {
	return s.db.ListCollections()
}

func (s *Service) DeleteCollection(name string) error {
	return s.db.DropCollection(name)
}

// FindQuery selects records with a mongo-like filter. Fields, when present,
// are gjson paths projected into the output (the identity is always kept).
type FindQuery struct {
	Filter map[string]interface{} `json:"filter"`
	Skip   int64                  `json:"skip"`
	Limit  int64                  `json:"limit"`
	Fields []string               `json:"fields"`
}

func NewFindQuery() *FindQuery {
	return &FindQuery{
		Filter: map[string]interface{}{},
		Skip:   0,
		Limit:  1,
	}
}

// Find traverses the records of a collection calling f with the JSON of each
// match until f returns false. A negative limit means no limit.
func (s *Service) Find(name string, query *FindQuery, f func(payload json.RawMessage) bool) error {

	col, err := s.db.GetCollection(name)
	if err != nil {
		return err
	}

	if query == nil {
		query = NewFindQuery()
	}

	hasFilter := len(query.Filter) > 0

	skip := query.Skip
	limit := query.Limit
	for _, record := range col.All() {

		if limit == 0 {
			break
		}

		if hasFilter {
			rowData := map[string]interface{}{}
			err := utils.Remarshal(record, &rowData)
			if err != nil {
				return fmt.Errorf("normalize record: %w", err)
			}

			match, err := connor.Match(query.Filter, rowData)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("json encode record: %w", err)
		}

		if len(query.Fields) > 0 {
			payload, err = project(payload, col.Identity(), query.Fields)
			if err != nil {
				return err
			}
		}

		limit--
		if !f(payload) {
			break
		}
	}

	return nil
}

func project(payload []byte, identity string, fields []string) ([]byte, error) {

	result := []byte(`{}`)
	for _, field := range append([]string{identity}, fields...) {
		value := gjson.GetBytes(payload, field)
		if !value.Exists() {
			continue
		}

		var err error
		result, err = sjson.SetRawBytes(result, field, []byte(value.Raw))
		if err != nil {
			return nil, fmt.Errorf("project field '%s': %w", field, err)
		}
	}

	return result, nil
}

// Patch sets every path of diff (sjson syntax, eg. "address.city") in the
// record with the given id.
func (s *Service) Patch(name string, id collection.ID, diff map[string]any) (collection.Record, error) {

	col, err := s.db.GetCollection(name)
	if err != nil {
		return nil, err
	}

	for _, path := range utils.GetKeys(diff) {
		if path == col.Identity() {
			return nil, ErrIdentityImmutable
		}
	}

	return col.Modify(id, func(record collection.Record) (collection.Record, error) {

		payload, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("json encode record: %w", err)
		}

		for _, path := range utils.GetKeys(diff) {
			payload, err = sjson.SetBytes(payload, path, diff[path])
			if err != nil {
				return nil, fmt.Errorf("patch '%s': %w", path, err)
			}
		}

		patched := collection.Record{}
		err = json.Unmarshal(payload, &patched)
		if err != nil {
			return nil, fmt.Errorf("json decode record: %w", err)
		}

		return patched, nil
	})
}
