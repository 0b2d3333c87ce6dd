package collection

import (
	"sync"

	"github.com/google/btree"
)

// Collection acts like a SQL table with an autoincrement primary key and a
// unique constraint on it.
type Collection struct {
	name     string
	identity string

	mutex      sync.RWMutex
	records    map[ID]Record
	keys       *btree.BTreeG[ID]
	primaryKey PrimaryKey
}

func NewCollection(name, identity string) *Collection {
	c := &Collection{
		name:     name,
		identity: identity,
	}
	c.reset()
	return c
}

func (c *Collection) Name() string {
	return c.name
}

// Identity returns the name of the primary key field (eg. "id").
func (c *Collection) Identity() string {
	return c.identity
}

// Create stores the record and returns its primary key. When the record
// already carries an identity value it is kept, otherwise a new one is
// assigned. In both cases the passed record ends up holding its ID.
func (c *Collection) Create(record Record) (ID, error) {

	id, ok, err := IdentityOf(record, c.identity)
	if err != nil {
		return 0, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if ok {
		return c.createWithID(id, record)
	}

	return c.createWithoutID(record), nil
}

func (c *Collection) createWithID(id ID, record Record) (ID, error) {

	if _, exists := c.records[id]; exists {
		return 0, ErrUniqueConstraintViolation
	}

	record[c.identity] = id
	c.insert(id, record)

	// Sync with the greatest key, not with id: explicit ids may arrive in any order
	maxID, _ := c.keys.Max()
	c.primaryKey.Set(maxID)

	return id, nil
}

func (c *Collection) createWithoutID(record Record) ID {
	id := c.primaryKey.Increment()
	record[c.identity] = id
	c.insert(id, record)
	return id
}

func (c *Collection) insert(id ID, record Record) {
	c.records[id] = record.clone()
	c.keys.ReplaceOrInsert(id)
}

// Update overwrites the record stored under the record identity. It does not
// check that the record existed before.
func (c *Collection) Update(record Record) error {

	id, ok, err := IdentityOf(record, c.identity)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMissingIdentity
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	record[c.identity] = id
	c.insert(id, record)

	return nil
}

// Delete removes the record with the same identity. Deleting a missing record
// is not an error.
func (c *Collection) Delete(record Record) error {

	id, ok, err := IdentityOf(record, c.identity)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMissingIdentity
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.records[id]; !exists {
		return nil
	}
	delete(c.records, id)
	c.keys.Delete(id)

	return nil
}

// All returns a copy of every record. Callers must not rely on the order.
func (c *Collection) All() []Record {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	result := make([]Record, 0, len(c.records))
	c.keys.Ascend(func(id ID) bool {
		result = append(result, c.records[id].clone())
		return true
	})

	return result
}

func (c *Collection) Get(id ID) (Record, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	record, exists := c.records[id]
	if !exists {
		return nil, false
	}
	return record.clone(), true
}

// Modify replaces the record stored under id with the result of f, holding
// the table lock for the whole read-modify-write. The identity of the result
// is forced to id.
func (c *Collection) Modify(id ID, f func(record Record) (Record, error)) (Record, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	current, exists := c.records[id]
	if !exists {
		return nil, ErrRecordNotFound
	}

	modified, err := f(current.clone())
	if err != nil {
		return nil, err
	}
	if modified == nil {
		modified = Record{}
	}

	modified[c.identity] = id
	c.insert(id, modified)

	return modified.clone(), nil
}

func (c *Collection) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.records)
}

// LastID is the current value of the primary key counter.
func (c *Collection) LastID() ID {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.primaryKey.Current()
}

// Clear deletes all the records and resets the primary key counter, like
// dropping and creating the table again.
func (c *Collection) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.reset()
}

func (c *Collection) reset() {
	c.records = map[ID]Record{}
	c.keys = btree.NewOrderedG[ID](32)
	c.primaryKey.Reset()
}
