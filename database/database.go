package database

import (
	"errors"
	"log"
	"sync"

	"github.com/fulldump/memorydb/collection"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

const DefaultIdentity = "id"

var ErrCollectionAlreadyExists = errors.New("collection already exists")
var ErrCollectionNotFound = errors.New("collection not found")

type Config struct {
	DefaultIdentity string
}

// Database holds one collection per logical table.
type Database struct {
	config      *Config
	status      string
	statusMutex sync.RWMutex
	collections map[string]*collection.Collection
	mutex       sync.RWMutex
	exit        chan struct{}
	stopOnce    sync.Once
}

func NewDatabase(config *Config) *Database {
	if config == nil {
		config = &Config{}
	}
	if config.DefaultIdentity == "" {
		config.DefaultIdentity = DefaultIdentity
	}

	return &Database{
		config:      config,
		status:      StatusOpening,
		collections: map[string]*collection.Collection{},
		exit:        make(chan struct{}),
	}
}

func (db *Database) GetStatus() string {
	db.statusMutex.RLock()
	defer db.statusMutex.RUnlock()
	return db.status
}

func (db *Database) setStatus(status string) {
	db.statusMutex.Lock()
	db.status = status
	db.statusMutex.Unlock()
}

// CreateCollection registers a new table. An empty identity means the
// configured default primary key field.
func (db *Database) CreateCollection(name, identity string) (*collection.Collection, error) {

	if identity == "" {
		identity = db.config.DefaultIdentity
	}

	db.mutex.Lock()
	defer db.mutex.Unlock()

	if _, exists := db.collections[name]; exists {
		return nil, ErrCollectionAlreadyExists
	}

	col := collection.NewCollection(name, identity)
	db.collections[name] = col

	return col, nil
}

func (db *Database) GetCollection(name string) (*collection.Collection, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	col, exists := db.collections[name]
	if !exists {
		return nil, ErrCollectionNotFound
	}

	return col, nil
}

// ListCollections returns a snapshot of the registered collections.
func (db *Database) ListCollections() map[string]*collection.Collection {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	result := make(map[string]*collection.Collection, len(db.collections))
	for name, col := range db.collections {
		result[name] = col
	}

	return result
}

func (db *Database) DropCollection(name string) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	col, exists := db.collections[name]
	if !exists {
		return ErrCollectionNotFound
	}

	delete(db.collections, name)
	col.Clear()

	return nil
}

// Load makes the database operational. Nothing is read from disk, all the
// data lives in memory.
func (db *Database) Load() error {
	log.Println("Database ready, default identity:", db.config.DefaultIdentity)
	db.setStatus(StatusOperating)
	return nil
}

func (db *Database) Start() error {

	err := db.Load()
	if err != nil {
		return err
	}

	<-db.exit

	return nil
}

// Stop empties every collection, the same way a real adapter would
// disconnect from its database.
func (db *Database) Stop() error {

	db.setStatus(StatusClosing)

	db.mutex.Lock()
	for name, col := range db.collections {
		log.Printf("Closing '%s' (%d records)...\n", name, col.Len())
		col.Clear()
	}
	db.collections = map[string]*collection.Collection{}
	db.mutex.Unlock()

	db.stopOnce.Do(func() {
		close(db.exit)
	})

	return nil
}
