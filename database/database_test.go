package database

import (
	"testing"
	"time"

	"github.com/fulldump/biff"

	"github.com/fulldump/memorydb/collection"
)

func TestDatabase(t *testing.T) {

	biff.Alternative("Database", func(a *biff.A) {

		db := NewDatabase(&Config{})
		biff.AssertEqual(db.GetStatus(), StatusOpening)
		biff.AssertNil(db.Load())
		biff.AssertEqual(db.GetStatus(), StatusOperating)

		users, err := db.CreateCollection("users", "")
		biff.AssertNil(err)
		biff.AssertEqual(users.Identity(), "id")

		a.Alternative("Custom identity", func(a *biff.A) {
			books, err := db.CreateCollection("books", "isbn")
			biff.AssertNil(err)
			biff.AssertEqual(books.Identity(), "isbn")
			biff.AssertEqual(len(db.ListCollections()), 2)
		})

		a.Alternative("Duplicated", func(a *biff.A) {
			_, err := db.CreateCollection("users", "")
			biff.AssertEqual(err, ErrCollectionAlreadyExists)
		})

		a.Alternative("Get", func(a *biff.A) {
			col, err := db.GetCollection("users")
			biff.AssertNil(err)
			biff.AssertTrue(col == users)
		})

		a.Alternative("Get missing", func(a *biff.A) {
			_, err := db.GetCollection("nope")
			biff.AssertEqual(err, ErrCollectionNotFound)
		})

		a.Alternative("Collections are independent", func(a *biff.A) {
			books, _ := db.CreateCollection("books", "")
			users.Create(collection.Record{"id": 40})

			id, err := books.Create(collection.Record{})
			biff.AssertNil(err)
			biff.AssertEqual(id, collection.ID(1))
		})

		a.Alternative("Drop", func(a *biff.A) {
			biff.AssertNil(db.DropCollection("users"))
			_, err := db.GetCollection("users")
			biff.AssertEqual(err, ErrCollectionNotFound)
			biff.AssertEqual(db.DropCollection("users"), ErrCollectionNotFound)
		})
	})
}

func TestDatabase_StartStop(t *testing.T) {

	db := NewDatabase(nil)

	done := make(chan error)
	go func() {
		done <- db.Start()
	}()

	for db.GetStatus() != StatusOperating {
		time.Sleep(time.Millisecond)
	}

	col, _ := db.CreateCollection("users", "")
	col.Create(collection.Record{"name": "a"})

	biff.AssertNil(db.Stop())
	biff.AssertNil(<-done)

	biff.AssertEqual(db.GetStatus(), StatusClosing)
	biff.AssertEqual(col.Len(), 0)
	biff.AssertEqual(len(db.ListCollections()), 0)

	// Stop twice does not panic
	biff.AssertNil(db.Stop())
}
