package collection

import (
	"encoding/json"
	"testing"

	"github.com/fulldump/biff"
)

func TestIdentityOf(t *testing.T) {

	biff.Alternative("IdentityOf", func(a *biff.A) {

		a.Alternative("Absent", func(a *biff.A) {
			_, ok, err := IdentityOf(Record{"name": "a"}, "id")
			biff.AssertNil(err)
			biff.AssertFalse(ok)
		})

		a.Alternative("Nil", func(a *biff.A) {
			_, ok, err := IdentityOf(Record{"id": nil}, "id")
			biff.AssertNil(err)
			biff.AssertFalse(ok)
		})

		a.Alternative("Zero", func(a *biff.A) {
			_, ok, err := IdentityOf(Record{"id": 0}, "id")
			biff.AssertNil(err)
			biff.AssertFalse(ok)
		})

		a.Alternative("Int", func(a *biff.A) {
			id, ok, err := IdentityOf(Record{"id": 7}, "id")
			biff.AssertNil(err)
			biff.AssertTrue(ok)
			biff.AssertEqual(id, ID(7))
		})

		a.Alternative("Float from JSON", func(a *biff.A) {
			id, ok, err := IdentityOf(Record{"id": float64(10)}, "id")
			biff.AssertNil(err)
			biff.AssertTrue(ok)
			biff.AssertEqual(id, ID(10))
		})

		a.Alternative("json.Number", func(a *biff.A) {
			id, ok, err := IdentityOf(Record{"id": json.Number("42")}, "id")
			biff.AssertNil(err)
			biff.AssertTrue(ok)
			biff.AssertEqual(id, ID(42))
		})

		a.Alternative("Custom identity field", func(a *biff.A) {
			id, ok, err := IdentityOf(Record{"id": 1, "uid": 3}, "uid")
			biff.AssertNil(err)
			biff.AssertTrue(ok)
			biff.AssertEqual(id, ID(3))
		})

		a.Alternative("Fractional", func(a *biff.A) {
			_, _, err := IdentityOf(Record{"id": 1.5}, "id")
			biff.AssertEqual(err, ErrInvalidIdentity)
		})

		a.Alternative("Negative", func(a *biff.A) {
			_, _, err := IdentityOf(Record{"id": -1}, "id")
			biff.AssertEqual(err, ErrInvalidIdentity)
		})

		a.Alternative("Float beyond int64", func(a *biff.A) {
			_, _, err := IdentityOf(Record{"id": float64(1 << 63)}, "id")
			biff.AssertEqual(err, ErrInvalidIdentity)
		})

		a.Alternative("Uint beyond int64", func(a *biff.A) {
			_, _, err := IdentityOf(Record{"id": uint64(1 << 63)}, "id")
			biff.AssertEqual(err, ErrInvalidIdentity)
		})

		a.Alternative("String", func(a *biff.A) {
			_, _, err := IdentityOf(Record{"id": "abc"}, "id")
			biff.AssertEqual(err, ErrInvalidIdentity)
		})
	})
}
