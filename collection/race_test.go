package collection

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fulldump/biff"
)

func TestRaceCreateAll(t *testing.T) {

	c := NewCollection("race", "id")

	var wg sync.WaitGroup
	wg.Add(2)

	start := time.Now()
	duration := 500 * time.Millisecond

	// Writer
	go func() {
		defer wg.Done()
		for i := 0; time.Since(start) < duration; i++ {
			_, err := c.Create(Record{"v": i})
			if err != nil {
				t.Error(err)
				return
			}
		}
	}()

	// Reader
	go func() {
		defer wg.Done()
		for time.Since(start) < duration {
			for _, record := range c.All() {
				_, ok, _ := IdentityOf(record, "id")
				if !ok {
					t.Error("record without identity")
					return
				}
			}
		}
	}()

	wg.Wait()
}

func TestCollection_Create_Concurrency(t *testing.T) {

	c := NewCollection("concurrent", "id")

	n := 100
	created := make(chan ID, 2*n)
	wg := &sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			id, err := c.Create(Record{"hello": "world"})
			if err != nil {
				t.Error(err)
				return
			}
			created <- id
		}()
		go func(i int) {
			defer wg.Done()
			id, err := c.Create(Record{"id": 1000 + i})
			if errors.Is(err, ErrUniqueConstraintViolation) {
				return // taken by an auto id
			}
			if err != nil {
				t.Error(err)
				return
			}
			created <- id
		}(i)
	}
	wg.Wait()
	close(created)

	maxID := ID(0)
	count := 0
	for id := range created {
		count++
		if id > maxID {
			maxID = id
		}
	}

	biff.AssertEqual(c.Len(), count)

	id, err := c.Create(Record{})
	biff.AssertNil(err)
	biff.AssertTrue(id > maxID)
}
