package collection

import (
	"encoding/json"
	"math"
	"strconv"
)

// ID is the primary key of a record. Zero means "not assigned".
type ID int64

type Record map[string]any

// IdentityOf resolves the identity field of a record. A missing field, a nil
// value or a zero value are reported as unset (ok == false). Integral numbers
// of any Go numeric type, json.Number included, are accepted.
func IdentityOf(record Record, field string) (id ID, ok bool, err error) {

	value, exists := record[field]
	if !exists || value == nil {
		return 0, false, nil
	}

	switch v := value.(type) {
	case ID:
		id = v
	case int:
		id = ID(v)
	case int8:
		id = ID(v)
	case int16:
		id = ID(v)
	case int32:
		id = ID(v)
	case int64:
		id = ID(v)
	case uint:
		id = ID(v)
	case uint8:
		id = ID(v)
	case uint16:
		id = ID(v)
	case uint32:
		id = ID(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, false, ErrInvalidIdentity
		}
		id = ID(v)
	case float32:
		return floatIdentity(float64(v))
	case float64:
		return floatIdentity(v)
	case json.Number:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return 0, false, ErrInvalidIdentity
		}
		id = ID(n)
	default:
		return 0, false, ErrInvalidIdentity
	}

	if id == 0 {
		return 0, false, nil
	}
	if id < 0 {
		return 0, false, ErrInvalidIdentity
	}

	return id, true, nil
}

func floatIdentity(f float64) (ID, bool, error) {
	if f == 0 {
		return 0, false, nil
	}
	if f < 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0, false, ErrInvalidIdentity
	}
	return ID(f), true, nil
}

func (r Record) clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}
