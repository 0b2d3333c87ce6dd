package apicollectionv1

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/memorydb/collection"
	"github.com/fulldump/memorydb/service"
)

type streamErrorDetail struct {
	Message string `json:"message"`
}

type streamError struct {
	Error streamErrorDetail `json:"error"`
}

// insert accepts one or many records (one JSON object after the other) and
// answers every created record, with its identity, in the same order.
// Once the first record is answered the status is already sent, so a later
// failure is written as an {"error": ...} line and the stream stops there.
func insert(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	s := GetServicer(ctx)
	collectionName := box.GetUrlParameter(ctx, "collectionName")
	col, err := s.GetCollection(collectionName)
	if err == service.ErrorCollectionNotFound {
		col, err = s.CreateCollection(collectionName, "")
	}
	if err != nil {
		return err
	}

	jsonReader := jsontext.NewDecoder(r.Body)
	jsonWriter := json.NewEncoder(w)

	for i := 0; ; i++ {

		record, err := createNext(jsonReader, col)
		if errors.Is(err, io.EOF) {
			if i == 0 {
				w.WriteHeader(http.StatusNoContent)
			}
			return nil
		}
		if err != nil {
			if i == 0 {
				return err
			}
			return jsonWriter.Encode(streamError{
				Error: streamErrorDetail{Message: err.Error()},
			})
		}

		if i == 0 {
			w.WriteHeader(http.StatusCreated)
		}
		err = jsonWriter.Encode(record)
		if err != nil {
			return err
		}
	}
}

// createNext decodes the next record of the stream and creates it. It
// returns io.EOF when the stream is over.
func createNext(jsonReader *jsontext.Decoder, col *collection.Collection) (collection.Record, error) {

	if jsonReader.PeekKind() == 0 {
		_, err := jsonReader.ReadToken()
		return nil, err
	}

	record := collection.Record{}
	err := json2.UnmarshalDecode(jsonReader, &record)
	if err != nil {
		return nil, err
	}

	_, err = col.Create(record)
	if err != nil {
		return nil, err
	}

	return record, nil
}
