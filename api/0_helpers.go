package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/memorydb/collection"
	"github.com/fulldump/memorydb/database"
	"github.com/fulldump/memorydb/service"
)

var ErrUnavailable = errors.New("temporary unavailable")

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status == database.StatusOpening || status == database.StatusClosing {
				box.SetError(ctx, fmt.Errorf("%w: %s", ErrUnavailable, status))
				return
			}
			next(ctx)
		}
	}
}

type errorStatus struct {
	err         error
	status      int
	description string
}

var errorStatuses = []errorStatus{
	{ErrUnauthorized, http.StatusUnauthorized, "user is not authenticated"},
	{ErrUnavailable, http.StatusServiceUnavailable, "database is not operating, try again later"},
	{service.ErrorCollectionNotFound, http.StatusNotFound, "collection does not exist"},
	{collection.ErrRecordNotFound, http.StatusNotFound, "record does not exist"},
	{service.ErrorCollectionAlreadyExists, http.StatusConflict, "collection name is already taken"},
	{collection.ErrUniqueConstraintViolation, http.StatusConflict, "choose another identity value or omit it"},
	{collection.ErrMissingIdentity, http.StatusBadRequest, "record must carry its identity value"},
	{collection.ErrInvalidIdentity, http.StatusBadRequest, "identity must be a positive integer"},
	{service.ErrIdentityImmutable, http.StatusBadRequest, "identity field can not be modified"},
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		for _, e := range errorStatuses {
			if errors.Is(err, e.err) {
				writeError(w, e.status, err.Error(), e.description)
				return
			}
		}

		if err == box.ErrResourceNotFound {
			writeError(w, http.StatusNotFound, err.Error(),
				fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
			return
		}

		if err == box.ErrMethodNotAllowed {
			writeError(w, http.StatusMethodNotAllowed, err.Error(),
				fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
			return
		}

		var syntaxError *json.SyntaxError
		var syntacticError *jsontext.SyntacticError
		if errors.As(err, &syntaxError) || errors.As(err, &syntacticError) || errors.Is(err, io.ErrUnexpectedEOF) {
			writeError(w, http.StatusBadRequest, err.Error(), "Malformed JSON")
			return
		}

		writeError(w, http.StatusInternalServerError, err.Error(), "Unexpected error")
	}
}

func writeError(w http.ResponseWriter, status int, message, description string) {
	w.WriteHeader(status)
	PrettyError{
		Message:     message,
		Description: description,
	}.MarshalTo(w)
}
