package req

import (
	"encoding/json"
	"errors"
	"io"
)

// Decode - reads one JSON value of type T from body
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	if body == nil {
		return payload, errors.New("empty body")
	}
	defer body.Close()

	dec := json.NewDecoder(io.LimitReader(body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}
