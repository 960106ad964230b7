package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// decode reads a JSON request body into dst, rejecting unknown fields
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return NewInvalidRequestError("invalid request body")
	}
	return nil
}

func parseInt64(s string, dst *int64) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return NewInvalidRequestError("bet must be an integer")
	}
	*dst = v
	return nil
}
