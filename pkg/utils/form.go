package utils

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidField = errors.New("invalid field")
)

// FormString returns a trimmed, non-empty form value.
func FormString(r *http.Request, key string) (string, error) {
	value := strings.TrimSpace(r.FormValue(key))
	if value == "" {
		return "", fieldError(ErrMissingField, key)
	}
	return value, nil
}

func FormInt(r *http.Request, key string) (int, error) {
	raw, err := FormString(r, key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fieldError(ErrInvalidField, key)
	}
	return value, nil
}

func FormInt64(r *http.Request, key string) (int64, error) {
	raw, err := FormString(r, key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fieldError(ErrInvalidField, key)
	}
	return value, nil
}

// FormInts parses every value submitted under key.
func FormInts(r *http.Request, key string) ([]int, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fieldError(ErrInvalidField, key)
	}
	raw := r.Form[key]
	if len(raw) == 0 {
		return nil, fieldError(ErrMissingField, key)
	}
	values := make([]int, 0, len(raw))
	for _, v := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fieldError(ErrInvalidField, key)
		}
		values = append(values, n)
	}
	return values, nil
}

func fieldError(err error, key string) error {
	return &FieldError{Field: key, err: err}
}

type FieldError struct {
	Field string
	err   error
}

func (e *FieldError) Error() string {
	return e.err.Error() + ": " + e.Field
}

func (e *FieldError) Unwrap() error {
	return e.err
}
