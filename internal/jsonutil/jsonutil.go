// Package jsonutil provides shared helpers for decoding JSON documents:
// error context wrapping and strict scalar conversion.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// Uint32 converts a raw JSON value to a uint32. Only bare integer literals in
// range are accepted: strings, null, booleans, fractions, exponents and
// negative numbers are rejected.
func Uint32(raw json.RawMessage) (uint32, error) {
	s := string(bytes.TrimSpace(raw))
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s is not a non-negative 32-bit integer", s)
	}
	return uint32(n), nil
}
