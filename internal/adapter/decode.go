// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// resultsEnvelope is the common vPIC response wrapper. Results is kept raw
// so its shape can be checked before decoding.
type resultsEnvelope struct {
	Count          int             `json:"Count"`
	Message        string          `json:"Message"`
	SearchCriteria *string         `json:"SearchCriteria"`
	Results        json.RawMessage `json:"Results"`
}

var jsonNull = []byte("null")

// decodeResults decodes the "Results" array of a vPIC response body.
//
// A missing or null "Results" is an error when required is set and an empty
// slice otherwise. Anything but an array is [ErrMalformedResponse].
func decodeResults[T any](body []byte, required bool) ([]T, error) {
	var envelope resultsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	raw := bytes.TrimSpace(envelope.Results)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		if required {
			return nil, fmt.Errorf("%w: Results is missing", ErrMalformedResponse)
		}
		return []T{}, nil
	}

	if raw[0] != '[' {
		return nil, fmt.Errorf("%w: Results is not an array", ErrMalformedResponse)
	}

	items := make([]T, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return items, nil
}
