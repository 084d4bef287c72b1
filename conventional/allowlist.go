/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package conventional

import (
	"encoding/json"
	"slices"
	"strings"

	"chainguard.dev/semanticpr/failure"
)

// Input names, as they appear in failure messages.
const (
	TaskTypesInput  = "task_types"
	ScopeTypesInput = "scope_types"
)

// AllowList is an ordered list of accepted values. An empty list accepts nothing.
type AllowList []string

// Contains reports whether s is in the list.
func (l AllowList) Contains(s string) bool {
	return slices.Contains(l, s)
}

// String joins the entries with ", " in declared order.
func (l AllowList) String() string {
	return strings.Join(l, ", ")
}

// ParseAllowList decodes raw, the value of the named input, as a JSON array of
// strings. An empty raw value is a missing input; any other shape is an
// invalid one.
func ParseAllowList(input, raw string) (AllowList, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, failure.New(failure.MissingInput, "Missing required input: %s", input)
	}

	// Decode loosely first so that null, objects and mixed arrays are all
	// rejected rather than coerced.
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, invalidArray(input)
	}
	items, ok := v.([]any)
	if !ok {
		return nil, invalidArray(input)
	}

	list := make(AllowList, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, invalidArray(input)
		}
		list = append(list, s)
	}
	return list, nil
}

func invalidArray(input string) error {
	return failure.New(failure.InvalidConfig, "Invalid %s input. Expecting a JSON array.", input)
}
