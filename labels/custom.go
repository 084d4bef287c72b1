/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package labels

import (
	"encoding/json"
	"strings"

	"chainguard.dev/semanticpr/failure"
)

// BreakingKey is the custom_labels key whose labels apply to breaking changes.
const BreakingKey = "breaking"

// CustomLabels maps a commit type (or BreakingKey) to extra labels.
type CustomLabels map[string][]string

// ParseCustomLabels decodes the custom_labels input: a JSON object whose
// values are a label or a list of labels. An empty input means none.
func ParseCustomLabels(raw string) (CustomLabels, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, invalidCustomLabels()
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, invalidCustomLabels()
	}

	custom := make(CustomLabels, len(obj))
	for key, value := range obj {
		switch value := value.(type) {
		case string:
			custom[key] = []string{value}
		case []any:
			names := make([]string, 0, len(value))
			for _, item := range value {
				name, ok := item.(string)
				if !ok {
					return nil, invalidCustomLabels()
				}
				names = append(names, name)
			}
			custom[key] = names
		default:
			return nil, invalidCustomLabels()
		}
	}
	return custom, nil
}

func invalidCustomLabels() error {
	return failure.New(failure.InvalidConfig, "Invalid custom_labels input. Expecting a JSON object.")
}
