/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package conventional classifies pull request titles written in the
// Conventional Commits style and enforces type and scope allow-lists.
//
// A title has the shape
//
//	<type>[(<scope>)][!]: <description>
//
// where the optional "!" marks a breaking change. Only the title is
// inspected; the description and any commit footers are not.
//
// # Basic Usage
//
//	types, err := conventional.ParseAllowList(conventional.TaskTypesInput, `["feat","fix"]`)
//	if err != nil {
//	    return err // Missing required input / Invalid task_types input
//	}
//	detail, err := conventional.Classify("feat(api)!: drop v1 routes", types)
//	if err != nil {
//	    return err // Invalid pull request title ...
//	}
//	// detail.Type == "feat", *detail.Scope == "api", detail.Breaking == true
//
//	if err := conventional.ValidateScope(detail, `["api","ui"]`); err != nil {
//	    return err // Invalid or missing scope ...
//	}
package conventional
