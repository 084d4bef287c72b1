/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package action runs the semantic pull request check as a GitHub Action
// step: it reads the step inputs and the triggering event, classifies the
// pull request title, validates its scope and an optional pattern, syncs
// labels, and reports the outcome back to the workflow run.
package action
