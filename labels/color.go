/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package labels

import (
	"fmt"
	"hash/fnv"
)

// ColorFor returns a stable six hex digit color for a label name, in the form
// the GitHub API expects (no leading '#').
func ColorFor(label string) string {
	h := fnv.New64a()
	h.Write([]byte(label))
	sum := h.Sum64()
	// Fold all 64 bits into 24 so every input byte influences every channel.
	return fmt.Sprintf("%06x", (sum^(sum>>24)^(sum>>48))&0xffffff)
}
