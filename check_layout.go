// Copyright 2026 Gustavo C. Viegas. All rights reserved.

//go:build vksync_layout

package vksync

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// checkMixedLayout halts the process if two accesses on
// the same side of an image barrier resolve to different
// layouts.
// All accesses on one side must agree on a single layout;
// callers needing genuinely different layouts must issue
// separate, ordered barriers.
// have is the layout resolved so far (undefined before
// the first access is visited), want the layout of the
// access being visited.
func checkMixedLayout(have, want vk.ImageLayout) {
	if have != vk.ImageLayoutUndefined && have != want {
		panic(fmt.Sprintf("vksync: mixed image layouts %d and %d on one side of a barrier", have, want))
	}
}
