// Copyright 2026 Gustavo C. Viegas. All rights reserved.

//go:build vksync_global

package vksync

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// checkBufferGlobal halts the process if a buffer barrier
// defines no queue family ownership transfer.
// Such a barrier is better expressed as a global barrier,
// which is cheaper.
func checkBufferGlobal(b *vk.BufferMemoryBarrier) {
	if b.SrcQueueFamilyIndex == b.DstQueueFamilyIndex {
		panic(fmt.Sprintf("vksync: buffer barrier on queue family %d transfers no ownership; use a global barrier", b.SrcQueueFamilyIndex))
	}
}

// checkImageGlobal halts the process if an image barrier
// defines neither a queue family ownership transfer nor a
// layout transition.
// Such a barrier is better expressed as a global barrier,
// which is cheaper.
func checkImageGlobal(b *vk.ImageMemoryBarrier) {
	if b.SrcQueueFamilyIndex == b.DstQueueFamilyIndex && b.OldLayout == b.NewLayout {
		panic(fmt.Sprintf("vksync: image barrier keeps layout %d and queue family %d; use a global barrier", b.OldLayout, b.SrcQueueFamilyIndex))
	}
}
