// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vksync_test

import (
	vk "github.com/goki/vulkan"

	"gviegas/vksync"
)

// Command buffer being recorded and resources created
// elsewhere.
var (
	cb    vk.CommandBuffer
	img   vk.Image
	ev    vk.Event
	color = vk.ImageSubresourceRange{
		AspectMask: vk.ImageAspectFlags(vk.ImageAspectColorBit),
		LevelCount: 1,
		LayerCount: 1,
	}
)

// Example_computeToDraw synchronizes a dispatch that
// writes vertex data with the draw that consumes it.
func Example_computeToDraw() {
	vksync.CmdPipelineBarrier(cb, &vksync.GlobalBarrier{
		Prev: []vksync.AccessType{vksync.AccessComputeShaderWrite},
		Next: []vksync.AccessType{vksync.AccessVertexBuffer},
	}, nil, nil)
}

// Example_presentation transitions a freshly rendered
// swapchain image for presentation.
func Example_presentation() {
	vksync.CmdPipelineBarrier(cb, nil, nil, []vksync.ImageBarrier{{
		Prev:                []vksync.AccessType{vksync.AccessColorAttachmentWrite},
		Next:                []vksync.AccessType{vksync.AccessPresent},
		PrevLayout:          vksync.LayoutOptimal,
		NextLayout:          vksync.LayoutOptimal,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               img,
		SubresourceRange:    color,
	}})
}

// Example_reacquire prepares a previously presented
// swapchain image for rendering again. The contents are
// about to be overwritten, so they are discarded to make
// the transition cheaper.
func Example_reacquire() {
	vksync.CmdPipelineBarrier(cb, nil, nil, []vksync.ImageBarrier{{
		Prev:                []vksync.AccessType{vksync.AccessPresent},
		Next:                []vksync.AccessType{vksync.AccessColorAttachmentWrite},
		PrevLayout:          vksync.LayoutOptimal,
		NextLayout:          vksync.LayoutOptimal,
		DiscardContents:     true,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               img,
		SubresourceRange:    color,
	}})
}

// Example_event splits the synchronization of a transfer
// from the draw that consumes its output, so unrelated
// work can overlap the copy.
func Example_event() {
	vksync.CmdSetEvent(cb, ev, []vksync.AccessType{vksync.AccessTransferWrite})
	// ... record unrelated work ...
	vksync.CmdWaitEvents(cb, []vk.Event{ev}, &vksync.GlobalBarrier{
		Prev: []vksync.AccessType{vksync.AccessTransferWrite},
		Next: []vksync.AccessType{vksync.AccessVertexBuffer},
	}, nil, nil)
}
