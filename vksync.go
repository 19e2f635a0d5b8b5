// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package vksync simplifies the core synchronization
// mechanisms of Vulkan - pipeline barriers and events.
//
// Rather than the maze of stage, access and layout
// combinations of the raw API - many of which are invalid
// or nonsensical - vksync collapses resource usage to a
// short list of distinct access types, plus a couple of
// options for handling image layouts. The MemoryBarrier,
// BufferMemoryBarrier and ImageMemoryBarrier functions
// translate these descriptions into the exact pipeline
// stages, access masks and layout transitions that the
// native barrier commands expect, and the Cmd* wrappers
// record them directly.
//
// Synchronization mechanisms that order work across
// queues or with the host, such as semaphores and fences,
// are separate concerns and not addressed here. Execution
// only dependencies, which provide ordering but no memory
// visibility, cannot be expressed either.
//
// By default, as with Vulkan itself, no validation is
// performed. The build tags vksync_hazard, vksync_global
// and vksync_layout independently enable checks that halt
// the process when a barrier definition is found to be
// wrong (see the check files for what each one detects).
package vksync

import (
	vk "github.com/goki/vulkan"
)

// Layout determines how image layouts are chosen for the
// accesses on one side of an image barrier.
// Rather than a list of all possible image layouts, this
// reduced set is correlated with the access types to map
// to the correct Vulkan layouts.
// LayoutOptimal is usually preferred.
type Layout int32

// Layout options.
const (
	// LayoutOptimal chooses the most optimal layout for
	// each usage. Layout transitions are performed as
	// appropriate for the access.
	LayoutOptimal Layout = iota

	// LayoutGeneral chooses a layout accessible by all
	// Vulkan access types on a device - no layout
	// transitions happen, except for presentation.
	LayoutGeneral

	// LayoutGeneralAndPresentation is like LayoutGeneral,
	// but also allows presentation engines to access the
	// image - no layout transitions happen at all.
	// It requires VK_KHR_shared_presentable_image and can
	// only be used with shared presentable images (i.e.,
	// single-buffered swapchains).
	LayoutGeneralAndPresentation
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case LayoutOptimal:
		return "LayoutOptimal"
	case LayoutGeneral:
		return "LayoutGeneral"
	case LayoutGeneralAndPresentation:
		return "LayoutGeneralAndPresentation"
	default:
		return "!vksync.Layout"
	}
}

// GlobalBarrier defines a set of accesses over multiple
// resources at once.
// If a buffer or image does not require a queue family
// ownership transfer, or an image does not require a
// layout transition (e.g., it uses one of the general
// layouts), then a global barrier should be preferred.
// Simply define the previous and next access types of the
// resources affected.
type GlobalBarrier struct {
	Prev []AccessType
	Next []AccessType
}

// BufferBarrier defines accesses on a buffer range.
// It should only be used when a queue family ownership
// transfer is required - prefer global barriers at all
// other times.
//
// Access types are defined in the same way as for a
// global barrier, but they only affect the buffer range
// identified by Buffer, Offset and Size, rather than all
// resources.
// SrcQueueFamilyIndex, DstQueueFamilyIndex, Buffer,
// Offset and Size are passed unmodified into a
// vk.BufferMemoryBarrier.
//
// A barrier defining a queue family ownership transfer
// needs to be executed twice - once by a queue in the
// source family and then again by a queue in the
// destination family, with a semaphore guaranteeing
// execution order between them.
type BufferBarrier struct {
	Prev []AccessType
	Next []AccessType

	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              vk.Buffer
	Offset              vk.DeviceSize
	Size                vk.DeviceSize
}

// ImageBarrier defines accesses on an image subresource
// range.
// It should only be used when a queue family ownership
// transfer or a layout transition is required - prefer
// global barriers at all other times.
// In general it is better to use image barriers with
// LayoutOptimal than it is to use global barriers with
// images using either of the general layouts.
//
// Access types are defined in the same way as for a
// global barrier, but they only affect the subresource
// range identified by Image and SubresourceRange, rather
// than all resources.
// SrcQueueFamilyIndex, DstQueueFamilyIndex, Image and
// SubresourceRange are passed unmodified into a
// vk.ImageMemoryBarrier.
//
// If DiscardContents is set, the contents of the image
// become undefined after the barrier executes, which can
// result in a performance boost over attempting to
// preserve the contents. This is particularly useful for
// transient images where the contents are going to be
// immediately overwritten, such as a swapchain image that
// is reused right after acquisition.
type ImageBarrier struct {
	Prev []AccessType
	Next []AccessType

	PrevLayout          Layout
	NextLayout          Layout
	DiscardContents     bool
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               vk.Image
	SubresourceRange    vk.ImageSubresourceRange
}
