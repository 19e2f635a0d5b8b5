// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vksync

import (
	vk "github.com/goki/vulkan"
)

// MemoryBarrier translates a GlobalBarrier into a set of
// source and destination pipeline stages and a
// vk.MemoryBarrier that can be used with Vulkan's
// synchronization commands.
//
// Resolution is a pure function of the barrier contents.
// The access lists are unordered sets: permuting them
// does not change the result. Empty lists resolve to zero
// masks; it is up to the caller to substitute pipeline
// defaults when recording (the Cmd* wrappers do so).
func MemoryBarrier(b GlobalBarrier) (srcStages, dstStages vk.PipelineStageFlags, mb vk.MemoryBarrier) {
	mb.SType = vk.StructureTypeMemoryBarrier
	for _, prev := range b.Prev {
		checkHazard(prev, len(b.Prev))
		info := &accessMap[prev]
		srcStages |= vk.PipelineStageFlags(info.stageMask)
		// A previous read needs no availability operation;
		// only writes must be flushed.
		if !prev.read() {
			mb.SrcAccessMask |= vk.AccessFlags(info.accessMask)
		}
	}
	for _, next := range b.Next {
		checkHazard(next, len(b.Next))
		info := &accessMap[next]
		dstStages |= vk.PipelineStageFlags(info.stageMask)
		mb.DstAccessMask |= vk.AccessFlags(info.accessMask)
	}
	return
}

// BufferMemoryBarrier translates a BufferBarrier into a
// set of source and destination pipeline stages and a
// vk.BufferMemoryBarrier that can be used with Vulkan's
// synchronization commands.
//
// The queue family indices, buffer handle and range are
// copied through unmodified. Mask resolution is identical
// to MemoryBarrier.
func BufferMemoryBarrier(b BufferBarrier) (srcStages, dstStages vk.PipelineStageFlags, bmb vk.BufferMemoryBarrier) {
	bmb.SType = vk.StructureTypeBufferMemoryBarrier
	bmb.SrcQueueFamilyIndex = b.SrcQueueFamilyIndex
	bmb.DstQueueFamilyIndex = b.DstQueueFamilyIndex
	bmb.Buffer = b.Buffer
	bmb.Offset = b.Offset
	bmb.Size = b.Size
	for _, prev := range b.Prev {
		checkHazard(prev, len(b.Prev))
		info := &accessMap[prev]
		srcStages |= vk.PipelineStageFlags(info.stageMask)
		if !prev.read() {
			bmb.SrcAccessMask |= vk.AccessFlags(info.accessMask)
		}
	}
	for _, next := range b.Next {
		checkHazard(next, len(b.Next))
		info := &accessMap[next]
		dstStages |= vk.PipelineStageFlags(info.stageMask)
		bmb.DstAccessMask |= vk.AccessFlags(info.accessMask)
	}
	checkBufferGlobal(&bmb)
	return
}

// ImageMemoryBarrier translates an ImageBarrier into a
// set of source and destination pipeline stages and a
// vk.ImageMemoryBarrier that can be used with Vulkan's
// synchronization commands.
//
// In addition to the masks, it computes the old and new
// image layouts from each side's accesses and Layout
// option. When a side lists more than one access, all of
// them must agree on a single layout; issue separate,
// ordered barriers if genuinely different layouts are
// needed. Setting DiscardContents forces the old layout
// to undefined, which permits a cheaper transition when
// the image contents need not be preserved.
func ImageMemoryBarrier(b ImageBarrier) (srcStages, dstStages vk.PipelineStageFlags, imb vk.ImageMemoryBarrier) {
	imb.SType = vk.StructureTypeImageMemoryBarrier
	imb.SrcQueueFamilyIndex = b.SrcQueueFamilyIndex
	imb.DstQueueFamilyIndex = b.DstQueueFamilyIndex
	imb.Image = b.Image
	imb.SubresourceRange = b.SubresourceRange
	for _, prev := range b.Prev {
		checkHazard(prev, len(b.Prev))
		info := &accessMap[prev]
		srcStages |= vk.PipelineStageFlags(info.stageMask)
		if !prev.read() {
			imb.SrcAccessMask |= vk.AccessFlags(info.accessMask)
		}
		if b.DiscardContents {
			imb.OldLayout = vk.ImageLayoutUndefined
		} else {
			layout := layoutFor(b.PrevLayout, prev)
			checkMixedLayout(imb.OldLayout, layout)
			imb.OldLayout = layout
		}
	}
	for _, next := range b.Next {
		checkHazard(next, len(b.Next))
		info := &accessMap[next]
		dstStages |= vk.PipelineStageFlags(info.stageMask)
		imb.DstAccessMask |= vk.AccessFlags(info.accessMask)
		layout := layoutFor(b.NextLayout, next)
		checkMixedLayout(imb.NewLayout, layout)
		imb.NewLayout = layout
	}
	checkImageGlobal(&imb)
	return
}

// layoutFor returns the Vulkan image layout that a given
// access uses under a given Layout option.
//
// Note the asymmetry: LayoutGeneral branches on
// AccessPresent because ordinary images cannot be
// presented from the general layout, while
// LayoutGeneralAndPresentation applies to shared
// presentable images, whose single layout serves every
// access.
func layoutFor(l Layout, t AccessType) vk.ImageLayout {
	switch l {
	case LayoutOptimal:
		return accessMap[t].imageLayout
	case LayoutGeneral:
		if t == AccessPresent {
			return vk.ImageLayoutPresentSrc
		}
		return vk.ImageLayoutGeneral
	case LayoutGeneralAndPresentation:
		return vk.ImageLayoutSharedPresent
	}

	// Expected to be unreachable.
	return vk.ImageLayoutUndefined
}
