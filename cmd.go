// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package vksync

import (
	vk "github.com/goki/vulkan"
)

// CmdPipelineBarrier is a simplified wrapper around
// vk.CmdPipelineBarrier.
//
// The barrier definitions are translated into pipeline
// stages and native Vulkan memory barriers by the
// corresponding mapping functions, with the stage masks
// of all barriers combined into a single pair. A source
// or destination mask that resolves to zero (e.g., when
// every previous access is AccessNone) is replaced by the
// top or bottom of pipe stage, respectively.
//
// global may be nil if no global barrier is needed.
// cb is passed unmodified to vk.CmdPipelineBarrier.
func CmdPipelineBarrier(cb vk.CommandBuffer, global *GlobalBarrier, buffer []BufferBarrier, image []ImageBarrier) {
	srcStages, dstStages, mbs, bmbs, imbs := resolveAll(global, buffer, image)
	vk.CmdPipelineBarrier(cb, srcStages, dstStages, 0,
		uint32(len(mbs)), mbs,
		uint32(len(bmbs)), bmbs,
		uint32(len(imbs)), imbs)
}

// CmdSetEvent is a wrapper around vk.CmdSetEvent.
//
// The event is set when the accesses defined by prev
// complete. An empty prev sets the event at the top of
// the pipe.
//
// cb and ev are passed unmodified to vk.CmdSetEvent.
func CmdSetEvent(cb vk.CommandBuffer, ev vk.Event, prev []AccessType) {
	vk.CmdSetEvent(cb, ev, prevStages(prev))
}

// CmdResetEvent is a wrapper around vk.CmdResetEvent.
//
// The event is reset when the accesses defined by prev
// complete. An empty prev resets the event at the top of
// the pipe.
//
// cb and ev are passed unmodified to vk.CmdResetEvent.
func CmdResetEvent(cb vk.CommandBuffer, ev vk.Event, prev []AccessType) {
	vk.CmdResetEvent(cb, ev, prevStages(prev))
}

// CmdWaitEvents is a simplified wrapper around
// vk.CmdWaitEvents.
//
// Barrier definitions are translated exactly as in
// CmdPipelineBarrier.
//
// cb and evs are passed unmodified to vk.CmdWaitEvents.
func CmdWaitEvents(cb vk.CommandBuffer, evs []vk.Event, global *GlobalBarrier, buffer []BufferBarrier, image []ImageBarrier) {
	srcStages, dstStages, mbs, bmbs, imbs := resolveAll(global, buffer, image)
	vk.CmdWaitEvents(cb, uint32(len(evs)), evs, srcStages, dstStages,
		uint32(len(mbs)), mbs,
		uint32(len(bmbs)), bmbs,
		uint32(len(imbs)), imbs)
}

// resolveAll translates a batch of barrier definitions
// into the parameters of a single native synchronization
// command.
// The returned slices are scratch storage owned by the
// caller of the Cmd* wrapper that is recording them; they
// are never retained nor shared.
func resolveAll(global *GlobalBarrier, buffer []BufferBarrier, image []ImageBarrier) (srcStages, dstStages vk.PipelineStageFlags, mbs []vk.MemoryBarrier, bmbs []vk.BufferMemoryBarrier, imbs []vk.ImageMemoryBarrier) {
	if global != nil {
		src, dst, mb := MemoryBarrier(*global)
		srcStages |= src
		dstStages |= dst
		mbs = []vk.MemoryBarrier{mb}
	}
	if len(buffer) > 0 {
		bmbs = make([]vk.BufferMemoryBarrier, len(buffer))
		for i := range buffer {
			src, dst, bmb := BufferMemoryBarrier(buffer[i])
			srcStages |= src
			dstStages |= dst
			bmbs[i] = bmb
		}
	}
	if len(image) > 0 {
		imbs = make([]vk.ImageMemoryBarrier, len(image))
		for i := range image {
			src, dst, imb := ImageMemoryBarrier(image[i])
			srcStages |= src
			dstStages |= dst
			imbs[i] = imb
		}
	}
	if srcStages == 0 {
		srcStages = vk.PipelineStageFlags(vk.PipelineStageTopOfPipeBit)
	}
	if dstStages == 0 {
		dstStages = vk.PipelineStageFlags(vk.PipelineStageBottomOfPipeBit)
	}
	return
}

// prevStages computes the combined stage mask of a set of
// previous accesses for event signaling.
func prevStages(prev []AccessType) (stages vk.PipelineStageFlags) {
	for _, p := range prev {
		stages |= vk.PipelineStageFlags(accessMap[p].stageMask)
	}
	if stages == 0 {
		stages = vk.PipelineStageFlags(vk.PipelineStageTopOfPipeBit)
	}
	return
}
