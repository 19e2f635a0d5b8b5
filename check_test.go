// Copyright 2026 Gustavo C. Viegas. All rights reserved.

//go:build vksync_hazard && vksync_global && vksync_layout

package vksync

import (
	"testing"

	vk "github.com/goki/vulkan"
)

// mustPanic fails the test unless f panics.
func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s:\nhave no panic\nwant panic", name)
		}
	}()
	f()
}

func TestCheckHazard(t *testing.T) {
	mustPanic(t, "write alongside read", func() {
		MemoryBarrier(GlobalBarrier{
			Prev: []AccessType{AccessComputeShaderWrite, AccessComputeShaderReadOther},
			Next: []AccessType{AccessVertexBuffer},
		})
	})
	mustPanic(t, "two writes", func() {
		MemoryBarrier(GlobalBarrier{
			Next: []AccessType{AccessComputeShaderWrite, AccessTransferWrite},
		})
	})

	// A lone write and multiple reads are fine.
	MemoryBarrier(GlobalBarrier{
		Prev: []AccessType{AccessComputeShaderWrite},
		Next: []AccessType{AccessVertexBuffer, AccessIndexBuffer},
	})
}

func TestCheckGlobal(t *testing.T) {
	mustPanic(t, "buffer barrier without ownership transfer", func() {
		BufferMemoryBarrier(BufferBarrier{
			Prev:                []AccessType{AccessTransferWrite},
			Next:                []AccessType{AccessVertexBuffer},
			SrcQueueFamilyIndex: 0,
			DstQueueFamilyIndex: 0,
		})
	})
	mustPanic(t, "image barrier without transfer nor transition", func() {
		ImageMemoryBarrier(ImageBarrier{
			Prev:       []AccessType{AccessComputeShaderWrite},
			Next:       []AccessType{AccessComputeShaderReadOther},
			PrevLayout: LayoutGeneral,
			NextLayout: LayoutGeneral,
		})
	})

	// A layout transition alone justifies an image
	// barrier.
	ImageMemoryBarrier(ImageBarrier{
		Prev:       []AccessType{AccessColorAttachmentWrite},
		Next:       []AccessType{AccessFragmentShaderReadSampledImageOrUniformTexelBuffer},
		PrevLayout: LayoutOptimal,
		NextLayout: LayoutOptimal,
	})

	// An ownership transfer alone justifies a buffer
	// barrier.
	BufferMemoryBarrier(BufferBarrier{
		Prev:                []AccessType{AccessTransferWrite},
		Next:                []AccessType{AccessVertexBuffer},
		SrcQueueFamilyIndex: 0,
		DstQueueFamilyIndex: 1,
	})
}

func TestCheckMixedLayout(t *testing.T) {
	mustPanic(t, "conflicting layouts on destination side", func() {
		ImageMemoryBarrier(ImageBarrier{
			Prev: []AccessType{AccessColorAttachmentWrite},
			Next: []AccessType{
				AccessFragmentShaderReadSampledImageOrUniformTexelBuffer,
				AccessFragmentShaderReadOther,
			},
			PrevLayout: LayoutOptimal,
			NextLayout: LayoutOptimal,
		})
	})

	// Accesses that agree on one layout are fine.
	_, _, imb := ImageMemoryBarrier(ImageBarrier{
		Prev: []AccessType{AccessColorAttachmentWrite},
		Next: []AccessType{
			AccessFragmentShaderReadSampledImageOrUniformTexelBuffer,
			AccessComputeShaderReadSampledImageOrUniformTexelBuffer,
		},
		PrevLayout: LayoutOptimal,
		NextLayout: LayoutOptimal,
	})
	if imb.NewLayout != vk.ImageLayoutShaderReadOnlyOptimal {
		t.Fatalf("NewLayout:\nhave %d\nwant %d", imb.NewLayout, vk.ImageLayoutShaderReadOnlyOptimal)
	}
}
