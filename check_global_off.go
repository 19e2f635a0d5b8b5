// Copyright 2026 Gustavo C. Viegas. All rights reserved.

//go:build !vksync_global

package vksync

import (
	vk "github.com/goki/vulkan"
)

func checkBufferGlobal(*vk.BufferMemoryBarrier) {}

func checkImageGlobal(*vk.ImageMemoryBarrier) {}
