// Copyright 2026 Gustavo C. Viegas. All rights reserved.

//go:build !vksync_layout

package vksync

import (
	vk "github.com/goki/vulkan"
)

func checkMixedLayout(_, _ vk.ImageLayout) {}
