// Copyright 2026 Gustavo C. Viegas. All rights reserved.

//go:build vksync_hazard

package vksync

import "fmt"

// checkHazard halts the process if a write access is
// listed alongside any other access in the same list.
// Such a list points to a data hazard that must be
// synchronized separately - issue one barrier per write.
// In some cases it may simply be over-synchronization,
// but it is usually worth checking.
func checkHazard(t AccessType, n int) {
	if !t.read() && n > 1 {
		panic(fmt.Sprintf("vksync: %v listed alongside %d other accesses", t, n-1))
	}
}
