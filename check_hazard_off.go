// Copyright 2026 Gustavo C. Viegas. All rights reserved.

//go:build !vksync_hazard

package vksync

func checkHazard(AccessType, int) {}
