// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !cgo

package ebitenhost

import "errors"

// ErrNoWindow is returned by Run when the binary was built without cgo.
var ErrNoWindow = errors.New("ebitenhost: window mode requires cgo (build with CGO_ENABLED=1)")

// Run reports that no window system is available.
func (w *Window) Run() error {
	return ErrNoWindow
}

func monitorScale() float64 {
	return 1
}
