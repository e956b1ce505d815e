// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import _ "embed"

//go:embed default.yaml
var defaultScene []byte

// Default returns the built-in demo scene, which uses every primitive.
func Default() *Scene {
	s, err := Parse(defaultScene)
	if err != nil {
		panic("scene: built-in scene is invalid: " + err.Error())
	}
	return s
}
