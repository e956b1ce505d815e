// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"math"
	"slices"
)

// Functions are the named sample functions a plot command can reference.
var Functions = map[string]func(float64) float64{
	"identity": func(x float64) float64 { return x },
	"sin":      math.Sin,
	"cos":      math.Cos,
	"cubic":    func(x float64) float64 { return x * x * x },
	"gaussian": func(x float64) float64 { return math.Exp(-x * x / 2) },
	"square":   func(x float64) float64 { return x * x },
	"tanh":     math.Tanh,
}

// FunctionNames returns the registered function names in sorted order.
func FunctionNames() []string {
	names := make([]string, 0, len(Functions))
	for name := range Functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the named function, shifted left by phase.
func Lookup(name string, phase float64) (func(float64) float64, bool) {
	fn, ok := Functions[name]
	if !ok {
		return nil, false
	}
	if phase == 0 {
		return fn, true
	}
	return func(x float64) float64 { return fn(x + phase) }, true
}
