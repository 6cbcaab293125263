package amd64

import "math"

// float32bits and float64bits reinterpret IEEE-754 floats as their raw bit
// patterns for little-endian immediate encoding. Trivial wrappers over
// math.Float32bits/Float64bits; no third-party library exists in the pack
// for this, and the standard library call is exactly what the bit layout
// requires.
func float32bits(f float32) uint32 { return math.Float32bits(f) }
func float64bits(f float64) uint64 { return math.Float64bits(f) }
