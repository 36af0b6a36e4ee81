// SPDX-License-Identifier: EPL-2.0

package waveid

import "math"

// Normalize quantizes float samples to 16-bit integers at full scale.
//
// The scale factor is the clip's own peak magnitude, so the loudest
// sample maps to ±32767 and everything else keeps its relative level.
// An all-zero clip has no peak to scale by and quantizes to all zeros.
//
// Rounding is half away from zero (math.Round). This is part of the
// identifier format, not a free choice: a different rounding mode
// yields a different identifier for the same clip.
func Normalize(samples []float32) []int16 {
	var peak float64
	for _, s := range samples {
		if v := math.Abs(float64(s)); v > peak {
			peak = v
		}
	}

	quantized := make([]int16, len(samples))
	if peak == 0 {
		return quantized
	}

	for i, s := range samples {
		quantized[i] = int16(math.Round(float64(s) / peak * 32767))
	}

	return quantized
}

// Reconstruct converts quantized samples back to floats in [-1, 1]
// for playback or export. It inverts Normalize's scaling but not its
// rounding: the quantized integers round-trip exactly, the original
// float amplitudes do not.
func Reconstruct(quantized []int16) []float32 {
	samples := make([]float32, len(quantized))
	for i, q := range quantized {
		samples[i] = float32(q) / 32767.0
	}

	return samples
}
