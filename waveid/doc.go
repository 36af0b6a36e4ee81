// SPDX-License-Identifier: EPL-2.0

// Package waveid maps a fixed-length mono waveform to a single
// arbitrary-precision integer and back.
//
// A canonical clip is exactly SampleCount mono samples at
// TargetSampleRate Hz. Each sample is quantized to a signed 16-bit
// integer, shifted into [0, Radix-1], and the resulting sequence is
// read as the digits of a base-Radix number with index 0 as the most
// significant digit. The identifier is that number.
//
// # Encoding
//
//	samples := waveid.Normalize(canonical) // []float32 -> []int16
//	id, err := waveid.Encode(samples)
//	fmt.Println(waveid.FormatIdentifier(id))
//
// # Decoding
//
//	id, err := waveid.ParseIdentifier(text)
//	quantized, err := waveid.Decode(id)
//	buf := waveid.Reconstruct(quantized) // []int16 -> []float32
//
// # Determinism
//
// Normalize scales every sample by the clip's own peak magnitude so
// the loudest sample lands on ±32767, then rounds half away from zero
// (math.Round). The rounding mode is part of the format: changing it
// changes the identifier a given clip produces.
//
// # Identifier domain
//
// Valid identifiers lie in [0, Radix^SampleCount - 1]. Encode and
// Decode are exact inverses over that domain. Decode rejects negative
// or oversized identifiers with ErrIdentifierOutOfRange rather than
// silently truncating them.
//
// # Lossiness
//
// Quantization rounds and peak normalization rescales, so the original
// float amplitudes are not recoverable. The quantized integers are:
// Decode(Encode(q)) == q for every valid q.
package waveid
