// SPDX-License-Identifier: EPL-2.0

// Package wavenum turns a one-second audio clip into a single decimal
// integer and back again.
//
// A clip is reduced to canonical form (mono, 48kHz, exactly 48000
// samples), peak-normalized to 16-bit integers, and the integer
// sequence is read as one base-65536 number. That number is the clip's
// identifier: reversible, deterministic, and printable as plain
// decimal digits.
//
// # Quick Start
//
//	// Decode an audio file into a sample source
//	decoder := wav.Decoder{}
//	file, _ := os.Open("clip.wav")
//	src, _ := decoder.Decode(file)
//
//	// Encode it
//	id, _ := wavenum.EncodeSource(src)
//	fmt.Println(waveid.FormatIdentifier(id))
//
//	// And back
//	samples, _ := wavenum.DecodeIdentifier(id)
//
// # Supported Formats
//
// The package decodes the following audio formats into sample sources:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Container parsing stays in formats/*; the codec itself only ever
// sees raw float samples.
//
// # Pipeline
//
// The encode path is Canonicalizer -> Normalize -> Encode:
//
//	c := audio.NewCanonicalizer(waveid.TargetSampleRate, waveid.SampleCount)
//	samples, _ := c.Canonicalize(src)
//	id, _ := waveid.Encode(waveid.Normalize(samples))
//
// The decode path is Decode -> Reconstruct:
//
//	quantized, _ := waveid.Decode(id)
//	buf := waveid.Reconstruct(quantized)
//
// Every stage consumes its input and returns a fresh output; nothing
// is shared or retried, and any failure aborts the whole call.
//
// # Writing WAV Files
//
// Reconstructed clips can be exported as uncompressed PCM:
//
//	pcm, _ := wavenum.DecodeIdentifierPCM(id)
//	file, _ := os.Create("out.wav")
//	wav.WriteWAV16(file, waveid.TargetSampleRate, pcm)
//
// See the waveid and audio subpackages for the exact-format contract
// and the streaming primitives.
package wavenum
