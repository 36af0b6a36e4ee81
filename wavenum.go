// SPDX-License-Identifier: EPL-2.0

package wavenum

import (
	"fmt"
	"math/big"

	"github.com/ik5/wavenum/audio"
	"github.com/ik5/wavenum/waveid"
)

// EncodeSource maps an audio source to its identifier.
//
// The source is reduced to canonical form (mono, waveid.TargetSampleRate,
// exactly waveid.SampleCount samples), peak-normalized to 16-bit
// integers, and packed into one arbitrary-precision integer. The same
// source always yields the same identifier.
//
// The source is consumed but not closed.
func EncodeSource(src audio.Source) (*big.Int, error) {
	c := audio.NewCanonicalizer(waveid.TargetSampleRate, waveid.SampleCount)

	samples, err := c.Canonicalize(src)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing source: %w", err)
	}

	id, err := waveid.Encode(waveid.Normalize(samples))
	if err != nil {
		return nil, fmt.Errorf("encoding samples: %w", err)
	}

	return id, nil
}

// DecodeIdentifier maps an identifier back to a playable float buffer:
// waveid.SampleCount mono samples at waveid.TargetSampleRate.
func DecodeIdentifier(id *big.Int) ([]float32, error) {
	quantized, err := waveid.Decode(id)
	if err != nil {
		return nil, fmt.Errorf("decoding identifier: %w", err)
	}

	return waveid.Reconstruct(quantized), nil
}

// DecodeIdentifierPCM maps an identifier to 16-bit PCM samples, ready
// for wav.WriteWAV16.
func DecodeIdentifierPCM(id *big.Int) ([]int16, error) {
	quantized, err := waveid.Decode(id)
	if err != nil {
		return nil, fmt.Errorf("decoding identifier: %w", err)
	}

	return quantized, nil
}
