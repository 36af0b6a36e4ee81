// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Canonicalizer reduces arbitrary input audio to canonical form: one
// channel, a fixed sample rate, and an exact sample count. It is the
// processing context the encoding pipeline runs against, created
// explicitly by the caller rather than held in package state, so tests
// can run several with different targets side by side.
//
// Only mono and stereo sources are accepted. Stereo is averaged down
// per frame; rate conversion goes through Resampler when the source
// rate differs from the target.
//
// A resampled stream rarely lands on the exact sample count, so the
// output is forced to it: short streams are zero-padded at the tail,
// long ones are truncated. A source that yields no samples at all
// cannot be canonicalized.
type Canonicalizer struct {
	targetRate  int
	sampleCount int
	bufSize     int
}

// NewCanonicalizer returns a Canonicalizer producing sampleCount mono
// samples at targetRate Hz.
func NewCanonicalizer(targetRate, sampleCount int) *Canonicalizer {
	return &Canonicalizer{
		targetRate:  targetRate,
		sampleCount: sampleCount,
		bufSize:     4096,
	}
}

func (c *Canonicalizer) TargetRate() int  { return c.targetRate }
func (c *Canonicalizer) SampleCount() int { return c.sampleCount }

// Canonicalize drains src through the resample/downmix pipeline and
// returns exactly c.SampleCount() samples. src is consumed but not
// closed; the caller owns its lifecycle.
func (c *Canonicalizer) Canonicalize(src Source) ([]float32, error) {
	switch src.Channels() {
	case 1, 2:
	default:
		return nil, fmt.Errorf("%w: got %d channels, want 1 or 2",
			ErrUnsupportedChannelLayout, src.Channels())
	}
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: source sample rate %d",
			ErrInvalidCanonicalForm, src.SampleRate())
	}

	head := src
	if src.SampleRate() != c.targetRate {
		head = NewResampler(src, c.targetRate)
	}
	mono := NewMonoMixer(head)

	samples := make([]float32, 0, c.sampleCount)
	buf := make([]float32, c.bufSize)

	for len(samples) < c.sampleCount {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			room := c.sampleCount - len(samples)
			if n > room {
				n = room
			}
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: source yielded no samples", ErrInvalidCanonicalForm)
	}

	// Zero-pad short streams to the fixed count.
	for len(samples) < c.sampleCount {
		samples = append(samples, 0)
	}

	if mono.Channels() != 1 || mono.SampleRate() != c.targetRate || len(samples) != c.sampleCount {
		return nil, fmt.Errorf("%w: got %d channels at %d Hz with %d samples, want 1 channel at %d Hz with %d",
			ErrInvalidCanonicalForm, mono.Channels(), mono.SampleRate(),
			len(samples), c.targetRate, c.sampleCount)
	}

	return samples, nil
}
