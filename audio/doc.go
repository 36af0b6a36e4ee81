// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives that reduce raw
// audio to canonical form.
//
// Canonical form is one channel at a fixed sample rate with an exact
// sample count. Everything the identifier codec consumes goes through
// this package first.
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Format decoders and processors all implement it, so they chain into
// pipelines.
//
// # Canonicalizer
//
// The Canonicalizer is the usual entry point. It owns the whole
// reduction — rate conversion, downmix, exact-length fit — and fails
// loudly instead of producing a sequence the codec cannot accept:
//
//	c := audio.NewCanonicalizer(48000, 48000)
//	samples, err := c.Canonicalize(src)
//
// Sources with more than two channels are rejected with
// ErrUnsupportedChannelLayout. A source that produces no samples is
// ErrInvalidCanonicalForm.
//
// # Resampling
//
// The Resampler changes the sample rate using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 16000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// It works for both upsampling and downsampling and is deterministic
// for a given input, which the identifier scheme depends on.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// For stereo each output frame is exactly (left+right)/2.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available.
// Any other error is terminal for the current operation; nothing in
// this package retries or degrades:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
