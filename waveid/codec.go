// SPDX-License-Identifier: EPL-2.0

package waveid

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
)

const (
	// TargetSampleRate is the canonical sample rate in Hz.
	TargetSampleRate = 48000

	// SampleCount is the fixed number of samples in a canonical clip,
	// and therefore the number of base-Radix digits in an identifier.
	// It coincides with TargetSampleRate (one second of audio) but the
	// two are independent knobs: this one fixes the identifier domain,
	// the other fixes canonical timing.
	SampleCount = 48000

	// Radix is the number of distinct values one quantized sample can
	// take. Each sample contributes one base-Radix digit.
	Radix = 1 << 16

	// identifierBits is the bit width of the identifier domain:
	// Radix^SampleCount = 2^(16*SampleCount).
	identifierBits = 16 * SampleCount
)

// Encode packs a quantized sequence of exactly SampleCount samples
// into one non-negative identifier. Index 0 is the most significant
// digit; each digit is the sample shifted into [0, Radix-1].
//
// Since Radix is 2^16, the digit sequence is exactly the big-endian
// byte string of the shifted samples, so the whole number is built
// with a single SetBytes instead of SampleCount multiply-adds.
func Encode(quantized []int16) (*big.Int, error) {
	if len(quantized) != SampleCount {
		return nil, fmt.Errorf("%w: got %d samples", ErrInvalidSampleCount, len(quantized))
	}

	buf := make([]byte, 2*SampleCount)
	for i, s := range quantized {
		digit := uint16(int32(s) + 32768)
		binary.BigEndian.PutUint16(buf[2*i:2*i+2], digit)
	}

	return new(big.Int).SetBytes(buf), nil
}

// Decode unpacks an identifier back into the quantized sequence that
// produced it. Identifiers outside [0, Radix^SampleCount) are rejected
// with ErrIdentifierOutOfRange; Decode never truncates.
func Decode(id *big.Int) ([]int16, error) {
	if id.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value", ErrIdentifierOutOfRange)
	}
	if id.BitLen() > identifierBits {
		return nil, fmt.Errorf("%w: %d bits, limit is %d",
			ErrIdentifierOutOfRange, id.BitLen(), identifierBits)
	}

	// FillBytes left-pads with zeros, which decode as -32768 samples,
	// matching the positional scheme for short identifiers.
	buf := make([]byte, 2*SampleCount)
	id.FillBytes(buf)

	quantized := make([]int16, SampleCount)
	for i := range quantized {
		digit := binary.BigEndian.Uint16(buf[2*i : 2*i+2])
		quantized[i] = int16(int32(digit) - 32768)
	}

	return quantized, nil
}

// FormatIdentifier renders an identifier in its wire format: base-10
// digits, no sign, no surrounding content.
func FormatIdentifier(id *big.Int) string {
	return id.Text(10)
}

// ParseIdentifier parses the wire format produced by FormatIdentifier
// and validates the result against the identifier domain.
func ParseIdentifier(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformedIdentifier)
	}
	if strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedIdentifier, s)
	}

	id, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedIdentifier, s)
	}
	if id.BitLen() > identifierBits {
		return nil, fmt.Errorf("%w: %d bits, limit is %d",
			ErrIdentifierOutOfRange, id.BitLen(), identifierBits)
	}

	return id, nil
}
