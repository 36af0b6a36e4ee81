// SPDX-License-Identifier: EPL-2.0

package waveid

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"
)

// repunitIdentifier computes d * (Radix^SampleCount - 1) / (Radix - 1),
// the identifier whose every digit is d.
func repunitIdentifier(d int64) *big.Int {
	id := new(big.Int).Lsh(big.NewInt(1), identifierBits)
	id.Sub(id, big.NewInt(1))
	id.Div(id, big.NewInt(Radix-1))
	return id.Mul(id, big.NewInt(d))
}

func TestEncode_Decode_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	quantized := make([]int16, SampleCount)
	for i := range quantized {
		quantized[i] = int16(rng.Intn(65536) - 32768)
	}

	id, err := Encode(quantized)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := Decode(id)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(decoded) != SampleCount {
		t.Fatalf("Decode() returned %d samples, want %d", len(decoded), SampleCount)
	}

	for i := range quantized {
		if decoded[i] != quantized[i] {
			t.Fatalf("decoded[%d] = %d, want %d", i, decoded[i], quantized[i])
		}
	}
}

func TestEncode_RangeBound(t *testing.T) {
	t.Parallel()

	// The largest possible identifier comes from the all-32767 sequence.
	quantized := make([]int16, SampleCount)
	for i := range quantized {
		quantized[i] = 32767
	}

	id, err := Encode(quantized)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if id.Sign() < 0 {
		t.Error("Encode() produced a negative identifier")
	}

	if id.BitLen() > identifierBits {
		t.Errorf("Encode() identifier has %d bits, limit is %d", id.BitLen(), identifierBits)
	}

	max := repunitIdentifier(Radix - 1)
	if id.Cmp(max) != 0 {
		t.Error("all-32767 sequence should encode to the domain maximum")
	}
}

func TestEncode_InvalidLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		length int
	}{
		{name: "empty", length: 0},
		{name: "one short", length: SampleCount - 1},
		{name: "one long", length: SampleCount + 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Encode(make([]int16, tt.length))
			if !errors.Is(err, ErrInvalidSampleCount) {
				t.Errorf("Encode() error = %v, want ErrInvalidSampleCount", err)
			}
		})
	}
}

func TestDecode_ZeroIdentifier(t *testing.T) {
	t.Parallel()

	decoded, err := Decode(big.NewInt(0))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	// Every digit 0 shifts back to the minimum sample value.
	for i, s := range decoded {
		if s != -32768 {
			t.Fatalf("decoded[%d] = %d, want -32768", i, s)
		}
	}
}

func TestDecode_MaxIdentifier(t *testing.T) {
	t.Parallel()

	id := new(big.Int).Lsh(big.NewInt(1), identifierBits)
	id.Sub(id, big.NewInt(1))

	decoded, err := Decode(id)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	for i, s := range decoded {
		if s != 32767 {
			t.Fatalf("decoded[%d] = %d, want 32767", i, s)
		}
	}
}

func TestDecode_AllMidScale(t *testing.T) {
	t.Parallel()

	// Every digit 32768 decodes to sample 0 (the silent clip).
	decoded, err := Decode(repunitIdentifier(32768))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	for i, s := range decoded {
		if s != 0 {
			t.Fatalf("decoded[%d] = %d, want 0", i, s)
		}
	}
}

func TestDecode_OutOfRange(t *testing.T) {
	t.Parallel()

	tooBig := new(big.Int).Lsh(big.NewInt(1), identifierBits)

	tests := []struct {
		name string
		id   *big.Int
	}{
		{name: "radix^length", id: tooBig},
		{name: "radix^length plus one", id: new(big.Int).Add(tooBig, big.NewInt(1))},
		{name: "negative", id: big.NewInt(-1)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(tt.id)
			if !errors.Is(err, ErrIdentifierOutOfRange) {
				t.Errorf("Decode() error = %v, want ErrIdentifierOutOfRange", err)
			}
		})
	}
}

func TestEncode_DigitOrder(t *testing.T) {
	t.Parallel()

	// Index 0 must be the most significant digit: raising the first
	// sample must change the identifier more than raising the last.
	base := make([]int16, SampleCount)

	first := make([]int16, SampleCount)
	copy(first, base)
	first[0]++

	last := make([]int16, SampleCount)
	copy(last, base)
	last[SampleCount-1]++

	idBase, err := Encode(base)
	if err != nil {
		t.Fatalf("Encode(base) error = %v", err)
	}
	idFirst, err := Encode(first)
	if err != nil {
		t.Fatalf("Encode(first) error = %v", err)
	}
	idLast, err := Encode(last)
	if err != nil {
		t.Fatalf("Encode(last) error = %v", err)
	}

	deltaFirst := new(big.Int).Sub(idFirst, idBase)
	deltaLast := new(big.Int).Sub(idLast, idBase)

	// Last digit has place value 1.
	if deltaLast.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("last-digit delta = %s, want 1", deltaLast)
	}

	// First digit has place value Radix^(SampleCount-1).
	wantFirst := new(big.Int).Lsh(big.NewInt(1), 16*(SampleCount-1))
	if deltaFirst.Cmp(wantFirst) != 0 {
		t.Error("first-digit delta does not match Radix^(SampleCount-1)")
	}
}

func TestParseIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "zero", input: "0"},
		{name: "small", input: "1234567890"},
		{name: "leading zeros", input: "00042"},
		{name: "empty", input: "", wantErr: ErrMalformedIdentifier},
		{name: "negative sign", input: "-5", wantErr: ErrMalformedIdentifier},
		{name: "plus sign", input: "+5", wantErr: ErrMalformedIdentifier},
		{name: "hex digits", input: "12ab", wantErr: ErrMalformedIdentifier},
		{name: "whitespace", input: " 42", wantErr: ErrMalformedIdentifier},
		{name: "underscore", input: "1_000", wantErr: ErrMalformedIdentifier},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := ParseIdentifier(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseIdentifier(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseIdentifier(%q) error = %v", tt.input, err)
			}

			if FormatIdentifier(id) != new(big.Int).Set(id).Text(10) {
				t.Errorf("FormatIdentifier() does not round-trip %q", tt.input)
			}
		})
	}
}

func TestParseIdentifier_OutOfRange(t *testing.T) {
	t.Parallel()

	tooBig := new(big.Int).Lsh(big.NewInt(1), identifierBits)

	_, err := ParseIdentifier(tooBig.Text(10))
	if !errors.Is(err, ErrIdentifierOutOfRange) {
		t.Errorf("ParseIdentifier() error = %v, want ErrIdentifierOutOfRange", err)
	}
}

func TestFormatIdentifier_RoundTrip(t *testing.T) {
	t.Parallel()

	quantized := make([]int16, SampleCount)
	for i := range quantized {
		quantized[i] = int16((i*2654435761)%65536 - 32768)
	}

	id, err := Encode(quantized)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	parsed, err := ParseIdentifier(FormatIdentifier(id))
	if err != nil {
		t.Fatalf("ParseIdentifier() error = %v", err)
	}

	if parsed.Cmp(id) != 0 {
		t.Error("format/parse round-trip changed the identifier")
	}
}
