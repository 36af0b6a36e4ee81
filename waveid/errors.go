// SPDX-License-Identifier: EPL-2.0

package waveid

import "errors"

var (
	ErrInvalidSampleCount   = errors.New("quantized sequence length must equal SampleCount")
	ErrIdentifierOutOfRange = errors.New("identifier outside [0, Radix^SampleCount)")
	ErrMalformedIdentifier  = errors.New("identifier must be base-10 digits only")
)
