// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize           = errors.New("dst size must be multiple of channels")
	ErrUnsupportedChannelLayout = errors.New("channel layout must be mono or stereo")
	ErrInvalidCanonicalForm     = errors.New("source does not reduce to canonical form")
)
