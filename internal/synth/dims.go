package synth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDimensions indicates a dimensions token that does not split into
// exactly two positive integers on the literal separator "x".
var ErrMalformedDimensions = errors.New("synth: malformed dimensions")

// ParseDimensions parses a "WxH" token into a width and height. Arbitrarily
// large values are accepted; resource guarding is the caller's concern.
func ParseDimensions(dims string) (int, int, error) {
	parts := strings.Split(dims, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedDimensions, dims)
	}
	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedDimensions, dims)
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedDimensions, dims)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedDimensions, dims)
	}
	return width, height, nil
}
