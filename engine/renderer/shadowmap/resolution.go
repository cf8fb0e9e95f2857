package shadowmap

import (
	"fmt"
	"math/bits"
)

// numResolutionBuckets is the number of supported shadow map resolutions:
// 256, 512, 1024, 2048, and 4096, at bucket indices 0 through 4. Each bucket
// with at least one directional or spot light gets one shared depth texture
// array per rebuild.
const numResolutionBuckets = 5

// ResolutionToIndex maps a shadow map resolution to its bucket index.
// The resolution must be a power of two between 256 and 4096 inclusive;
// anything else is a contract violation and panics. Callers validate
// user-supplied resolutions before they reach the registry.
//
// Parameters:
//   - resolution: the shadow map resolution in texels
//
// Returns:
//   - uint8: the bucket index (0-4)
func ResolutionToIndex(resolution uint32) uint8 {
	if resolution == 0 || resolution&(resolution-1) != 0 {
		panic(fmt.Sprintf("shadowmap: resolution %d is not a power of two", resolution))
	}
	if resolution < 256 {
		panic(fmt.Sprintf("shadowmap: resolution %d is below the 256 minimum", resolution))
	}
	index := uint8(bits.TrailingZeros32(resolution) - 8)
	if index >= numResolutionBuckets {
		panic(fmt.Sprintf("shadowmap: resolution %d is above the 4096 maximum", resolution))
	}
	return index
}

// IndexToResolution maps a bucket index back to its shadow map resolution.
// Indices above 4 are a contract violation and panic.
//
// Parameters:
//   - index: the bucket index (0-4)
//
// Returns:
//   - uint32: the shadow map resolution in texels
func IndexToResolution(index uint8) uint32 {
	if index >= numResolutionBuckets {
		panic(fmt.Sprintf("shadowmap: bucket index %d out of range", index))
	}
	return 1 << (index + 8)
}
