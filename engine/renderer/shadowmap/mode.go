// Package shadowmap manages the GPU resources behind per-light shadow maps:
// shared depth texture arrays bucketed by resolution for directional and spot
// lights, depth cube maps for point lights, and the render targets and blur
// targets the render pass driver records into each frame.
//
// The Registry reconciles its cached resources against the frame's light list
// and rebuilds everything from scratch only when the shadow-casting
// configuration structurally changes; an unchanged light list touches no GPU
// resource.
package shadowmap

import "github.com/Carmen-Shannon/umbra-go/engine/light"

// Mode identifies the shadow map technique backing an entry.
type Mode int

const (
	// ModeVSM is the blurred variance depth map used for directional and spot
	// lights, stored as one layer of a shared 2D texture array.
	ModeVSM Mode = iota

	// ModeCube is the omnidirectional depth cube map used for point lights.
	ModeCube
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeVSM:
		return "VSM"
	case ModeCube:
		return "CUBE"
	default:
		return "unknown"
	}
}

// modeForLight maps a light type to its shadow map mode: point lights render
// all directions into a cube map, everything else renders a single VSM slice.
func modeForLight(t light.LightType) Mode {
	if t == light.LightTypePoint {
		return ModeCube
	}
	return ModeVSM
}

// CubeFace identifies one face of a depth cube map, in attachment-layer order.
type CubeFace uint8

const (
	// FacePositiveX is the +X cube face (layer 0).
	FacePositiveX CubeFace = iota
	// FaceNegativeX is the -X cube face (layer 1).
	FaceNegativeX
	// FacePositiveY is the +Y cube face (layer 2).
	FacePositiveY
	// FaceNegativeY is the -Y cube face (layer 3).
	FaceNegativeY
	// FacePositiveZ is the +Z cube face (layer 4).
	FacePositiveZ
	// FaceNegativeZ is the -Z cube face (layer 5).
	FaceNegativeZ

	// NumCubeFaces is the number of faces in a cube map.
	NumCubeFaces = 6
)

// String returns the face's display name, used in render target labels.
func (f CubeFace) String() string {
	switch f {
	case FacePositiveX:
		return "+X"
	case FaceNegativeX:
		return "-X"
	case FacePositiveY:
		return "+Y"
	case FaceNegativeY:
		return "-Y"
	case FacePositiveZ:
		return "+Z"
	case FaceNegativeZ:
		return "-Z"
	default:
		return "?"
	}
}

// CubeFaces lists all six faces in attachment-layer order, for range loops.
var CubeFaces = [NumCubeFaces]CubeFace{
	FacePositiveX, FaceNegativeX,
	FacePositiveY, FaceNegativeY,
	FacePositiveZ, FaceNegativeZ,
}
