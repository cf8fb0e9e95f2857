package camera

import "github.com/go-gl/mathgl/mgl32"

// ShadowCameraBuilderOption defines a function that modifies the shadow
// camera during construction.
type ShadowCameraBuilderOption func(*shadowCameraImpl)

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - ShadowCameraBuilderOption: the option
func WithNear(near float32) ShadowCameraBuilderOption {
	return func(c *shadowCameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - ShadowCameraBuilderOption: the option
func WithFar(far float32) ShadowCameraBuilderOption {
	return func(c *shadowCameraImpl) {
		c.far = far
	}
}

// WithHalfExtent sets half the side length of the orthographic shadow volume
// used for directional lights. Values <= 0 are ignored.
//
// Parameters:
//   - halfExtent: the half extent in world units
//
// Returns:
//   - ShadowCameraBuilderOption: the option
func WithHalfExtent(halfExtent float32) ShadowCameraBuilderOption {
	return func(c *shadowCameraImpl) {
		if halfExtent > 0 {
			c.halfExtent = halfExtent
		}
	}
}

// WithCenter sets the world-space point the directional shadow volume is
// centered on.
//
// Parameters:
//   - x, y, z: the center position
//
// Returns:
//   - ShadowCameraBuilderOption: the option
func WithCenter(x, y, z float32) ShadowCameraBuilderOption {
	return func(c *shadowCameraImpl) {
		c.center = mgl32.Vec3{x, y, z}
	}
}
