package light

// DefaultShadowMapResolution is the default width and height in texels of a
// light's shadow map. Lights use this as their initial value but can override
// it via the WithShadowMapResolution builder option.
const DefaultShadowMapResolution uint32 = 2048

// MinShadowMapResolution is the smallest shadow map resolution the registry
// accepts for a shadow-casting light.
const MinShadowMapResolution uint32 = 256

// MaxShadowMapResolution is the largest shadow map resolution the registry
// accepts for a shadow-casting light.
const MaxShadowMapResolution uint32 = 4096

// DefaultShadowHalfExtent is the default orthographic half-extent (in world units)
// used for the directional light shadow frustum. Controls how much of the scene
// around the camera center is captured in the shadow map.
const DefaultShadowHalfExtent float32 = 40.0

// DefaultShadowNear is the default near plane for shadow projections.
const DefaultShadowNear float32 = 0.1

// DefaultShadowFar is the default far plane for shadow projections.
const DefaultShadowFar float32 = 200.0

// DefaultShadowBias is the constant depth bias applied to shadow comparisons
// to reduce shadow acne artifacts.
const DefaultShadowBias float32 = 0.001
