// Package camera computes the view and projection matrices for shadow depth
// passes. Directional lights render through an orthographic camera, spot
// lights through a perspective camera sized to the outer cone, and point
// lights through six 90-degree perspective cameras, one per cube map face.
package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/umbra-go/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

type shadowCameraImpl struct {
	mu *sync.Mutex

	up mgl32.Vec3

	center     mgl32.Vec3
	halfExtent float32
	near       float32
	far        float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
}

// ShadowCamera computes the matrices for a single shadow depth pass. Update
// reads the light's pose each frame and recomputes the matrices; the getters
// return the results of the most recent Update.
type ShadowCamera interface {
	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// HalfExtent returns half the side length of the orthographic shadow
	// volume used for directional lights.
	//
	// Returns:
	//   - float32: the half extent in world units
	HalfExtent() float32

	// ViewMatrix returns the view matrix from the most recent Update.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the projection matrix from the most recent Update.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the combined view-projection matrix from
	// the most recent Update.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetCenter sets the world-space point the directional shadow volume is
	// centered on, typically the view camera's focus point.
	//
	// Parameters:
	//   - x, y, z: the center position
	SetCenter(x, y, z float32)

	// Update recomputes the matrices from the light's current pose.
	// Directional lights yield an orthographic projection looking along the
	// light direction through the configured center; spot lights yield a
	// perspective projection whose field of view covers the outer cone.
	// Should be called once per frame before recording the shadow pass.
	//
	// Parameters:
	//   - l: the shadow-casting light to frame
	Update(l light.Light)
}

var _ ShadowCamera = &shadowCameraImpl{}

// NewShadowCamera creates a new ShadowCamera with default clip planes and
// shadow volume extent, and any provided options applied.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - ShadowCamera: the newly created camera
func NewShadowCamera(options ...ShadowCameraBuilderOption) ShadowCamera {
	c := &shadowCameraImpl{
		mu:                   &sync.Mutex{},
		up:                   mgl32.Vec3{0, 1, 0},
		halfExtent:           light.DefaultShadowHalfExtent,
		near:                 light.DefaultShadowNear,
		far:                  light.DefaultShadowFar,
		viewMatrix:           mgl32.Ident4(),
		projectionMatrix:     mgl32.Ident4(),
		viewProjectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *shadowCameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *shadowCameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *shadowCameraImpl) HalfExtent() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.halfExtent
}

func (c *shadowCameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *shadowCameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *shadowCameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *shadowCameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
}

func (c *shadowCameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
}

func (c *shadowCameraImpl) SetCenter(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.center = mgl32.Vec3{x, y, z}
}

func (c *shadowCameraImpl) Update(l light.Light) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := l.Direction()
	dir := safeDirection(mgl32.Vec3{d[0], d[1], d[2]})
	up := c.up
	if nearlyParallel(dir, up) {
		up = mgl32.Vec3{0, 0, 1}
	}

	switch l.Type() {
	case light.LightTypeSpot:
		p := l.Position()
		eye := mgl32.Vec3{p[0], p[1], p[2]}
		c.viewMatrix = mgl32.LookAtV(eye, eye.Add(dir), up)
		// The frustum must cover the full cone, so the vertical field of
		// view is twice the outer half-angle.
		c.projectionMatrix = mgl32.Perspective(2*halfAngleFromCos(l.OuterCone()), 1.0, c.near, c.far)
	default:
		// Directional lights have no position; back the eye away from the
		// volume center along the light direction.
		eye := c.center.Sub(dir.Mul(c.halfExtent))
		c.viewMatrix = mgl32.LookAtV(eye, c.center, up)
		e := c.halfExtent
		c.projectionMatrix = mgl32.Ortho(-e, e, -e, e, c.near, c.far)
	}

	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}

// cubeFaceBasis holds the forward and up vectors of one cube map face camera,
// in attachment-layer order (+X, -X, +Y, -Y, +Z, -Z).
var cubeFaceBasis = [6]struct {
	forward mgl32.Vec3
	up      mgl32.Vec3
}{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, -1, 0}},
}

// CubeShadowViewProjections computes the six view-projection matrices for a
// point light's cube shadow map, one per face in attachment-layer order. Each
// face uses a square 90-degree perspective projection so the six frusta tile
// the full sphere around the light.
//
// Parameters:
//   - l: the point light at the cube's center
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - [6]mgl32.Mat4: the per-face view-projection matrices
func CubeShadowViewProjections(l light.Light, near, far float32) [6]mgl32.Mat4 {
	p := l.Position()
	eye := mgl32.Vec3{p[0], p[1], p[2]}
	proj := mgl32.Perspective(mgl32.DegToRad(90), 1.0, near, far)

	var views [6]mgl32.Mat4
	for i, basis := range cubeFaceBasis {
		view := mgl32.LookAtV(eye, eye.Add(basis.forward), basis.up)
		views[i] = proj.Mul4(view)
	}
	return views
}

// halfAngleFromCos converts a stored cone cosine back to the half-angle in
// radians, clamping against float drift outside [-1, 1].
func halfAngleFromCos(cos float32) float32 {
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return float32(math.Acos(float64(cos)))
}

// safeDirection normalizes dir, substituting straight down for a zero vector
// so a degenerate light still produces a usable matrix.
func safeDirection(dir mgl32.Vec3) mgl32.Vec3 {
	if dir.LenSqr() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return dir.Normalize()
}

// nearlyParallel reports whether two unit vectors are close enough to
// parallel that a look-at basis built from them would collapse.
func nearlyParallel(a, b mgl32.Vec3) bool {
	d := a.Dot(b)
	return d > 0.999 || d < -0.999
}
