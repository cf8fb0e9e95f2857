package camera

import (
	"testing"

	"github.com/Carmen-Shannon/umbra-go/engine/light"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// projectClip applies a view-projection matrix to a world-space point,
// returning homogeneous clip coordinates.
func projectClip(vp mgl32.Mat4, p mgl32.Vec3) mgl32.Vec4 {
	return vp.Mul4x1(p.Vec4(1))
}

// projectPoint applies a view-projection matrix to a world-space point and
// performs the perspective divide.
func projectPoint(vp mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	clip := projectClip(vp, p)
	return clip.Vec3().Mul(1 / clip.W())
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func TestShadowCamera_DirectionalCenterProjectsToScreenCenter(t *testing.T) {
	assert := assert.New(t)

	cam := NewShadowCamera(WithCenter(10, 0, -5), WithHalfExtent(20))
	l := light.NewLight(light.LightTypeDirectional, light.WithDirection(0, -1, 0.2))
	cam.Update(l)

	ndc := projectPoint(cam.ViewProjectionMatrix(), mgl32.Vec3{10, 0, -5})
	assert.InDelta(0, ndc.X(), 1e-5)
	assert.InDelta(0, ndc.Y(), 1e-5)
}

func TestShadowCamera_DirectionalVolumeCoversHalfExtent(t *testing.T) {
	assert := assert.New(t)

	cam := NewShadowCamera(WithHalfExtent(40), WithNear(0.1), WithFar(200))
	l := light.NewLight(light.LightTypeDirectional, light.WithDirection(0, 0, -1))
	cam.Update(l)

	vp := cam.ViewProjectionMatrix()

	inside := projectPoint(vp, mgl32.Vec3{39, 0, -40})
	assert.Less(abs32(inside.X()), float32(1.0))

	outside := projectPoint(vp, mgl32.Vec3{41, 0, -40})
	assert.Greater(abs32(outside.X()), float32(1.0))
}

func TestShadowCamera_SpotFrustumCoversOuterCone(t *testing.T) {
	assert := assert.New(t)

	cam := NewShadowCamera(WithNear(0.1), WithFar(100))
	l := light.NewLight(light.LightTypeSpot,
		light.WithPosition(0, 5, 0),
		light.WithDirection(0, -1, 0),
		light.WithSpotCone(20, 30),
	)
	cam.Update(l)

	vp := cam.ViewProjectionMatrix()

	// A point just inside the 30-degree outer cone stays inside the frustum:
	// tan(30°)*5 ~= 2.886 is the half-width 5 units below the apex.
	inside := projectPoint(vp, mgl32.Vec3{2.6, 0, 0})
	assert.Less(abs32(inside.X()), float32(1.0))

	// A point well outside the cone falls off screen.
	outside := projectPoint(vp, mgl32.Vec3{5, 0, 0})
	assert.Greater(abs32(outside.X()), float32(1.0))
}

func TestShadowCamera_DegenerateDirectionStillProducesFiniteMatrices(t *testing.T) {
	assert := assert.New(t)

	cam := NewShadowCamera()
	l := light.NewLight(light.LightTypeDirectional)
	l.SetDirection(0, 0, 0)
	cam.Update(l)

	vp := cam.ViewProjectionMatrix()
	for i := range 16 {
		assert.False(isNaN32(vp[i]), "matrix element %d is NaN", i)
	}

	// Straight-down directions are parallel to the default up vector and need
	// the fallback basis.
	l.SetDirection(0, -1, 0)
	cam.Update(l)
	vp = cam.ViewProjectionMatrix()
	for i := range 16 {
		assert.False(isNaN32(vp[i]), "matrix element %d is NaN", i)
	}
}

func TestShadowCamera_CubeViewsCoverAllAxes(t *testing.T) {
	assert := assert.New(t)

	l := light.NewLight(light.LightTypePoint, light.WithPosition(1, 2, 3))
	views := CubeShadowViewProjections(l, 0.1, 100)

	// Each axis-aligned probe point must land on screen center of exactly its
	// own face, in attachment-layer order +X, -X, +Y, -Y, +Z, -Z.
	probes := [6]mgl32.Vec3{
		{11, 2, 3}, {-9, 2, 3},
		{1, 12, 3}, {1, -8, 3},
		{1, 2, 13}, {1, 2, -7},
	}
	for face, probe := range probes {
		clip := projectClip(views[face], probe)
		assert.Greater(clip.W(), float32(0), "probe must be in front of face %d", face)
		ndc := clip.Vec3().Mul(1 / clip.W())
		assert.InDelta(0, ndc.X(), 1e-4, "face %d", face)
		assert.InDelta(0, ndc.Y(), 1e-4, "face %d", face)

		opposite := face ^ 1
		behind := projectClip(views[opposite], probe)
		assert.Less(behind.W(), float32(0), "probe must be behind face %d", opposite)
	}
}

func isNaN32(f float32) bool { return f != f }
