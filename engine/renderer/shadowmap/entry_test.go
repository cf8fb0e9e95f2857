package shadowmap

import (
	"testing"

	"github.com/Carmen-Shannon/umbra-go/common"
	"github.com/Carmen-Shannon/umbra-go/engine/light"
	"github.com/stretchr/testify/assert"
)

func TestEntry_CompatibilityChecksSizeLayerAndMode(t *testing.T) {
	assert := assert.New(t)

	array := &fakeTexture{size: common.NewSquareSize(1024), layers: 2}
	entry := newVSMEntry(0, array, &fakeTexture{size: common.NewSquareSize(1024), layers: 1}, &fakeRenderBuffer{}, 1)

	assert.True(entry.isCompatible(1024, 1, ModeVSM))
	assert.True(entry.isCompatible(1024, 0, ModeVSM), "any layer within the array range is servable")
	assert.False(entry.isCompatible(2048, 1, ModeVSM), "size mismatch")
	assert.False(entry.isCompatible(1024, 2, ModeVSM), "layer beyond the array range")
	assert.False(entry.isCompatible(1024, 1, ModeCube), "mode mismatch")

	cube := newCubeEntry(1, &fakeTexture{size: common.NewSquareSize(512), layers: 6},
		&fakeTexture{size: common.NewSquareSize(512), layers: 6}, &fakeRenderBuffer{})
	assert.True(cube.isCompatible(512, 0, ModeCube))
	assert.False(cube.isCompatible(256, 0, ModeCube))
	assert.False(cube.isCompatible(512, 0, ModeVSM))
}

func TestEntry_FailedAllocationIsNeverCompatible(t *testing.T) {
	assert := assert.New(t)

	entry := newVSMEntry(0, nil, nil, nil, 0)
	assert.False(entry.isCompatible(1024, 0, ModeVSM))

	cube := newCubeEntry(1, nil, nil, nil)
	assert.False(cube.isCompatible(512, 0, ModeCube))
}

func TestEntry_ReleaseKeepsSharedArrayAlive(t *testing.T) {
	assert := assert.New(t)

	alloc := newFakeAllocator()
	reg := NewRegistry(alloc)
	reg.Reconcile(light.BuildShaderLights([]light.Light{
		shadowLight(light.LightTypeDirectional, 1024),
	}))

	entry := reg.Entry(0)
	array := entry.DepthArray().(*fakeTexture)
	copyTex := entry.DepthCopy().(*fakeTexture)

	entry.releaseResources()

	assert.False(array.released, "the registry owns the shared array")
	assert.True(copyTex.released)
	assert.Nil(entry.DepthArray())
	assert.Nil(entry.RenderTarget())
	assert.Nil(entry.BlurRenderTargetX())
	assert.Equal(unassignedLightIndex, entry.LightIndex())

	// Releasing twice is harmless.
	entry.releaseResources()
}

func TestEntry_ReleaseIsSafeOnPartialConstruction(t *testing.T) {
	entry := newCubeEntry(0, &fakeTexture{size: common.NewSquareSize(256), layers: 6}, nil, nil)
	assert.NotPanics(t, entry.releaseResources)
	assert.NotPanics(t, entry.releaseResources)
}
