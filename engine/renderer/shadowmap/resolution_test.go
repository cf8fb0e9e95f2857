package shadowmap

import (
	"testing"

	"github.com/Carmen-Shannon/umbra-go/engine/light"
	"github.com/stretchr/testify/assert"
)

func TestResolution_IndexRoundTrip(t *testing.T) {
	assert := assert.New(t)

	expected := map[uint32]uint8{
		256:  0,
		512:  1,
		1024: 2,
		2048: 3,
		4096: 4,
	}
	for resolution, index := range expected {
		assert.Equal(index, ResolutionToIndex(resolution))
		assert.Equal(resolution, IndexToResolution(index))
	}
}

func TestResolution_RejectsUnsupportedValues(t *testing.T) {
	for _, resolution := range []uint32{0, 1, 100, 128, 768, 8192} {
		assert.Panics(t, func() { ResolutionToIndex(resolution) }, "resolution %d", resolution)
	}
	assert.Panics(t, func() { IndexToResolution(numResolutionBuckets) })
}

func TestMode_PointLightsUseCubeMaps(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ModeVSM, modeForLight(light.LightTypeDirectional))
	assert.Equal(ModeVSM, modeForLight(light.LightTypeSpot))
	assert.Equal(ModeCube, modeForLight(light.LightTypePoint))
}
