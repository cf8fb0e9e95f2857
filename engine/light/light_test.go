package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLight_DefaultsAreSensible(t *testing.T) {
	assert := assert.New(t)

	l := NewLight(LightTypePoint)
	assert.Equal(LightTypePoint, l.Type())
	assert.Equal("point light", l.Name())
	assert.True(l.Enabled())
	assert.False(l.CastsShadows())
	assert.Equal(DefaultShadowMapResolution, l.ShadowMapResolution())
	assert.Equal([3]float32{1, 1, 1}, l.Color())
	assert.Equal(float32(1.0), l.Intensity())
}

func TestLight_BuilderOptionsApplyInOrder(t *testing.T) {
	assert := assert.New(t)

	l := NewLight(LightTypeSpot,
		WithName("placeholder"),
		WithName("torch"),
		WithPosition(1, 2, 3),
		WithIntensity(5),
		WithRange(42),
	)
	assert.Equal("torch", l.Name(), "later options win")
	assert.Equal([3]float32{1, 2, 3}, l.Position())
	assert.Equal(float32(5), l.Intensity())
	assert.Equal(float32(42), l.Range())
}

func TestLight_DirectionIsNormalized(t *testing.T) {
	assert := assert.New(t)

	l := NewLight(LightTypeDirectional, WithDirection(0, -2, 0))
	assert.Equal([3]float32{0, -1, 0}, l.Direction())

	l.SetDirection(3, 0, 4)
	d := l.Direction()
	assert.InDelta(0.6, d[0], 1e-6)
	assert.InDelta(0.8, d[2], 1e-6)
}

func TestLight_SpotConeStoresCosines(t *testing.T) {
	assert := assert.New(t)

	l := NewLight(LightTypeSpot, WithSpotCone(0, 60))
	assert.InDelta(1.0, l.InnerCone(), 1e-6)
	assert.InDelta(0.5, l.OuterCone(), 1e-6)
}

func TestLight_ShadowSettings(t *testing.T) {
	assert := assert.New(t)

	l := NewLight(LightTypeDirectional,
		WithCastsShadows(true),
		WithShadowMapResolution(4096),
	)
	assert.True(l.CastsShadows())
	assert.Equal(uint32(4096), l.ShadowMapResolution())

	l.SetShadowMapResolution(256)
	assert.Equal(uint32(256), l.ShadowMapResolution())
}

func TestBuildShaderLights_SkipsNilAndDisabled(t *testing.T) {
	assert := assert.New(t)

	enabled := NewLight(LightTypeDirectional, WithCastsShadows(true))
	disabled := NewLight(LightTypePoint, WithEnabled(false))
	spot := NewLight(LightTypeSpot)

	shaderLights := BuildShaderLights([]Light{enabled, nil, disabled, spot})
	if !assert.Len(shaderLights, 2) {
		return
	}

	assert.Same(enabled, shaderLights[0].Light)
	assert.True(shaderLights[0].Shadows)
	assert.Equal(0, shaderLights[0].Index)

	assert.Same(spot, shaderLights[1].Light)
	assert.False(shaderLights[1].Shadows)
	assert.Equal(1, shaderLights[1].Index)
}

func TestBuildShaderLights_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildShaderLights(nil))
}
