package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/umbra-go/engine/light"
	"github.com/stretchr/testify/assert"
)

func TestScene_LightsKeepRegistrationOrder(t *testing.T) {
	assert := assert.New(t)

	sun := light.NewLight(light.LightTypeDirectional, light.WithName("sun"))
	lamp := light.NewLight(light.LightTypePoint, light.WithName("lamp"))
	torch := light.NewLight(light.LightTypeSpot, light.WithName("torch"))

	s := NewScene(WithName("level1"), WithLights(sun, lamp))
	s.AddLight(torch)

	lights := s.Lights()
	if assert.Len(lights, 3) {
		assert.Equal("sun", lights[0].Name())
		assert.Equal("lamp", lights[1].Name())
		assert.Equal("torch", lights[2].Name())
	}

	s.RemoveLight(lamp)
	lights = s.Lights()
	if assert.Len(lights, 2) {
		assert.Equal("sun", lights[0].Name())
		assert.Equal("torch", lights[1].Name())
	}

	s.Clear()
	assert.Empty(s.Lights())
}

func TestScene_ShaderLightsSkipDisabledAndIndexByPosition(t *testing.T) {
	assert := assert.New(t)

	s := NewScene(WithLights(
		light.NewLight(light.LightTypeDirectional, light.WithCastsShadows(true)),
		light.NewLight(light.LightTypePoint, light.WithEnabled(false)),
		light.NewLight(light.LightTypeSpot),
	))

	shaderLights := s.ShaderLights()
	if assert.Len(shaderLights, 2) {
		assert.Equal(0, shaderLights[0].Index)
		assert.True(shaderLights[0].Shadows)
		assert.Equal(1, shaderLights[1].Index)
		assert.False(shaderLights[1].Shadows)
		assert.Equal(light.LightTypeSpot, shaderLights[1].Light.Type())
	}
}

const sceneYAML = `
name: courtyard
ambient_color: [0.1, 0.1, 0.15]
lights:
  - type: directional
    name: sun
    direction: [0.3, -1.0, 0.2]
    color: [1.0, 0.95, 0.8]
    casts_shadows: true
    shadow_map_resolution: 2048
  - type: spot
    position: [0, 4, 0]
    direction: [0, -1, 0]
    inner_cone_deg: 20
    outer_cone_deg: 35
    range: 25
    casts_shadows: true
  - type: point
    name: brazier
    position: [3, 1, -2]
    intensity: 2.5
    enabled: false
`

func writeSceneFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfig_LoadBuildsSceneFromYAML(t *testing.T) {
	assert := assert.New(t)

	s, err := Load(writeSceneFile(t, sceneYAML))
	assert.NoError(err)

	assert.Equal("courtyard", s.Name())
	assert.Equal([3]float32{0.1, 0.1, 0.15}, s.AmbientColor())

	lights := s.Lights()
	if !assert.Len(lights, 3) {
		return
	}

	sun := lights[0]
	assert.Equal(light.LightTypeDirectional, sun.Type())
	assert.Equal("sun", sun.Name())
	assert.True(sun.CastsShadows())
	assert.Equal(uint32(2048), sun.ShadowMapResolution())

	torch := lights[1]
	assert.Equal(light.LightTypeSpot, torch.Type())
	assert.Equal(uint32(light.DefaultShadowMapResolution), torch.ShadowMapResolution())
	assert.Equal(float32(25), torch.Range())

	brazier := lights[2]
	assert.Equal(light.LightTypePoint, brazier.Type())
	assert.False(brazier.Enabled())
	assert.Equal(float32(2.5), brazier.Intensity())

	// The disabled brazier drops out of the renderable list.
	assert.Len(s.ShaderLights(), 2)
}

func TestConfig_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown light type",
			yaml: "lights:\n  - type: area\n",
		},
		{
			name: "non power-of-two shadow resolution",
			yaml: "lights:\n  - type: directional\n    casts_shadows: true\n    shadow_map_resolution: 1000\n",
		},
		{
			name: "shadow resolution above maximum",
			yaml: "lights:\n  - type: directional\n    casts_shadows: true\n    shadow_map_resolution: 8192\n",
		},
		{
			name: "malformed yaml",
			yaml: "lights: [whoops",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeSceneFile(t, tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestConfig_MissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
