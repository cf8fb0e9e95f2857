package scene

import (
	"fmt"
	"math/bits"
	"os"

	"github.com/Carmen-Shannon/umbra-go/engine/light"
	"gopkg.in/yaml.v3"
)

// LightConfig describes one light in a scene YAML file.
type LightConfig struct {
	// Type is the light kind: "directional", "point", or "spot".
	Type string `yaml:"type"`
	// Name is the optional debug name; defaults per light type when empty.
	Name string `yaml:"name,omitempty"`

	Position  *[3]float32 `yaml:"position,omitempty"`
	Direction *[3]float32 `yaml:"direction,omitempty"`
	Color     *[3]float32 `yaml:"color,omitempty"`
	Intensity *float32    `yaml:"intensity,omitempty"`
	Range     *float32    `yaml:"range,omitempty"`

	// InnerConeDeg and OuterConeDeg are the spot cone half-angles in degrees.
	InnerConeDeg *float32 `yaml:"inner_cone_deg,omitempty"`
	OuterConeDeg *float32 `yaml:"outer_cone_deg,omitempty"`

	Enabled *bool `yaml:"enabled,omitempty"`

	CastsShadows bool `yaml:"casts_shadows,omitempty"`
	// ShadowMapResolution must be a power of two between 256 and 4096
	// inclusive when set; 0 selects the default resolution.
	ShadowMapResolution uint32 `yaml:"shadow_map_resolution,omitempty"`
}

// Config describes a scene YAML file.
type Config struct {
	Name         string        `yaml:"name,omitempty"`
	AmbientColor *[3]float32   `yaml:"ambient_color,omitempty"`
	Lights       []LightConfig `yaml:"lights"`
}

// Load parses a scene YAML file and builds the scene it describes. Validation
// failures are returned as errors, never panics: a malformed file is user
// input, not a caller bug.
//
// Parameters:
//   - path: the YAML file path
//
// Returns:
//   - Scene: the loaded scene
//   - error: error if the file cannot be read or fails validation
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scene config %s: %w", path, err)
	}
	return FromConfig(&cfg)
}

// FromConfig builds a scene from an already parsed configuration.
//
// Parameters:
//   - cfg: the scene configuration
//
// Returns:
//   - Scene: the built scene
//   - error: error if any light fails validation
func FromConfig(cfg *Config) (Scene, error) {
	options := []SceneBuilderOption{WithName(cfg.Name)}
	if cfg.AmbientColor != nil {
		c := *cfg.AmbientColor
		options = append(options, WithAmbientColor(c[0], c[1], c[2]))
	}

	s := NewScene(options...)
	for i, lc := range cfg.Lights {
		l, err := buildLight(&lc)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.AddLight(l)
	}
	return s, nil
}

func buildLight(lc *LightConfig) (light.Light, error) {
	var lightType light.LightType
	switch lc.Type {
	case "directional":
		lightType = light.LightTypeDirectional
	case "point":
		lightType = light.LightTypePoint
	case "spot":
		lightType = light.LightTypeSpot
	default:
		return nil, fmt.Errorf("unknown light type %q", lc.Type)
	}

	if lc.CastsShadows && lc.ShadowMapResolution != 0 {
		if err := validateShadowResolution(lc.ShadowMapResolution); err != nil {
			return nil, err
		}
	}

	options := []light.LightBuilderOption{
		light.WithCastsShadows(lc.CastsShadows),
	}
	if lc.Name != "" {
		options = append(options, light.WithName(lc.Name))
	}
	if lc.Position != nil {
		p := *lc.Position
		options = append(options, light.WithPosition(p[0], p[1], p[2]))
	}
	if lc.Direction != nil {
		d := *lc.Direction
		options = append(options, light.WithDirection(d[0], d[1], d[2]))
	}
	if lc.Color != nil {
		c := *lc.Color
		options = append(options, light.WithColor(c[0], c[1], c[2]))
	}
	if lc.Intensity != nil {
		options = append(options, light.WithIntensity(*lc.Intensity))
	}
	if lc.Range != nil {
		options = append(options, light.WithRange(*lc.Range))
	}
	if lc.InnerConeDeg != nil || lc.OuterConeDeg != nil {
		inner, outer := float32(30), float32(45)
		if lc.InnerConeDeg != nil {
			inner = *lc.InnerConeDeg
		}
		if lc.OuterConeDeg != nil {
			outer = *lc.OuterConeDeg
		}
		options = append(options, light.WithSpotCone(inner, outer))
	}
	if lc.Enabled != nil {
		options = append(options, light.WithEnabled(*lc.Enabled))
	}
	if lc.ShadowMapResolution != 0 {
		options = append(options, light.WithShadowMapResolution(lc.ShadowMapResolution))
	}

	return light.NewLight(lightType, options...), nil
}

func validateShadowResolution(resolution uint32) error {
	if bits.OnesCount32(resolution) != 1 ||
		resolution < light.MinShadowMapResolution ||
		resolution > light.MaxShadowMapResolution {
		return fmt.Errorf("shadow map resolution %d: must be a power of two between %d and %d",
			resolution, light.MinShadowMapResolution, light.MaxShadowMapResolution)
	}
	return nil
}
