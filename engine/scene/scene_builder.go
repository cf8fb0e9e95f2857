package scene

import "github.com/Carmen-Shannon/umbra-go/engine/light"

// SceneBuilderOption defines a function that modifies the scene during
// construction.
type SceneBuilderOption func(*scene)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene identifier
//
// Returns:
//   - SceneBuilderOption: the option
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithActive sets whether the scene starts active. Scenes are active by
// default.
//
// Parameters:
//   - active: true to start active
//
// Returns:
//   - SceneBuilderOption: the option
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithAmbientColor sets the scene's ambient light color.
//
// Parameters:
//   - r, g, b: the ambient RGB color
//
// Returns:
//   - SceneBuilderOption: the option
func WithAmbientColor(r, g, b float32) SceneBuilderOption {
	return func(s *scene) {
		s.ambientColor = [3]float32{r, g, b}
	}
}

// WithLights adds the given lights in order. Nil entries are skipped.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - SceneBuilderOption: the option
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		for _, l := range lights {
			if l != nil {
				s.lights = append(s.lights, l)
			}
		}
	}
}
