package scene

import (
	"sync"

	"github.com/Carmen-Shannon/umbra-go/engine/light"
)

type scene struct {
	mu sync.RWMutex

	name   string
	active bool

	ambientColor [3]float32
	lights       []light.Light
}

// Scene manages a collection of lights with a stable registration order. The
// order matters: the per-frame ShaderLight list is built from it, and the
// shadow map registry keys cached GPU resources by each light's position in
// that list.
// Scenes can be hot-swapped via the Active flag to switch between different views or levels.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// AddLight adds a light source to the scene. Lights keep their insertion
	// order; shadow-casting lights are assigned shadow map layers in this order.
	//
	// Parameters:
	//   - l: the Light to add
	AddLight(l light.Light)

	// RemoveLight removes a light source from the scene by reference.
	//
	// Parameters:
	//   - l: the Light to remove
	RemoveLight(l light.Light)

	// Lights returns all lights currently registered in the scene, in
	// registration order.
	//
	// Returns:
	//   - []light.Light: the scene's light list
	Lights() []light.Light

	// ShaderLights returns the per-frame renderable light list: enabled lights
	// in registration order, each tagged with its list index and shadow flag.
	// This is the list the shadow map registry reconciles against.
	//
	// Returns:
	//   - []light.ShaderLight: the renderable light list
	ShaderLights() []light.ShaderLight

	// AmbientColor returns the scene's ambient light color.
	//
	// Returns:
	//   - [3]float32: the ambient RGB color
	AmbientColor() [3]float32

	// SetAmbientColor sets the scene's ambient light color.
	//
	// Parameters:
	//   - color: the ambient RGB color
	SetAmbientColor(color [3]float32)

	// Clear removes all lights from the scene.
	Clear()
}

var _ Scene = &scene{}

// NewScene creates a new empty Scene with any provided options applied.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		active: true,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) AddLight(l light.Light) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *scene) RemoveLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.lights {
		if existing == l {
			s.lights = append(s.lights[:i], s.lights[i+1:]...)
			return
		}
	}
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]light.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *scene) ShaderLights() []light.ShaderLight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return light.BuildShaderLights(s.lights)
}

func (s *scene) AmbientColor() [3]float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ambientColor
}

func (s *scene) SetAmbientColor(color [3]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambientColor = color
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = nil
}
