package light

// ShaderLight is one element of the per-frame renderable light list. It pairs
// a scene Light with the per-frame state the shadow map registry reconciles
// against: whether the light requests a shadow map this frame, and its stable
// index within the list.
//
// The list is rebuilt every frame (or at any reconciliation point) by
// BuildShaderLights; Index always equals the element's position in the list.
type ShaderLight struct {
	// Light is the source scene light. Read-only from the registry's
	// perspective.
	Light Light

	// Shadows reports whether this light requests shadow map resources this
	// frame (the light is enabled and casts shadows).
	Shadows bool

	// Index is the light's stable position within the frame's light list.
	// Shadow map entries are keyed by this value.
	Index int
}

// BuildShaderLights flattens a scene's light set into the ordered per-frame
// list consumed by the shadow map registry and the render pass driver.
// Disabled lights are excluded; element order follows the input order, so a
// stable scene light set yields a stable list across frames.
//
// Parameters:
//   - lights: the scene's lights, in scene order
//
// Returns:
//   - []ShaderLight: the renderable light list with per-element indices assigned
func BuildShaderLights(lights []Light) []ShaderLight {
	shaderLights := make([]ShaderLight, 0, len(lights))
	for _, l := range lights {
		if l == nil || !l.Enabled() {
			continue
		}
		shaderLights = append(shaderLights, ShaderLight{
			Light:   l,
			Shadows: l.CastsShadows(),
			Index:   len(shaderLights),
		})
	}
	return shaderLights
}
