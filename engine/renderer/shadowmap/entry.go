package shadowmap

import (
	"github.com/Carmen-Shannon/umbra-go/engine/renderer/allocator"
)

// unassignedLightIndex marks an Entry not yet bound to a light.
const unassignedLightIndex = -1

// vsmAttachments holds the mode-specific resources of a directional or spot
// light's shadow map: one layer of the registry's shared depth texture array
// plus a private single-layer copy texture for the separable blur.
type vsmAttachments struct {
	// depthArray is the shared texture array; owned by the Registry, never
	// released by the entry.
	depthArray allocator.Texture
	// depthCopy is the owned ping-pong target for the horizontal blur pass.
	depthCopy allocator.Texture
	// layer is the entry's assigned layer within depthArray.
	layer uint32
	// target is the main render target writing into depthArray at layer.
	target allocator.RenderTarget
}

// cubeAttachments holds the mode-specific resources of a point light's shadow
// map: an owned depth cube map, its owned blur copy, and six per-face render
// targets.
type cubeAttachments struct {
	depthCube   allocator.Texture
	cubeCopy    allocator.Texture
	faceTargets [NumCubeFaces]allocator.RenderTarget
}

// Entry owns the GPU resources for exactly one shadow-casting light. Exactly
// one of the vsm/cube payloads is populated, selected by the entry's mode.
//
// Ownership: the entry owns every resource it references except the shared
// VSM depth texture array, which the Registry owns and shares across all
// entries bucketed into the same resolution. Any handle may be nil when the
// corresponding allocation failed; the failure was logged at creation time
// and downstream consumers must not dereference nil handles.
type Entry struct {
	lightIndex int
	mode       Mode

	// depthStencil is shared across the entry's depth render targets.
	depthStencil allocator.RenderBuffer

	// renderPassDesc is shared across the entry's main (per-face) targets;
	// format and load/store behavior are identical across faces and modes.
	renderPassDesc allocator.RenderPassDescriptor

	// blurX and blurY are the separable blur targets: X writes into the copy
	// texture, Y writes back into the depth map. Nil for cube entries on
	// devices without 6 simultaneous color attachments.
	blurX allocator.RenderTarget
	blurY allocator.RenderTarget

	// blurPassDesc is shared by both blur targets; distinct from
	// renderPassDesc because blur targets carry no depth-stencil attachment.
	blurPassDesc allocator.RenderPassDescriptor

	vsm  *vsmAttachments
	cube *cubeAttachments
}

// newVSMEntry constructs an entry in VSM mode referencing the shared depth
// texture array at the given layer. Render targets are attached afterwards by
// the registry's construction sequence.
func newVSMEntry(lightIndex int, depthArray, depthCopy allocator.Texture, depthStencil allocator.RenderBuffer, layer uint32) *Entry {
	return &Entry{
		lightIndex:   lightIndex,
		mode:         ModeVSM,
		depthStencil: depthStencil,
		vsm: &vsmAttachments{
			depthArray: depthArray,
			depthCopy:  depthCopy,
			layer:      layer,
		},
	}
}

// newCubeEntry constructs an entry in CUBE mode owning the given cube maps.
func newCubeEntry(lightIndex int, depthCube, cubeCopy allocator.Texture, depthStencil allocator.RenderBuffer) *Entry {
	return &Entry{
		lightIndex:   lightIndex,
		mode:         ModeCube,
		depthStencil: depthStencil,
		cube: &cubeAttachments{
			depthCube: depthCube,
			cubeCopy:  cubeCopy,
		},
	}
}

// LightIndex returns the index of the light this entry belongs to within the
// frame's light list.
//
// Returns:
//   - int: the light index
func (e *Entry) LightIndex() int {
	return e.lightIndex
}

// Mode returns the shadow map technique backing this entry.
//
// Returns:
//   - Mode: ModeVSM or ModeCube
func (e *Entry) Mode() Mode {
	return e.mode
}

// DepthArray returns the shared depth texture array for VSM entries, or nil
// for cube entries. The array is owned by the Registry.
//
// Returns:
//   - allocator.Texture: the shared array, or nil
func (e *Entry) DepthArray() allocator.Texture {
	if e.vsm == nil {
		return nil
	}
	return e.vsm.depthArray
}

// DepthCopy returns the owned blur copy texture for VSM entries, or nil for
// cube entries.
//
// Returns:
//   - allocator.Texture: the copy texture, or nil
func (e *Entry) DepthCopy() allocator.Texture {
	if e.vsm == nil {
		return nil
	}
	return e.vsm.depthCopy
}

// ArrayLayer returns the entry's assigned layer within the shared depth
// texture array. Zero for cube entries.
//
// Returns:
//   - uint32: the layer index
func (e *Entry) ArrayLayer() uint32 {
	if e.vsm == nil {
		return 0
	}
	return e.vsm.layer
}

// RenderTarget returns the main shadow depth render target for VSM entries,
// or nil for cube entries (which use per-face targets).
//
// Returns:
//   - allocator.RenderTarget: the main target, or nil
func (e *Entry) RenderTarget() allocator.RenderTarget {
	if e.vsm == nil {
		return nil
	}
	return e.vsm.target
}

// DepthCube returns the owned depth cube map for cube entries, or nil for
// VSM entries.
//
// Returns:
//   - allocator.Texture: the depth cube map, or nil
func (e *Entry) DepthCube() allocator.Texture {
	if e.cube == nil {
		return nil
	}
	return e.cube.depthCube
}

// CubeCopy returns the owned blur copy cube map for cube entries, or nil for
// VSM entries.
//
// Returns:
//   - allocator.Texture: the copy cube map, or nil
func (e *Entry) CubeCopy() allocator.Texture {
	if e.cube == nil {
		return nil
	}
	return e.cube.cubeCopy
}

// FaceRenderTarget returns the render target for one face of a cube entry's
// depth cube map, or nil for VSM entries.
//
// Parameters:
//   - face: the cube face
//
// Returns:
//   - allocator.RenderTarget: the face's target, or nil
func (e *Entry) FaceRenderTarget(face CubeFace) allocator.RenderTarget {
	if e.cube == nil || face >= NumCubeFaces {
		return nil
	}
	return e.cube.faceTargets[face]
}

// BlurRenderTargetX returns the horizontal blur target (depth map into copy),
// or nil when blurring is unavailable for this entry.
//
// Returns:
//   - allocator.RenderTarget: the blur-X target, or nil
func (e *Entry) BlurRenderTargetX() allocator.RenderTarget {
	return e.blurX
}

// BlurRenderTargetY returns the vertical blur target (copy back into depth
// map), or nil when blurring is unavailable for this entry.
//
// Returns:
//   - allocator.RenderTarget: the blur-Y target, or nil
func (e *Entry) BlurRenderTargetY() allocator.RenderTarget {
	return e.blurY
}

// RenderPassDescriptor returns the pass descriptor shared by the entry's main
// depth targets.
//
// Returns:
//   - allocator.RenderPassDescriptor: the shared descriptor, or nil
func (e *Entry) RenderPassDescriptor() allocator.RenderPassDescriptor {
	return e.renderPassDesc
}

// BlurRenderPassDescriptor returns the pass descriptor shared by the entry's
// blur targets.
//
// Returns:
//   - allocator.RenderPassDescriptor: the shared blur descriptor, or nil
func (e *Entry) BlurRenderPassDescriptor() allocator.RenderPassDescriptor {
	return e.blurPassDesc
}

// DepthStencil returns the depth-stencil buffer shared across the entry's
// depth render targets.
//
// Returns:
//   - allocator.RenderBuffer: the depth-stencil buffer, or nil
func (e *Entry) DepthStencil() allocator.RenderBuffer {
	return e.depthStencil
}

// isCompatible reports whether the entry's existing resources can serve a
// light with the given shadow map size, candidate array layer, and mode. Used
// by Reconcile to decide reuse versus rebuild. Entries whose backing texture
// failed to allocate are never compatible, so a failed allocation is retried
// on the next reconcile.
func (e *Entry) isCompatible(size uint32, layerIndex uint32, mode Mode) bool {
	if mode != e.mode {
		return false
	}

	switch mode {
	case ModeCube:
		if e.cube == nil || e.cube.cubeCopy == nil {
			return false
		}
		px := e.cube.cubeCopy.PixelSize()
		if px.Width != size || px.Height != size {
			return false
		}
	case ModeVSM:
		if e.vsm == nil || e.vsm.depthArray == nil {
			return false
		}
		px := e.vsm.depthArray.PixelSize()
		if px.Width != size || px.Height != size || layerIndex >= e.vsm.depthArray.ArraySize() {
			return false
		}
	}

	return true
}

// releaseResources destroys every GPU object the entry owns and clears all
// handles. The shared VSM depth texture array is only unreferenced; the
// Registry releases it. Safe to call on a partially constructed entry.
func (e *Entry) releaseResources() {
	release := func(t allocator.RenderTarget) {
		if t != nil {
			t.Release()
		}
	}

	if e.vsm != nil {
		e.vsm.depthArray = nil
		if e.vsm.depthCopy != nil {
			e.vsm.depthCopy.Release()
			e.vsm.depthCopy = nil
		}
		release(e.vsm.target)
		e.vsm.target = nil
	}

	if e.cube != nil {
		if e.cube.depthCube != nil {
			e.cube.depthCube.Release()
			e.cube.depthCube = nil
		}
		if e.cube.cubeCopy != nil {
			e.cube.cubeCopy.Release()
			e.cube.cubeCopy = nil
		}
		for i := range e.cube.faceTargets {
			release(e.cube.faceTargets[i])
			e.cube.faceTargets[i] = nil
		}
	}

	if e.depthStencil != nil {
		e.depthStencil.Release()
		e.depthStencil = nil
	}

	release(e.blurX)
	e.blurX = nil
	release(e.blurY)
	e.blurY = nil

	if e.renderPassDesc != nil {
		e.renderPassDesc.Release()
		e.renderPassDesc = nil
	}
	if e.blurPassDesc != nil {
		e.blurPassDesc.Release()
		e.blurPassDesc = nil
	}

	e.lightIndex = unassignedLightIndex
}
