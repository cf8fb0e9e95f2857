package shadowmap

import (
	"fmt"

	"github.com/Carmen-Shannon/umbra-go/common"
	"github.com/Carmen-Shannon/umbra-go/engine/light"
	"github.com/Carmen-Shannon/umbra-go/engine/logger"
	"github.com/Carmen-Shannon/umbra-go/engine/renderer/allocator"
	"go.uber.org/zap"
)

// registry is the implementation of the Registry interface.
type registry struct {
	alloc allocator.Allocator
	log   *zap.Logger

	entries     []*Entry
	depthArrays map[uint32]allocator.Texture // shared VSM arrays, keyed by resolution

	// warnedCubeBlur is set after the first warning about the 6-attachment
	// capability shortfall; the warning is emitted once per registry, not per
	// light.
	warnedCubeBlur bool
}

// Registry owns the shadow map entries and the shared depth texture arrays
// they reference, and decides each frame whether the cached resources can be
// reused or the whole set must be rebuilt.
//
// All methods must be called from the thread that owns the graphics device;
// the registry performs no internal locking.
type Registry interface {
	// Reconcile compares the cached shadow resources against the frame's
	// light list and rebuilds everything from scratch when the shadow-casting
	// configuration has structurally changed. When nothing relevant changed,
	// no GPU resource is touched; this is the per-frame fast path.
	//
	// A rebuild releases every entry and shared array, re-buckets directional
	// and spot lights by resolution, allocates one shared depth texture array
	// per occupied bucket, then constructs one entry per shadow-casting light
	// in list order. If no graphics device is available this is a no-op.
	//
	// Resolutions outside the supported power-of-two range and duplicate
	// light indices are contract violations and panic.
	//
	// Parameters:
	//   - lights: the frame's renderable light list, in stable order
	Reconcile(lights []light.ShaderLight)

	// ReleaseCachedResources destroys every entry's owned GPU resources and
	// every shared depth texture array, then empties both collections.
	// Idempotent; also invoked by Release at end of life.
	ReleaseCachedResources()

	// Entry returns the shadow map entry for the given light index, or nil if
	// the light currently casts no shadow. Nil is not an error.
	//
	// Parameters:
	//   - lightIndex: the light's index within the frame light list
	//
	// Returns:
	//   - *Entry: the entry, or nil if absent
	Entry(lightIndex int) *Entry

	// EntryCount returns the number of live shadow map entries.
	//
	// Returns:
	//   - int: the entry count
	EntryCount() int

	// Release destroys all cached GPU resources. Must be called when the
	// owning render layer is torn down; the registry must not be used after.
	Release()
}

var _ Registry = &registry{}

// NewRegistry creates a shadow map registry over the given resource allocator
// with any provided options applied. The allocator is held, not owned: the
// host controls the device's lifetime.
//
// Parameters:
//   - alloc: the resource allocator wrapping the graphics device
//   - opts: variadic list of RegistryBuilderOption functions
//
// Returns:
//   - Registry: a new Registry instance
func NewRegistry(alloc allocator.Allocator, opts ...RegistryBuilderOption) Registry {
	r := &registry{
		alloc:       alloc,
		depthArrays: make(map[uint32]allocator.Texture),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.Default()
	}
	return r
}

func (r *registry) Reconcile(lights []light.ShaderLight) {
	// Bail out if there is no device, since no resources can be created.
	if r.alloc == nil || !r.alloc.Valid() {
		return
	}

	numShadows := 0
	var bucketLayerCount [numResolutionBuckets]uint32
	lightToLayer := make([]uint32, len(lights))

	// Assign each shadow-casting directional/spot light a candidate layer:
	// the Nth such light requesting resolution R gets layer N-1 of R's
	// bucket, counted in list order independent of previous assignments.
	for i, sl := range lights {
		mode := modeForLight(sl.Light.Type())
		if sl.Shadows {
			numShadows++
		}
		if !sl.Shadows || mode == ModeCube {
			continue
		}
		bucket := ResolutionToIndex(sl.Light.ShadowMapResolution())
		lightToLayer[i] = bucketLayerCount[bucket]
		bucketLayerCount[bucket]++
	}

	// Only recreate shadow assets if something has changed.
	needsRebuild := numShadows != len(r.entries)
	if !needsRebuild {
		for i, sl := range lights {
			if !sl.Shadows {
				continue
			}

			entry := r.Entry(sl.Index)
			if entry == nil {
				needsRebuild = true
				break
			}

			mode := modeForLight(sl.Light.Type())
			var layerIndex uint32
			if mode == ModeVSM {
				layerIndex = lightToLayer[i]
			}
			if !entry.isCompatible(sl.Light.ShadowMapResolution(), layerIndex, mode) {
				needsRebuild = true
				break
			}
		}
	}

	if !needsRebuild {
		return
	}

	r.ReleaseCachedResources()

	// Allocate the shared VSM texture arrays before any entry references them.
	format := r.shadowTextureFormat()
	for bucket := uint8(0); bucket < numResolutionBuckets; bucket++ {
		numLayers := bucketLayerCount[bucket]
		if numLayers == 0 {
			continue
		}

		res := IndexToResolution(bucket)
		tex := r.alloc.CreateTexture(format, common.NewSquareSize(res), numLayers,
			allocator.FlagRenderTarget|allocator.FlagTextureArray,
			fmt.Sprintf("shadow map array %dx%d", res, res))
		// A failed allocation still claims the bucket, so entry construction
		// can tell "missing bucket" (contract violation) from "allocation
		// failed" (degraded, already logged by the allocator).
		r.depthArrays[res] = tex
	}

	for i, sl := range lights {
		if !sl.Shadows {
			continue
		}

		res := sl.Light.ShadowMapResolution()
		switch modeForLight(sl.Light.Type()) {
		case ModeVSM:
			r.addDirectionalShadowMap(sl.Index, res, lightToLayer[i], sl.Light.Name())
		case ModeCube:
			r.addCubeShadowMap(sl.Index, res, sl.Light.Name())
		}
	}
}

func (r *registry) ReleaseCachedResources() {
	for _, entry := range r.entries {
		entry.releaseResources()
	}
	r.entries = r.entries[:0]

	for res, tex := range r.depthArrays {
		if tex != nil {
			tex.Release()
		}
		delete(r.depthArrays, res)
	}
}

func (r *registry) Entry(lightIndex int) *Entry {
	for _, entry := range r.entries {
		if entry.lightIndex == lightIndex {
			return entry
		}
	}
	return nil
}

func (r *registry) EntryCount() int {
	return len(r.entries)
}

func (r *registry) Release() {
	r.ReleaseCachedResources()
}

// shadowTextureFormat selects the shadow depth storage format: 16-bit float
// when the device can render to it, otherwise the 16-bit unsigned-normalized
// fallback.
func (r *registry) shadowTextureFormat() allocator.TextureFormat {
	if r.alloc.IsTextureFormatSupported(allocator.FormatR16Float) {
		return allocator.FormatR16Float
	}
	return allocator.FormatR16Unorm
}

// addDirectionalShadowMap constructs the VSM entry for a directional or spot
// light: an owned copy texture and depth-stencil buffer, a main render target
// writing into the shared array at the assigned layer, and the two separable
// blur targets. The shared array for the light's resolution must already
// exist from the bucket-allocation step.
func (r *registry) addDirectionalShadowMap(lightIdx int, size uint32, layerIndex uint32, name string) *Entry {
	if existing := r.Entry(lightIdx); existing != nil {
		panic(fmt.Sprintf("shadowmap: duplicate entry for light index %d", lightIdx))
	}

	depthArray, ok := r.depthArrays[size]
	if !ok {
		panic(fmt.Sprintf("shadowmap: no shared depth texture array allocated for size %d", size))
	}

	texSize := common.NewSquareSize(size)
	format := r.shadowTextureFormat()
	depthCopy := r.alloc.CreateTexture(format, texSize, 1, allocator.FlagRenderTarget, name+" shadow copy")
	depthStencil := r.alloc.CreateDepthStencilBuffer(texSize, name+" shadow depth-stencil")

	entry := newVSMEntry(lightIdx, depthArray, depthCopy, depthStencil, layerIndex)

	// Main target: the shared array at the assigned layer, with the entry's
	// depth-stencil buffer.
	target := r.alloc.CreateRenderTarget(allocator.RenderTargetDescriptor{
		ColorAttachments: []allocator.ColorAttachment{{Texture: depthArray, Layer: layerIndex}},
		DepthStencil:     depthStencil,
		Label:            name + " shadow map",
	})
	if target != nil {
		// The same descriptor serves every depth target of this entry since
		// format and load/store behavior match across shadow modes.
		if entry.renderPassDesc == nil {
			entry.renderPassDesc = target.NewCompatibleRenderPassDescriptor()
		}
		target.SetRenderPassDescriptor(entry.renderPassDesc)
	}
	entry.vsm.target = target

	// Blur X: array layer -> copy.
	blurX := r.alloc.CreateRenderTarget(allocator.RenderTargetDescriptor{
		ColorAttachments: []allocator.ColorAttachment{{Texture: depthCopy}},
		Label:            name + " shadow blur X",
	})
	if blurX != nil {
		entry.blurPassDesc = blurX.NewCompatibleRenderPassDescriptor()
		blurX.SetRenderPassDescriptor(entry.blurPassDesc)
	}
	entry.blurX = blurX

	// Blur Y: copy -> array layer.
	blurY := r.alloc.CreateRenderTarget(allocator.RenderTargetDescriptor{
		ColorAttachments: []allocator.ColorAttachment{{Texture: depthArray, Layer: layerIndex}},
		Label:            name + " shadow blur Y",
	})
	if blurY != nil {
		blurY.SetRenderPassDescriptor(entry.blurPassDesc)
	}
	entry.blurY = blurY

	r.entries = append(r.entries, entry)
	return entry
}

// addCubeShadowMap constructs the cube entry for a point light: owned depth
// and copy cube maps, a shared depth-stencil buffer, six per-face render
// targets, and, when the device supports at least 6 simultaneous color
// attachments, two 6-attachment blur targets that blur all faces in one
// pass per direction.
func (r *registry) addCubeShadowMap(lightIdx int, size uint32, name string) *Entry {
	if existing := r.Entry(lightIdx); existing != nil {
		panic(fmt.Sprintf("shadowmap: duplicate entry for light index %d", lightIdx))
	}

	texSize := common.NewSquareSize(size)
	format := r.shadowTextureFormat()
	cubeFlags := allocator.FlagRenderTarget | allocator.FlagCubeMap
	depthCube := r.alloc.CreateTexture(format, texSize, 0, cubeFlags, name+" shadow cube")
	cubeCopy := r.alloc.CreateTexture(format, texSize, 0, cubeFlags, name+" shadow cube copy")
	depthStencil := r.alloc.CreateDepthStencilBuffer(texSize, name+" shadow depth-stencil")

	entry := newCubeEntry(lightIdx, depthCube, cubeCopy, depthStencil)

	// Six render targets, each referencing one face of the cube map and
	// sharing the one depth-stencil buffer.
	for _, face := range CubeFaces {
		target := r.alloc.CreateRenderTarget(allocator.RenderTargetDescriptor{
			ColorAttachments: []allocator.ColorAttachment{{Texture: depthCube, Layer: uint32(face)}},
			DepthStencil:     depthStencil,
			Label:            fmt.Sprintf("%s shadow cube face: %s", name, face),
		})
		if target != nil {
			if entry.renderPassDesc == nil {
				entry.renderPassDesc = target.NewCompatibleRenderPassDescriptor()
			}
			target.SetRenderPassDescriptor(entry.renderPassDesc)
		}
		entry.cube.faceTargets[face] = target
	}

	// Blurring a cube map requires all six faces attached as simultaneous
	// color attachments.
	if r.alloc.MaxColorAttachments() >= NumCubeFaces {
		// Blur X: depth cube -> copy cube, all faces in one pass.
		blurX := r.alloc.CreateRenderTarget(allocator.RenderTargetDescriptor{
			ColorAttachments: cubeFaceAttachments(cubeCopy),
			Label:            name + " shadow cube blur X",
		})
		if blurX != nil {
			entry.blurPassDesc = blurX.NewCompatibleRenderPassDescriptor()
			blurX.SetRenderPassDescriptor(entry.blurPassDesc)
		}
		entry.blurX = blurX

		// Blur Y: copy cube -> depth cube.
		blurY := r.alloc.CreateRenderTarget(allocator.RenderTargetDescriptor{
			ColorAttachments: cubeFaceAttachments(depthCube),
			Label:            name + " shadow cube blur Y",
		})
		if blurY != nil {
			blurY.SetRenderPassDescriptor(entry.blurPassDesc)
		}
		entry.blurY = blurY
	} else if !r.warnedCubeBlur {
		r.warnedCubeBlur = true
		r.log.Warn("cube shadow maps will not be blurred: device supports fewer than 6 simultaneous color attachments",
			zap.Int("maxColorAttachments", r.alloc.MaxColorAttachments()))
	}

	r.entries = append(r.entries, entry)
	return entry
}

// cubeFaceAttachments builds the six-attachment list binding every face of a
// cube map as a color attachment, in face order.
func cubeFaceAttachments(tex allocator.Texture) []allocator.ColorAttachment {
	attachments := make([]allocator.ColorAttachment, NumCubeFaces)
	for _, face := range CubeFaces {
		attachments[face] = allocator.ColorAttachment{Texture: tex, Layer: uint32(face)}
	}
	return attachments
}
