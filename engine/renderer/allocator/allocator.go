// Package allocator wraps the graphics device behind a small resource-creation
// interface: textures, depth-stencil render buffers, and texture render
// targets, plus the capability queries that gate format selection and
// multi-attachment blur passes.
//
// The shadow map registry talks only to this interface; the WebGPU backend in
// this package is the production implementation, and tests substitute fakes
// that count creation calls.
package allocator

import "github.com/Carmen-Shannon/umbra-go/common"

// TextureFormat identifies a texture pixel format from the small set this
// subsystem allocates.
type TextureFormat int

const (
	// FormatUnknown is the zero value; never a valid allocation format.
	FormatUnknown TextureFormat = iota

	// FormatR16Float is a single-channel 16-bit float format, the preferred
	// shadow depth storage format.
	FormatR16Float

	// FormatR16Unorm is a single-channel 16-bit unsigned-normalized format,
	// the fallback shadow depth storage format on devices without renderable
	// R16Float support.
	FormatR16Unorm

	// FormatDepth24PlusStencil8 is the combined depth-stencil format used for
	// shadow pass depth-stencil buffers.
	FormatDepth24PlusStencil8
)

// String returns the format name for logging and debug labels.
func (f TextureFormat) String() string {
	switch f {
	case FormatR16Float:
		return "R16Float"
	case FormatR16Unorm:
		return "R16Unorm"
	case FormatDepth24PlusStencil8:
		return "Depth24PlusStencil8"
	default:
		return "Unknown"
	}
}

// TextureFlags describe how a texture will be used and shaped. Flags combine
// with bitwise OR.
type TextureFlags uint32

const (
	// FlagRenderTarget marks the texture as a render pass color attachment.
	FlagRenderTarget TextureFlags = 1 << iota

	// FlagTextureArray marks the texture as a 2D texture array with one or
	// more addressable layers.
	FlagTextureArray

	// FlagCubeMap marks the texture as a cube map with six faces.
	FlagCubeMap
)

// Texture is a GPU texture created by an Allocator. Implementations retain
// enough metadata (size, layer count, format) for compatibility checks without
// touching the device.
type Texture interface {
	// PixelSize returns the texture dimensions in pixels.
	//
	// Returns:
	//   - common.Size: width and height in pixels
	PixelSize() common.Size

	// ArraySize returns the number of addressable layers: the layer count for
	// texture arrays, 6 for cube maps, and 1 for plain 2D textures.
	//
	// Returns:
	//   - uint32: the layer count
	ArraySize() uint32

	// Format returns the texture pixel format.
	//
	// Returns:
	//   - TextureFormat: the format
	Format() TextureFormat

	// Flags returns the usage and shape flags the texture was created with.
	//
	// Returns:
	//   - TextureFlags: the flags
	Flags() TextureFlags

	// Label returns the debug label the texture was created with.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// Release destroys the GPU texture. Safe to call more than once.
	Release()
}

// RenderBuffer is a write-only depth-stencil attachment created by an
// Allocator, shared across the render targets of one shadow map entry.
type RenderBuffer interface {
	// PixelSize returns the buffer dimensions in pixels.
	//
	// Returns:
	//   - common.Size: width and height in pixels
	PixelSize() common.Size

	// Release destroys the GPU buffer. Safe to call more than once.
	Release()
}

// RenderPassDescriptor captures the attachment formats and load/store behavior
// of a render target so that compatible targets can share one descriptor. It
// is an opaque token from the registry's perspective.
type RenderPassDescriptor interface {
	// Release destroys the descriptor. Safe to call more than once.
	Release()
}

// ColorAttachment binds one layer of a texture as a render target color
// attachment. Layer selects the array layer for texture arrays and the face
// for cube maps; it is ignored for plain 2D textures.
type ColorAttachment struct {
	// Texture is the attached texture.
	Texture Texture
	// Layer is the array layer or cube face index to attach.
	Layer uint32
}

// RenderTargetDescriptor describes the attachments of a texture render target.
type RenderTargetDescriptor struct {
	// ColorAttachments lists the color attachments in binding order. Shadow
	// depth passes use one; cube blur passes use six.
	ColorAttachments []ColorAttachment
	// DepthStencil is the optional shared depth-stencil buffer. Blur targets
	// have none.
	DepthStencil RenderBuffer
	// Label is the debug label for the target.
	Label string
}

// RenderTarget is a GPU render target created by an Allocator. The render
// pass driver binds it when recording shadow depth and blur passes.
type RenderTarget interface {
	// Label returns the debug label the target was created with.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// NewCompatibleRenderPassDescriptor creates a render pass descriptor
	// matching this target's attachment formats and load/store behavior. The
	// caller owns the returned descriptor and may share it across all targets
	// with identical layouts.
	//
	// Returns:
	//   - RenderPassDescriptor: the new descriptor
	NewCompatibleRenderPassDescriptor() RenderPassDescriptor

	// SetRenderPassDescriptor associates a (possibly shared) descriptor with
	// this target. The target does not take ownership.
	//
	// Parameters:
	//   - desc: the descriptor to associate
	SetRenderPassDescriptor(desc RenderPassDescriptor)

	// RenderPassDescriptor returns the descriptor associated via
	// SetRenderPassDescriptor, or nil.
	//
	// Returns:
	//   - RenderPassDescriptor: the associated descriptor
	RenderPassDescriptor() RenderPassDescriptor

	// Release destroys the GPU target and any views it created. The attached
	// textures and depth-stencil buffer are not released; their owners release
	// them separately.
	Release()
}

// Allocator creates and destroys the GPU resources the shadow map registry
// manages, and answers the device capability queries that gate format
// selection and cube blur.
//
// Creation methods never return errors: a failed allocation is logged as a
// warning with the requested dimensions and surfaces as a nil handle, matching
// the subsystem's degrade-don't-abort contract. Callers must tolerate nil.
type Allocator interface {
	// Valid reports whether a graphics device is available. When false, no
	// resource may be created and the registry skips reconciliation entirely.
	//
	// Returns:
	//   - bool: true if the device is available
	Valid() bool

	// IsTextureFormatSupported reports whether the device can create
	// render-target textures of the given format.
	//
	// Parameters:
	//   - format: the format to query
	//
	// Returns:
	//   - bool: true if supported
	IsTextureFormatSupported(format TextureFormat) bool

	// MaxColorAttachments returns the maximum number of simultaneous color
	// attachments a render target may have. Cube shadow blur requires 6.
	//
	// Returns:
	//   - int: the device limit
	MaxColorAttachments() int

	// CreateTexture creates a texture. For FlagTextureArray textures,
	// arrayLayers is the layer count; for FlagCubeMap textures the layer
	// count is always 6 and arrayLayers is ignored; otherwise a single-layer
	// 2D texture is created.
	//
	// Parameters:
	//   - format: the pixel format
	//   - size: width and height in pixels
	//   - arrayLayers: the layer count for texture arrays
	//   - flags: usage and shape flags
	//   - label: debug label
	//
	// Returns:
	//   - Texture: the created texture, or nil if creation failed (logged)
	CreateTexture(format TextureFormat, size common.Size, arrayLayers uint32, flags TextureFlags, label string) Texture

	// CreateDepthStencilBuffer creates a write-only depth-stencil attachment.
	//
	// Parameters:
	//   - size: width and height in pixels
	//   - label: debug label
	//
	// Returns:
	//   - RenderBuffer: the created buffer, or nil if creation failed (logged)
	CreateDepthStencilBuffer(size common.Size, label string) RenderBuffer

	// CreateRenderTarget creates a texture render target from the given
	// attachments.
	//
	// Parameters:
	//   - desc: the attachment description
	//
	// Returns:
	//   - RenderTarget: the created target, or nil if creation failed (logged)
	CreateRenderTarget(desc RenderTargetDescriptor) RenderTarget
}
