package allocator

import (
	"github.com/Carmen-Shannon/umbra-go/common"
	"github.com/Carmen-Shannon/umbra-go/engine/logger"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

// webgpuGuaranteedMaxColorAttachments is the minimum value of the
// maxColorAttachments limit every WebGPU device must support. The binding does
// not expose the adapter's actual limit, so the backend reports this floor
// unless the host overrides it via WithMaxColorAttachments.
const webgpuGuaranteedMaxColorAttachments = 8

// wgpuAllocatorImpl is the WebGPU implementation of the Allocator interface.
// The device is received from the host application and is not owned; releasing
// the allocator's resources never tears down the device.
type wgpuAllocatorImpl struct {
	device *wgpu.Device
	log    *zap.Logger

	maxColorAttachments int
}

var _ Allocator = &wgpuAllocatorImpl{}

// NewWGPUAllocator creates an Allocator backed by the given WebGPU device with
// any provided options applied. A nil device yields an allocator whose Valid
// method reports false; all creation calls on it fail with a warning.
//
// Parameters:
//   - device: the host application's WebGPU device (not owned)
//   - opts: variadic list of WGPUAllocatorBuilderOption functions
//
// Returns:
//   - Allocator: the WebGPU-backed allocator
func NewWGPUAllocator(device *wgpu.Device, opts ...WGPUAllocatorBuilderOption) Allocator {
	a := &wgpuAllocatorImpl{
		device:              device,
		maxColorAttachments: webgpuGuaranteedMaxColorAttachments,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *wgpuAllocatorImpl) Valid() bool {
	return a.device != nil
}

func (a *wgpuAllocatorImpl) IsTextureFormatSupported(format TextureFormat) bool {
	switch format {
	case FormatR16Float, FormatDepth24PlusStencil8:
		return true
	case FormatR16Unorm:
		// r16unorm is a native-only extension format that this binding does
		// not expose, so the registry's R16F preference never falls through
		// to it on the WebGPU backend.
		return false
	default:
		return false
	}
}

func (a *wgpuAllocatorImpl) MaxColorAttachments() int {
	return a.maxColorAttachments
}

func (a *wgpuAllocatorImpl) CreateTexture(format TextureFormat, size common.Size, arrayLayers uint32, flags TextureFlags, label string) Texture {
	if a.device == nil {
		a.logger().Warn("cannot create texture without a device", zap.String("label", label))
		return nil
	}

	wgpuFormat, ok := toWGPUFormat(format)
	if !ok {
		a.logger().Warn("unsupported texture format",
			zap.Stringer("format", format),
			zap.String("label", label))
		return nil
	}

	layers := uint32(1)
	if flags&FlagCubeMap != 0 {
		layers = 6
	} else if flags&FlagTextureArray != 0 && arrayLayers > 0 {
		layers = arrayLayers
	}

	usage := wgpu.TextureUsageTextureBinding
	if flags&FlagRenderTarget != 0 {
		usage |= wgpu.TextureUsageRenderAttachment
	}

	tex, err := a.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              size.Width,
			Height:             size.Height,
			DepthOrArrayLayers: layers,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpuFormat,
		Usage:         usage,
	})
	if err != nil {
		a.logger().Warn("failed to create shadow map texture",
			zap.Uint32("width", size.Width),
			zap.Uint32("height", size.Height),
			zap.Uint32("layers", layers),
			zap.String("label", label),
			zap.Error(err))
		return nil
	}

	return &wgpuTexture{
		texture: tex,
		size:    size,
		layers:  layers,
		format:  format,
		flags:   flags,
		label:   label,
	}
}

func (a *wgpuAllocatorImpl) CreateDepthStencilBuffer(size common.Size, label string) RenderBuffer {
	if a.device == nil {
		a.logger().Warn("cannot create depth-stencil buffer without a device", zap.String("label", label))
		return nil
	}

	tex, err := a.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              size.Width,
			Height:             size.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24PlusStencil8,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		a.logger().Warn("failed to build depth-stencil buffer",
			zap.Uint32("width", size.Width),
			zap.Uint32("height", size.Height),
			zap.String("label", label),
			zap.Error(err))
		return nil
	}

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		a.logger().Warn("failed to create depth-stencil view",
			zap.Uint32("width", size.Width),
			zap.Uint32("height", size.Height),
			zap.String("label", label),
			zap.Error(err))
		return nil
	}

	return &wgpuRenderBuffer{
		texture: tex,
		view:    view,
		size:    size,
	}
}

func (a *wgpuAllocatorImpl) CreateRenderTarget(desc RenderTargetDescriptor) RenderTarget {
	if a.device == nil {
		a.logger().Warn("cannot create render target without a device", zap.String("label", desc.Label))
		return nil
	}

	rt := &wgpuRenderTarget{label: desc.Label}

	colorAttachments := make([]wgpu.RenderPassColorAttachment, 0, len(desc.ColorAttachments))
	for _, att := range desc.ColorAttachments {
		tex, ok := att.Texture.(*wgpuTexture)
		if !ok || tex == nil || tex.texture == nil {
			rt.Release()
			a.logger().Warn("failed to build shadow map render target: missing color attachment texture",
				zap.String("label", desc.Label))
			return nil
		}

		view, err := tex.texture.CreateView(&wgpu.TextureViewDescriptor{
			Label:           desc.Label,
			Format:          toWGPUFormatOrUndefined(tex.format),
			Dimension:       wgpu.TextureViewDimension2D,
			BaseMipLevel:    0,
			MipLevelCount:   1,
			BaseArrayLayer:  att.Layer,
			ArrayLayerCount: 1,
			Aspect:          wgpu.TextureAspectAll,
		})
		if err != nil {
			rt.Release()
			a.logger().Warn("failed to build shadow map render target",
				zap.String("label", desc.Label),
				zap.Error(err))
			return nil
		}
		rt.views = append(rt.views, view)
		rt.colorFormats = append(rt.colorFormats, tex.format)

		colorAttachments = append(colorAttachments, wgpu.RenderPassColorAttachment{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 1.0, G: 1.0, B: 1.0, A: 1.0},
		})
	}

	passDesc := &wgpu.RenderPassDescriptor{
		Label:            desc.Label,
		ColorAttachments: colorAttachments,
	}
	if desc.DepthStencil != nil {
		buf, ok := desc.DepthStencil.(*wgpuRenderBuffer)
		if !ok || buf == nil || buf.view == nil {
			rt.Release()
			a.logger().Warn("failed to build shadow map render target: missing depth-stencil buffer",
				zap.String("label", desc.Label))
			return nil
		}
		rt.hasDepthStencil = true
		passDesc.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            buf.view,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		}
	}
	rt.passDescriptor = passDesc

	return rt
}

// logger returns the configured logger or the package default.
func (a *wgpuAllocatorImpl) logger() *zap.Logger {
	if a.log != nil {
		return a.log
	}
	return logger.Default()
}

// toWGPUFormat maps an allocator format to the binding's format enum. The
// second return is false for formats this binding cannot express.
func toWGPUFormat(format TextureFormat) (wgpu.TextureFormat, bool) {
	switch format {
	case FormatR16Float:
		return wgpu.TextureFormatR16Float, true
	case FormatDepth24PlusStencil8:
		return wgpu.TextureFormatDepth24PlusStencil8, true
	default:
		return wgpu.TextureFormatUndefined, false
	}
}

// toWGPUFormatOrUndefined is toWGPUFormat for view descriptors, where
// Undefined means "inherit from the texture".
func toWGPUFormatOrUndefined(format TextureFormat) wgpu.TextureFormat {
	if f, ok := toWGPUFormat(format); ok {
		return f
	}
	return wgpu.TextureFormatUndefined
}

// wgpuTexture wraps a *wgpu.Texture with the metadata compatibility checks
// read without touching the device.
type wgpuTexture struct {
	texture *wgpu.Texture
	size    common.Size
	layers  uint32
	format  TextureFormat
	flags   TextureFlags
	label   string
}

var _ Texture = &wgpuTexture{}

func (t *wgpuTexture) PixelSize() common.Size {
	return t.size
}

func (t *wgpuTexture) ArraySize() uint32 {
	return t.layers
}

func (t *wgpuTexture) Format() TextureFormat {
	return t.format
}

func (t *wgpuTexture) Flags() TextureFlags {
	return t.flags
}

func (t *wgpuTexture) Label() string {
	return t.label
}

func (t *wgpuTexture) Release() {
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}

// wgpuRenderBuffer wraps a depth-stencil texture and its view.
type wgpuRenderBuffer struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	size    common.Size
}

var _ RenderBuffer = &wgpuRenderBuffer{}

func (b *wgpuRenderBuffer) PixelSize() common.Size {
	return b.size
}

func (b *wgpuRenderBuffer) Release() {
	if b.view != nil {
		b.view.Release()
		b.view = nil
	}
	if b.texture != nil {
		b.texture.Release()
		b.texture = nil
	}
}

// wgpuRenderTarget owns the per-layer texture views it created for its
// attachments and the cached wgpu render pass descriptor the driver encodes
// with. The attached textures themselves are not owned.
type wgpuRenderTarget struct {
	label           string
	views           []*wgpu.TextureView
	colorFormats    []TextureFormat
	hasDepthStencil bool
	passDescriptor  *wgpu.RenderPassDescriptor
	compatDesc      RenderPassDescriptor
}

var _ RenderTarget = &wgpuRenderTarget{}

func (rt *wgpuRenderTarget) Label() string {
	return rt.label
}

func (rt *wgpuRenderTarget) NewCompatibleRenderPassDescriptor() RenderPassDescriptor {
	formats := make([]TextureFormat, len(rt.colorFormats))
	copy(formats, rt.colorFormats)
	return &wgpuRenderPassDescriptor{
		colorFormats:    formats,
		hasDepthStencil: rt.hasDepthStencil,
	}
}

func (rt *wgpuRenderTarget) SetRenderPassDescriptor(desc RenderPassDescriptor) {
	rt.compatDesc = desc
}

func (rt *wgpuRenderTarget) RenderPassDescriptor() RenderPassDescriptor {
	return rt.compatDesc
}

// WGPUDescriptor returns the cached wgpu render pass descriptor for encoding
// a pass into this target. Exposed for the render pass driver; the registry
// never calls it.
//
// Returns:
//   - *wgpu.RenderPassDescriptor: the descriptor, or nil after Release
func (rt *wgpuRenderTarget) WGPUDescriptor() *wgpu.RenderPassDescriptor {
	return rt.passDescriptor
}

func (rt *wgpuRenderTarget) Release() {
	for _, view := range rt.views {
		if view != nil {
			view.Release()
		}
	}
	rt.views = nil
	rt.passDescriptor = nil
	rt.compatDesc = nil
}

// wgpuRenderPassDescriptor records the attachment layout shared by compatible
// render targets. WebGPU derives pass compatibility from the attachments at
// encode time, so no device object backs this token.
type wgpuRenderPassDescriptor struct {
	colorFormats    []TextureFormat
	hasDepthStencil bool
}

var _ RenderPassDescriptor = &wgpuRenderPassDescriptor{}

func (d *wgpuRenderPassDescriptor) Release() {}
