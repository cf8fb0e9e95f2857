package shadowmap

import (
	"strings"

	"github.com/Carmen-Shannon/umbra-go/common"
	"github.com/Carmen-Shannon/umbra-go/engine/renderer/allocator"
)

// fakeTexture records the parameters it was created with so tests can assert
// on sizes, layer counts, formats, and labels without a device.
type fakeTexture struct {
	size     common.Size
	layers   uint32
	format   allocator.TextureFormat
	flags    allocator.TextureFlags
	label    string
	released bool
}

var _ allocator.Texture = &fakeTexture{}

func (t *fakeTexture) PixelSize() common.Size           { return t.size }
func (t *fakeTexture) ArraySize() uint32                { return t.layers }
func (t *fakeTexture) Format() allocator.TextureFormat  { return t.format }
func (t *fakeTexture) Flags() allocator.TextureFlags    { return t.flags }
func (t *fakeTexture) Label() string                    { return t.label }
func (t *fakeTexture) Release()                         { t.released = true }

type fakeRenderBuffer struct {
	size     common.Size
	label    string
	released bool
}

var _ allocator.RenderBuffer = &fakeRenderBuffer{}

func (b *fakeRenderBuffer) PixelSize() common.Size { return b.size }
func (b *fakeRenderBuffer) Release()               { b.released = true }

type fakeRenderPassDescriptor struct {
	released bool
}

var _ allocator.RenderPassDescriptor = &fakeRenderPassDescriptor{}

func (d *fakeRenderPassDescriptor) Release() { d.released = true }

type fakeRenderTarget struct {
	desc     allocator.RenderTargetDescriptor
	passDesc allocator.RenderPassDescriptor
	released bool
}

var _ allocator.RenderTarget = &fakeRenderTarget{}

func (t *fakeRenderTarget) Label() string { return t.desc.Label }

func (t *fakeRenderTarget) NewCompatibleRenderPassDescriptor() allocator.RenderPassDescriptor {
	return &fakeRenderPassDescriptor{}
}

func (t *fakeRenderTarget) SetRenderPassDescriptor(desc allocator.RenderPassDescriptor) {
	t.passDesc = desc
}

func (t *fakeRenderTarget) RenderPassDescriptor() allocator.RenderPassDescriptor {
	return t.passDesc
}

func (t *fakeRenderTarget) Release() { t.released = true }

// fakeAllocator counts every creation call and keeps each created resource so
// tests can verify reuse (zero creates), rebuilds (full release and
// re-create), and degraded paths (forced allocation failure).
type fakeAllocator struct {
	valid               bool
	maxColorAttachments int
	r16FloatSupported   bool

	// failTextureLabel forces CreateTexture to return nil for any label
	// containing this substring, simulating an out-of-memory device.
	failTextureLabel string

	textures []*fakeTexture
	buffers  []*fakeRenderBuffer
	targets  []*fakeRenderTarget
}

var _ allocator.Allocator = &fakeAllocator{}

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{
		valid:               true,
		maxColorAttachments: 8,
		r16FloatSupported:   true,
	}
}

func (a *fakeAllocator) Valid() bool { return a.valid }

func (a *fakeAllocator) IsTextureFormatSupported(format allocator.TextureFormat) bool {
	if format == allocator.FormatR16Float {
		return a.r16FloatSupported
	}
	return format == allocator.FormatR16Unorm || format == allocator.FormatDepth24PlusStencil8
}

func (a *fakeAllocator) MaxColorAttachments() int { return a.maxColorAttachments }

func (a *fakeAllocator) CreateTexture(format allocator.TextureFormat, size common.Size, arrayLayers uint32, flags allocator.TextureFlags, label string) allocator.Texture {
	if a.failTextureLabel != "" && strings.Contains(label, a.failTextureLabel) {
		return nil
	}

	layers := uint32(1)
	switch {
	case flags&allocator.FlagCubeMap != 0:
		layers = 6
	case flags&allocator.FlagTextureArray != 0:
		layers = arrayLayers
	}

	tex := &fakeTexture{
		size:   size,
		layers: layers,
		format: format,
		flags:  flags,
		label:  label,
	}
	a.textures = append(a.textures, tex)
	return tex
}

func (a *fakeAllocator) CreateDepthStencilBuffer(size common.Size, label string) allocator.RenderBuffer {
	buf := &fakeRenderBuffer{size: size, label: label}
	a.buffers = append(a.buffers, buf)
	return buf
}

func (a *fakeAllocator) CreateRenderTarget(desc allocator.RenderTargetDescriptor) allocator.RenderTarget {
	target := &fakeRenderTarget{desc: desc}
	a.targets = append(a.targets, target)
	return target
}

// createCount returns the total number of creation calls recorded so far.
func (a *fakeAllocator) createCount() int {
	return len(a.textures) + len(a.buffers) + len(a.targets)
}

// liveTextures returns the created textures that have not been released.
func (a *fakeAllocator) liveTextures() []*fakeTexture {
	var live []*fakeTexture
	for _, tex := range a.textures {
		if !tex.released {
			live = append(live, tex)
		}
	}
	return live
}

// liveTextureByLabel returns the unreleased texture whose label contains the
// given substring, or nil.
func (a *fakeAllocator) liveTextureByLabel(label string) *fakeTexture {
	for _, tex := range a.liveTextures() {
		if strings.Contains(tex.label, label) {
			return tex
		}
	}
	return nil
}

// allReleased reports whether every created resource has been released.
func (a *fakeAllocator) allReleased() bool {
	for _, tex := range a.textures {
		if !tex.released {
			return false
		}
	}
	for _, buf := range a.buffers {
		if !buf.released {
			return false
		}
	}
	for _, target := range a.targets {
		if !target.released {
			return false
		}
	}
	return true
}
