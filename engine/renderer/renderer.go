// Package renderer owns the WebGPU instance, surface, adapter, and device,
// and hands the device to the resource allocator the shadow map registry
// allocates through.
package renderer

import (
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/umbra-go/engine/logger"
	"github.com/Carmen-Shannon/umbra-go/engine/renderer/allocator"
	"github.com/Carmen-Shannon/umbra-go/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

// PresentMode controls how frames are delivered to the display.
type PresentMode int

const (
	// PresentModeVSync synchronizes presentation with the display refresh.
	PresentModeVSync PresentMode = iota
	// PresentModeUncapped presents as fast as frames are produced.
	PresentModeUncapped
)

type renderer struct {
	mu *sync.Mutex

	log *zap.Logger

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat *wgpu.TextureFormat
	presentMode   wgpu.PresentMode

	forceFallbackAdapter bool

	alloc allocator.Allocator
}

// Renderer owns the WebGPU device and surface for a window. It exposes the
// resource allocator the shadow map registry creates GPU resources through;
// pass recording lives with the host application.
type Renderer interface {
	// Device returns the WebGPU device, or nil before initialization.
	//
	// Returns:
	//   - *wgpu.Device: the device
	Device() *wgpu.Device

	// Queue returns the device's default queue.
	//
	// Returns:
	//   - *wgpu.Queue: the queue
	Queue() *wgpu.Queue

	// Allocator returns the resource allocator backed by this renderer's
	// device. The shadow map registry is constructed over this.
	//
	// Returns:
	//   - allocator.Allocator: the device-backed allocator
	Allocator() allocator.Allocator

	// ConfigureSurface (re)configures the window surface for the given pixel
	// dimensions. Must be called once after creation and again on every
	// window resize.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	ConfigureSurface(width, height int)

	// Release destroys the device and surface. The renderer must not be used
	// after Release.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer over the given window: it creates the WebGPU
// instance, surface, adapter, and device, and wires the resource allocator.
// Panics if no adapter or device is available; a machine without any usable
// GPU backend cannot run the viewer at all.
//
// Parameters:
//   - win: the window to present to
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the initialized renderer
func NewRenderer(win window.Window, options ...RendererBuilderOption) Renderer {
	runtime.LockOSThread()

	r := &renderer{
		mu:          &sync.Mutex{},
		presentMode: wgpu.PresentModeImmediate,
	}
	for _, option := range options {
		option(r)
	}
	if r.log == nil {
		r.log = logger.Default()
	}

	r.instance = wgpu.CreateInstance(nil)
	r.surface = r.instance.CreateSurface(win.SurfaceDescriptor())

	adapter, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: r.forceFallbackAdapter,
		CompatibleSurface:    r.surface,
	})
	if err != nil {
		panic(err)
	}
	r.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		panic(err)
	}
	r.device = device
	r.queue = device.GetQueue()

	r.alloc = allocator.NewWGPUAllocator(device, allocator.WithLogger(r.log))

	r.log.Info("renderer initialized",
		zap.Int("width", win.Width()),
		zap.Int("height", win.Height()))

	return r
}

func (r *renderer) Device() *wgpu.Device {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.device
}

func (r *renderer) Queue() *wgpu.Queue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queue
}

func (r *renderer) Allocator() allocator.Allocator {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.alloc
}

func (r *renderer) ConfigureSurface(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	capabilities := r.surface.GetCapabilities(r.adapter)
	r.surfaceFormat = &capabilities.Formats[0]

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: r.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.device != nil {
		r.device.Release()
		r.device = nil
	}
	if r.surface != nil {
		r.surface.Release()
		r.surface = nil
	}
	if r.instance != nil {
		r.instance.Release()
		r.instance = nil
	}
	r.queue = nil
	r.adapter = nil
}
