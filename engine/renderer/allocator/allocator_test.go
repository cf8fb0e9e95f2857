package allocator

import (
	"testing"

	"github.com/Carmen-Shannon/umbra-go/common"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTextureFormat_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("R16Float", FormatR16Float.String())
	assert.Equal("R16Unorm", FormatR16Unorm.String())
	assert.Equal("Depth24PlusStencil8", FormatDepth24PlusStencil8.String())
	assert.Equal("Unknown", FormatUnknown.String())
	assert.Equal("Unknown", TextureFormat(99).String())
}

func TestWGPUAllocator_NilDeviceIsInvalid(t *testing.T) {
	assert := assert.New(t)

	core, logs := observer.New(zap.WarnLevel)
	a := NewWGPUAllocator(nil, WithLogger(zap.New(core)))

	assert.False(a.Valid())

	assert.Nil(a.CreateTexture(FormatR16Float, common.NewSquareSize(512), 1, FlagRenderTarget, "t"))
	assert.Nil(a.CreateDepthStencilBuffer(common.NewSquareSize(512), "ds"))
	assert.Nil(a.CreateRenderTarget(RenderTargetDescriptor{Label: "rt"}))

	// Every failed creation is logged, never panics.
	assert.Equal(3, logs.Len())
}

func TestWGPUAllocator_FormatSupport(t *testing.T) {
	assert := assert.New(t)

	a := NewWGPUAllocator(nil)
	assert.True(a.IsTextureFormatSupported(FormatR16Float))
	assert.True(a.IsTextureFormatSupported(FormatDepth24PlusStencil8))
	assert.False(a.IsTextureFormatSupported(FormatR16Unorm))
	assert.False(a.IsTextureFormatSupported(FormatUnknown))
}

func TestWGPUAllocator_MaxColorAttachments(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(8, NewWGPUAllocator(nil).MaxColorAttachments())
	assert.Equal(4, NewWGPUAllocator(nil, WithMaxColorAttachments(4)).MaxColorAttachments())
	// Nonsense overrides are ignored.
	assert.Equal(8, NewWGPUAllocator(nil, WithMaxColorAttachments(0)).MaxColorAttachments())
}
