package allocator

import "go.uber.org/zap"

// WGPUAllocatorBuilderOption is a function that configures a WebGPU allocator
// during construction.
type WGPUAllocatorBuilderOption func(*wgpuAllocatorImpl)

// WithLogger is an option builder that sets the logger used for
// resource-creation warnings. Defaults to the global zap logger.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - WGPUAllocatorBuilderOption: a function that applies the logger option
func WithLogger(log *zap.Logger) WGPUAllocatorBuilderOption {
	return func(a *wgpuAllocatorImpl) {
		a.log = log
	}
}

// WithMaxColorAttachments is an option builder that overrides the reported
// maxColorAttachments limit. Hosts that query the adapter's actual limits can
// pass the real value; the default is the WebGPU-guaranteed floor of 8.
// Values below 1 are ignored.
//
// Parameters:
//   - limit: the device's maximum simultaneous color attachments
//
// Returns:
//   - WGPUAllocatorBuilderOption: a function that applies the limit option
func WithMaxColorAttachments(limit int) WGPUAllocatorBuilderOption {
	return func(a *wgpuAllocatorImpl) {
		if limit >= 1 {
			a.maxColorAttachments = limit
		}
	}
}
