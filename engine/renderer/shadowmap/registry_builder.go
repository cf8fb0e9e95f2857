package shadowmap

import "go.uber.org/zap"

// RegistryBuilderOption defines a function that modifies the registry during
// construction.
type RegistryBuilderOption func(*registry)

// WithLogger sets the logger the registry reports allocation and capability
// warnings to. Defaults to the package-wide logger.
//
// Parameters:
//   - log: the zap logger to use
//
// Returns:
//   - RegistryBuilderOption: the option
func WithLogger(log *zap.Logger) RegistryBuilderOption {
	return func(r *registry) {
		if log != nil {
			r.log = log
		}
	}
}
