//go:build (!linux || !cgo) && !tinygo

package hal

import (
	"context"
	"fmt"
)

// RunFramebuffer is only available on Linux.
func RunFramebuffer(ctx context.Context, newApp func(HAL) func() error) error {
	return fmt.Errorf("framebuffer backend: %w", ErrNotImplemented)
}
