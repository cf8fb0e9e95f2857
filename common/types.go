// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "fmt"

// Size is a width/height pair in pixels. Shadow maps are always square, but
// the allocator surface accepts arbitrary sizes so the same wrapper can serve
// other offscreen targets.
type Size struct {
	// Width is the horizontal extent in pixels.
	Width uint32
	// Height is the vertical extent in pixels.
	Height uint32
}

// NewSquareSize creates a Size with equal width and height.
//
// Parameters:
//   - side: the width and height in pixels
//
// Returns:
//   - Size: the square size
func NewSquareSize(side uint32) Size {
	return Size{Width: side, Height: side}
}

// IsSquare reports whether the width and height are equal.
//
// Returns:
//   - bool: true if width equals height
func (s Size) IsSquare() bool {
	return s.Width == s.Height
}

// String formats the size as "WxH" for logging and debug labels.
//
// Returns:
//   - string: the formatted size
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
