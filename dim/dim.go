// SPDX-License-Identifier: MIT

package dim

// Dim is implemented by dimension marker types.
// Size must be a positive constant for a given type.
type Dim interface {
	Size() int
}

// Markers for the extents used by the predefined aliases and beyond.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
)

func (D1) Size() int { return 1 }
func (D2) Size() int { return 2 }
func (D3) Size() int { return 3 }
func (D4) Size() int { return 4 }
func (D5) Size() int { return 5 }
func (D6) Size() int { return 6 }
func (D7) Size() int { return 7 }
func (D8) Size() int { return 8 }

// Size returns the extent encoded by marker D.
// Complexity: O(1); the zero value of D is never dereferenced.
func Size[D Dim]() int {
	var d D

	return d.Size()
}

// Valid reports whether marker D encodes a positive extent.
func Valid[D Dim]() bool {
	return Size[D]() > 0
}
