// Package rectfind extracts every qualifying rectangle from a boolean tile
// and defines the Rectangle type and its total order.
package rectfind

const blockSize = 16

// Rectangle is a found axis-aligned run of slime chunks.
//
// X, Z are the top-left chunk coordinates; Width and Height are always
// >= the configured minimum dimension. Rectangle is comparable by value and
// its four fields (X, Z, Width, Height) form the deduplication identity used
// by the result set.
type Rectangle struct {
	X, Z            int64
	Width, Height   int64
	Area            int64
	DistanceSquared int64
}

// centerBlock returns the rectangle center in block coordinates, using
// truncating integer division to locate the center chunk (matching the
// source: (x + width/2) * 16).
func centerBlock(x, width int64) int64 {
	return (x + width/2) * blockSize
}

// NewRectangle builds a Rectangle from its top-left chunk corner and
// dimensions, computing Area and the center-distance rule for
// DistanceSquared.
func NewRectangle(x, z, width, height int64) Rectangle {
	cbx := centerBlock(x, width)
	cbz := centerBlock(z, height)
	return Rectangle{
		X:               x,
		Z:               z,
		Width:           width,
		Height:          height,
		Area:            width * height,
		DistanceSquared: cbx*cbx + cbz*cbz,
	}
}

// Less implements the result set's total order: area descending, then
// distanceSquared ascending, then x ascending, then z ascending.
func (r Rectangle) Less(other Rectangle) bool {
	if r.Area != other.Area {
		return r.Area > other.Area
	}
	if r.DistanceSquared != other.DistanceSquared {
		return r.DistanceSquared < other.DistanceSquared
	}
	if r.X != other.X {
		return r.X < other.X
	}
	return r.Z < other.Z
}

// Identity returns the four-tuple that defines rectangle equality for
// deduplication purposes. Two rectangles are the same result iff Identity
// matches.
func (r Rectangle) Identity() Rectangle {
	return Rectangle{X: r.X, Z: r.Z, Width: r.Width, Height: r.Height}
}

// BlockX and BlockZ are the top-left corner in block coordinates, used by
// the stats report.
func (r Rectangle) BlockX() int64 { return r.X * blockSize }
func (r Rectangle) BlockZ() int64 { return r.Z * blockSize }

// CenterBlockX and CenterBlockZ are the rectangle center in block
// coordinates, used for the Manhattan distance column of the stats report.
func (r Rectangle) CenterBlockX() int64 { return centerBlock(r.X, r.Width) }
func (r Rectangle) CenterBlockZ() int64 { return centerBlock(r.Z, r.Height) }
