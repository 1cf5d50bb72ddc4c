package d3

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Box is a 3d bounding box.
type Box r3.Box

// Include enlarges a 3d box to include a point.
func (a Box) Include(v r3.Vec) Box {
	return Box{
		Min: MinElem(a.Min, v),
		Max: MaxElem(a.Max, v),
	}
}

// Size returns the size of a 3d box.
func (a Box) Size() r3.Vec {
	return r3.Sub(a.Max, a.Min)
}

// Canon returns the box with Min and Max swapped per component
// where Min is larger than Max.
func (a Box) Canon() Box {
	return Box{Min: MinElem(a.Min, a.Max), Max: MaxElem(a.Min, a.Max)}
}
