package sand

import "sand-ca/internal/material"

// Cell is the unit of grid storage: empty (Air) or exactly one particle.
type Cell struct {
	Mat material.Material
	// Bias is the particle's last horizontal direction (-1 or +1), used by
	// liquids and gases to keep spreading the same way until blocked.
	Bias int8
	// TTL is the remaining lifetime in steps for expiring materials.
	TTL uint8
	// Shade selects the palette variant assigned at creation.
	Shade uint8

	// moved marks that this particle already acted in the current step.
	moved bool
}

// Empty reports whether the cell holds no particle.
func (c Cell) Empty() bool { return c.Mat == material.Air }

// boundaryCell is returned for out-of-bounds reads. Its material is maximally
// dense and static, so no movement rule can ever target it.
var boundaryCell = Cell{Mat: material.Boundary}
