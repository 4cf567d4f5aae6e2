package material

// Material identifies one particle type storable in a grid cell.
type Material uint8

const (
	// Air is the empty cell value.
	Air Material = iota
	Sand
	Water
	Wood
	Fire
	Smoke
	Steam
	Stone

	// Boundary is the synthetic material reported for out-of-bounds reads.
	// It is never stored in a cell and never a legal swap target.
	Boundary
)

// Count is the number of storable materials, Air included.
const Count = 8

// Mobility classifies which movement rule a material follows.
type Mobility uint8

const (
	// Static materials never move on their own.
	Static Mobility = iota
	// Powder materials fall, with a diagonal fallback.
	Powder
	// Liquid materials fall, then spread horizontally.
	Liquid
	// Gas materials rise, then spread horizontally, and expire.
	Gas
)

// Descriptor is the static, immutable description of a material.
type Descriptor struct {
	Name      string
	Mobility  Mobility
	Density   uint8
	Flammable bool
	Lifetime  uint8
	Shades    uint8
}

var descriptors = [Count + 1]Descriptor{
	Air:      {Name: "air", Mobility: Static, Density: 0, Shades: 1},
	Sand:     {Name: "sand", Mobility: Powder, Density: 120, Shades: 4},
	Water:    {Name: "water", Mobility: Liquid, Density: 60, Shades: 4},
	Wood:     {Name: "wood", Mobility: Static, Density: 200, Flammable: true, Shades: 4},
	Fire:     {Name: "fire", Mobility: Static, Density: 150, Shades: 6},
	Smoke:    {Name: "smoke", Mobility: Gas, Density: 1, Lifetime: 100, Shades: fadeShades},
	Steam:    {Name: "steam", Mobility: Gas, Density: 1, Lifetime: 50, Shades: fadeShades},
	Stone:    {Name: "stone", Mobility: Static, Density: 220, Shades: 4},
	Boundary: {Name: "boundary", Mobility: Static, Density: 255, Shades: 1},
}

// Describe returns the descriptor for m. The lookup is total: any value
// outside the enum maps to the Boundary descriptor.
func Describe(m Material) Descriptor {
	if m > Boundary {
		m = Boundary
	}
	return descriptors[m]
}

// String returns the material name.
func (m Material) String() string { return Describe(m).Name }

// Valid reports whether m names a storable material.
func (m Material) Valid() bool { return m < Count }

// Selectable lists the materials a brush can place, in selection-key order.
func Selectable() []Material {
	return []Material{Sand, Water, Wood, Fire, Smoke, Steam, Stone}
}
