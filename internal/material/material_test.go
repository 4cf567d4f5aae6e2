package material

import "testing"

func TestDescribeTotal(t *testing.T) {
	for m := Material(0); m <= Boundary; m++ {
		d := Describe(m)
		if d.Name == "" {
			t.Fatalf("material %d has no descriptor", m)
		}
		if d.Shades == 0 {
			t.Fatalf("material %q must expose at least one shade", d.Name)
		}
	}

	// Out-of-range values degrade to the boundary descriptor instead of
	// panicking.
	if Describe(Material(250)).Name != "boundary" {
		t.Fatal("out-of-range material must describe as boundary")
	}
}

func TestDensityOrdering(t *testing.T) {
	if !(Describe(Air).Density < Describe(Smoke).Density) {
		t.Fatal("gases must be denser than air")
	}
	if !(Describe(Smoke).Density < Describe(Water).Density) {
		t.Fatal("liquids must be denser than gases")
	}
	if !(Describe(Water).Density < Describe(Sand).Density) {
		t.Fatal("powders must be denser than liquids")
	}
	if !(Describe(Sand).Density < Describe(Wood).Density) {
		t.Fatal("solids must be denser than powders")
	}
	if Describe(Boundary).Density != 255 {
		t.Fatal("boundary must be maximally dense")
	}
}

func TestPaletteShape(t *testing.T) {
	p := Palette()
	if len(p) != PaletteSize {
		t.Fatalf("palette length %d, expected %d", len(p), PaletteSize)
	}
	for _, m := range Selectable() {
		d := Describe(m)
		idx := DisplayIndex(m, 0)
		if int(idx)+int(d.Shades) > len(p) {
			t.Fatalf("material %q shade block exceeds palette", d.Name)
		}
		if p[idx].A == 0 {
			t.Fatalf("material %q base color must be opaque", d.Name)
		}
	}
	// Shade clamping keeps indices inside the material's block.
	if DisplayIndex(Sand, 200) != DisplayIndex(Sand, 3) {
		t.Fatal("overlarge shade must clamp to last variant")
	}
}

func TestFadeShade(t *testing.T) {
	if FadeShade(100, 100) != 0 {
		t.Fatal("full lifetime must select the lightest shade")
	}
	if FadeShade(0, 100) != fadeShades-1 {
		t.Fatal("expired lifetime must select the darkest shade")
	}
	if FadeShade(50, 100) >= fadeShades {
		t.Fatal("fade shade out of range")
	}
}
