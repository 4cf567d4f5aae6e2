package material

import "image/color"

// Display values pack a material and a shade variant into one byte. Each
// material owns a block of shadeSlots consecutive palette entries.
const (
	shadeSlots = 8
	fadeShades = shadeSlots

	// PaletteSize is the length of the slice returned by Palette.
	PaletteSize = Count * shadeSlots
)

var palette = buildPalette()

// Palette exposes the flattened color table indexed by display values.
func Palette() []color.RGBA {
	return palette
}

// DisplayIndex encodes a material and shade into a palette index. Shades
// beyond the material's variant count clamp to the last variant.
func DisplayIndex(m Material, shade uint8) uint8 {
	d := Describe(m)
	if d.Shades == 0 {
		return uint8(m) * shadeSlots
	}
	if shade >= d.Shades {
		shade = d.Shades - 1
	}
	return uint8(m)*shadeSlots + shade
}

// FadeShade maps a remaining lifetime onto a fade-ramp shade: full lifetime
// selects the lightest variant, zero the darkest.
func FadeShade(ttl, lifetime uint8) uint8 {
	if lifetime == 0 {
		return 0
	}
	if ttl > lifetime {
		ttl = lifetime
	}
	aged := int(lifetime) - int(ttl)
	return uint8(aged * (fadeShades - 1) / int(lifetime))
}

var (
	airColor = color.RGBA{A: 0xff}

	sandColors = [4]color.RGBA{
		{R: 0xf6, G: 0xd7, B: 0xb0, A: 0xff},
		{R: 0xf2, G: 0xd2, B: 0xa9, A: 0xff},
		{R: 0xec, G: 0xcc, B: 0xa2, A: 0xff},
		{R: 0xe7, G: 0xc4, B: 0x96, A: 0xff},
	}
	waterColors = [4]color.RGBA{
		{R: 0x18, G: 0x56, B: 0xdc, A: 0xff},
		{R: 0x1f, G: 0x59, B: 0xd6, A: 0xff},
		{R: 0x25, G: 0x5b, B: 0xd0, A: 0xff},
		{R: 0x27, G: 0x5c, B: 0xcd, A: 0xff},
	}
	woodColors = [4]color.RGBA{
		{R: 0x77, G: 0x4f, B: 0x3c, A: 0xff},
		{R: 0x71, G: 0x4b, B: 0x39, A: 0xff},
		{R: 0x6b, G: 0x47, B: 0x36, A: 0xff},
		{R: 0x65, G: 0x43, B: 0x33, A: 0xff},
	}
	// Weighted toward red: the first four entries repeat the deep reds so a
	// uniform shade roll still favors them over orange.
	fireColors = [6]color.RGBA{
		{R: 0xc3, G: 0x3e, B: 0x05, A: 0xff},
		{R: 0xc3, G: 0x3e, B: 0x05, A: 0xff},
		{R: 0xc2, G: 0x34, B: 0x05, A: 0xff},
		{R: 0xc2, G: 0x34, B: 0x05, A: 0xff},
		{R: 0xf9, G: 0x61, B: 0x1f, A: 0xff},
		{R: 0xf0, G: 0xa1, B: 0x2b, A: 0xff},
	}
	stoneColors = [4]color.RGBA{
		{R: 0x80, G: 0x80, B: 0x88, A: 0xff},
		{R: 0x78, G: 0x78, B: 0x80, A: 0xff},
		{R: 0x70, G: 0x70, B: 0x78, A: 0xff},
		{R: 0x68, G: 0x68, B: 0x70, A: 0xff},
	}

	smokeLight = color.RGBA{R: 0x47, G: 0x47, B: 0x47, A: 0xff}
	steamLight = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	fadeDark   = color.RGBA{A: 0xff}
)

func buildPalette() []color.RGBA {
	p := make([]color.RGBA, PaletteSize)
	fillBlock(p, Air, []color.RGBA{airColor})
	fillBlock(p, Sand, sandColors[:])
	fillBlock(p, Water, waterColors[:])
	fillBlock(p, Wood, woodColors[:])
	fillBlock(p, Fire, fireColors[:])
	fillBlock(p, Stone, stoneColors[:])
	fillBlock(p, Smoke, fadeRamp(smokeLight, fadeDark))
	fillBlock(p, Steam, fadeRamp(steamLight, fadeDark))
	return p
}

func fillBlock(p []color.RGBA, m Material, variants []color.RGBA) {
	base := int(m) * shadeSlots
	for i := 0; i < shadeSlots; i++ {
		idx := i
		if idx >= len(variants) {
			idx = len(variants) - 1
		}
		p[base+i] = variants[idx]
	}
}

func fadeRamp(light, dark color.RGBA) []color.RGBA {
	ramp := make([]color.RGBA, fadeShades)
	for i := range ramp {
		t := float64(i) / float64(fadeShades-1)
		ramp[i] = lerpRGBA(light, dark, t)
	}
	return ramp
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
