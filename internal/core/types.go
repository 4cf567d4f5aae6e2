package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Painter is implemented by simulations that accept brush input. Materials
// cross this boundary as raw enum values; the sim validates them.
type Painter interface {
	ApplyDraw(cx, cy, radius int, mat uint8)
	ApplyErase(cx, cy, radius int)
}

// Censuser is implemented by simulations that report per-material occupancy.
type Censuser interface {
	Census() []int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
