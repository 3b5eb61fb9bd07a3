package draftgen

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed sets the base seed for class generation. The per-class stream
// also folds in the season number, so the same seed produces different
// classes season over season but identical classes on replay.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithClassCount overrides the number of prospects generated for a
// position. Zero removes the position from generated classes.
func WithClassCount(counts map[string]int) Option {
	return func(g *Generator) {
		for pos, t := range g.talent {
			if n, ok := counts[string(pos)]; ok {
				if n <= 0 {
					delete(g.talent, pos)
					continue
				}
				t.classCount = n
				g.talent[pos] = t
			}
		}
	}
}
