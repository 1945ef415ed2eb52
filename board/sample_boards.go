package board

// Sample board setups, used by tests and the shell's demo command.

// ExampleGrid returns a 15x15 grid seeded with a small interlocking
// cluster of words:
//
//	  0 1 2
//	0 c a t
//	1 o   u
//	2 r e n t
//	3 n   e
//	4 e n d
//	5 r
func ExampleGrid() *Grid {
	g, err := SeedGrid(15, 15, []Seed{
		{"cat", Position{0, 0}, Across},
		{"corner", Position{0, 0}, Down},
		{"rent", Position{0, 2}, Across},
		{"end", Position{0, 4}, Across},
		{"tuned", Position{2, 0}, Down},
	})
	if err != nil {
		panic(err)
	}
	return g
}
