package fractal

// Survey summarizes outcomes over a sample of the pixel grid.
type Survey struct {
	Step    int
	Samples int
	// PerRoot[k] counts samples that converged to root k.
	PerRoot []int
	// Unconverged counts samples that hit a singular derivative or the budget.
	Unconverged int
	// Histogram[i] counts converged samples that needed i iterations.
	Histogram []int
}

// Survey solves every step-th pixel along both axes. step < 1 is treated as 1.
func (f *Fractal) Survey(step int) Survey {
	if step < 1 {
		step = 1
	}
	s := Survey{
		Step:      step,
		PerRoot:   make([]int, len(f.solver.Roots)),
		Histogram: make([]int, f.cfg.MaxIterations+1),
	}
	for y := 0; y < f.cfg.Height; y += step {
		for x := 0; x < f.cfg.Width; x += step {
			o := f.solver.Solve(f.StartPoint(x, y))
			s.Samples++
			if !o.Converged() {
				s.Unconverged++
				continue
			}
			s.PerRoot[o.Root]++
			s.Histogram[o.Iterations]++
		}
	}
	return s
}

// MaxConvergedIterations returns the largest iteration count seen among
// converged samples, or -1 if none converged.
func (s Survey) MaxConvergedIterations() int {
	for i := len(s.Histogram) - 1; i >= 0; i-- {
		if s.Histogram[i] > 0 {
			return i
		}
	}
	return -1
}
