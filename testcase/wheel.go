package testcase

// wheel is a roulette wheel over elements [0, n) where the probability of
// rolling an element is proportional to its weight. Updating a weight and
// rolling both take O(log n).
type wheel struct {
	n int
	// sumWeights represents a complete tree with n leaves. The root of the
	// tree is at index 1. The left child of a node at index i is at i*2, and
	// the right child at i*2+1. The weight of a parent is the sum of its
	// children's weights.
	sumWeights []float64
}

func newWheel(n int) *wheel {
	return &wheel{
		n:          n,
		sumWeights: make([]float64, n*2),
	}
}

func (w *wheel) setWeight(elem int, weight float64) {
	i := w.n + elem
	w.sumWeights[i] = weight
	for p := i / 2; p > 0; p = p / 2 {
		l := p * 2
		r := l + 1
		w.sumWeights[p] = w.sumWeights[l] + w.sumWeights[r]
	}
}

func (w *wheel) weight(elem int) float64 {
	return w.sumWeights[w.n+elem]
}

// roll returns the element selected by the random number r in [0, 1), or -1
// if all the weights are zero.
func (w *wheel) roll(r float64) int {
	if w.sumWeights[1] == 0 {
		return -1
	}

	x := r * w.sumWeights[1]
	i := 1
	for i < w.n {
		l := i * 2
		r := l + 1
		if x < w.sumWeights[l] {
			i = l
		} else {
			i = r
			x -= w.sumWeights[l]
		}
	}
	return i - w.n
}
