package adjacency

// Components finds the connected regions of nodes for which keep is true.
// Each component lists node indices in breadth-first order from its lowest
// index; components are ordered by their lowest index.
//
// Time:   O(V·Size()).
// Memory: O(V) for visited flags and output.
func Components(e Enumerator, keep func(index int) bool) [][]int {
	total := e.Nodes()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !keep(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for pos := 0; pos < e.Size(); pos++ {
				v, ok := e.Neighbor(u, pos)
				if !ok || seen[v] || !keep(v) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// LabelComponents writes component numbers starting at 1 into a label map,
// leaving 0 for nodes outside every component. It returns the component count.
func LabelComponents(e Enumerator, keep func(index int) bool, label []int) int {
	comps := Components(e, keep)
	for c, comp := range comps {
		for _, i := range comp {
			label[i] = c + 1
		}
	}
	return len(comps)
}
