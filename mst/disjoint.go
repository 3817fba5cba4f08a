package mst

// DisjointSet is a union-find forest over the integers 0..n-1 with path
// compression and union by size.
type DisjointSet struct {
	parent []int
	size   []int
	sets   int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Find returns the representative of x's set.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets holding a and b. It reports false when they were
// already the same set.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.sets--

	return true
}

// Size returns the number of elements in x's set.
func (d *DisjointSet) Size(x int) int { return d.size[d.Find(x)] }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Sizes returns the size of every set, one entry per representative, in
// ascending representative order.
func (d *DisjointSet) Sizes() []int {
	out := make([]int, 0, d.sets)
	for i := range d.parent {
		if d.parent[i] == i {
			out = append(out, d.size[i])
		}
	}

	return out
}
