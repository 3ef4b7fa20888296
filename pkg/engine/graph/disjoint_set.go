// Package graph provides small graph primitives shared by generators.
package graph

// DisjointSet is a union-find forest over the ids 0..n-1.
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet creates a forest where every id is its own root
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// Find returns the root of the set containing id.
// Iterative, with full path compression.
func (ds *DisjointSet) Find(id int) int {
	root := id
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[id] != root {
		next := ds.parent[id]
		ds.parent[id] = root
		id = next
	}
	return root
}

// Union merges the sets containing a and b by rank.
// Returns false if they were already in the same set.
func (ds *DisjointSet) Union(a, b int) bool {
	rootA := ds.Find(a)
	rootB := ds.Find(b)
	if rootA == rootB {
		return false
	}
	switch {
	case ds.rank[rootA] < ds.rank[rootB]:
		ds.parent[rootA] = rootB
	case ds.rank[rootA] > ds.rank[rootB]:
		ds.parent[rootB] = rootA
	default:
		ds.parent[rootB] = rootA
		ds.rank[rootA]++
	}
	return true
}

// Connected returns true if a and b share a root
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}

// Sets returns the number of disjoint sets
func (ds *DisjointSet) Sets() int {
	n := 0
	for i, p := range ds.parent {
		if i == p {
			n++
		}
	}
	return n
}
