// Package triad enumerates the triangles of an undirected labeled graph and
// classifies them by structural balance.
//
// A triad {u,v,w} is emitted exactly once with its canonical representative
// u<v<w. Each edge carries a sign derived from the labels of its endpoints:
//
//	sign(x,y) = +1  if label(x) == label(y)
//	sign(x,y) = -1  otherwise
//
// A triad is balanced iff sign(u,v)·sign(v,w)·sign(u,w) > 0, i.e. it has zero
// or two negative edges.
//
// Algorithm (Enumerate):
//
//	for u in 1..N:
//	    for v in N(u), v > u:
//	        merge N(u) and N(v) (both ascending):
//	            skip v in N(u) and u in N(v)
//	            for every common w > v: emit (u,v,w)
//
// The double inequality u<v<w guarantees uniqueness regardless of visiting
// order. Each (u,v) pair costs O(deg u + deg v).
//
// Balance ratio:
//
//	Ratio = balanced / total, undefined (measure.Undefined) when total == 0.
//
// Graphs with fewer than three vertices or without triangles produce an empty
// stream and an undefined ratio; neither is an error.
package triad
