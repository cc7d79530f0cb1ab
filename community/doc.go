// Package community wires gonum's graph algorithms onto the read-only
// adjacency view: community detection (Louvain modularisation or connected
// components) and betweenness centrality.
//
// The detection algorithm is a Strategy chosen once at startup with Select
// and injected into the run; nothing probes for capabilities at call time.
//
//	Select("louvain", resolution, seed)  → Louvain (gonum community.Modularize)
//	Select("components", 0, 0)           → Components (gonum topo.ConnectedComponents)
//	Select("none", 0, 0)                 → nil Strategy, nil error
//
// Vertex ids map one-to-one onto gonum node ids (int64).
package community
