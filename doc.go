// Package triadic measures how strongly a labeled network closes triangles
// among vertices that share a label, and whether its triangles are
// structurally balanced.
//
// 🚀 What does triadic compute?
//
//	Given an undirected simple graph and one categorical label per vertex:
//		• Triad census: every triangle once, with the sign of each edge
//		  (+ when both endpoints share a label) and the balance ratio
//		• Wedge closure: the fraction of same-label wedges whose ends are
//		  joined by a same-label edge
//		• Null model: the closure rate under label permutations, giving a
//		  baseline mean, standard deviation, lift and z-score
//		• Homophily: mixing matrix, edge homophily, assortativity
//		• Communities: Louvain or connected components, modularity, purity
//
// Undefined quantities (no triangles, no wedges, zero variance) are reported
// as measure.Undefined instead of NaN, and propagate through lift and z-score.
//
// Packages:
//
//	adjacency/     - read-only Graph accessor + CSR implementation (Sorted)
//	labels/        - 1-based label assignment, string encoder
//	triad/         - triangle enumeration, signs, balance census
//	wedge/         - same-label wedge closure
//	nullmodel/     - parallel label-permutation sampler
//	balance/       - Analyze: the full report in one call
//	measure/       - optional float with JSON/YAML null encoding
//	builder/       - deterministic graph fixtures (Complete, PlantedPartition…)
//	homophily/     - label mixing statistics (gonum/mat)
//	community/     - community strategies and centrality (gonum/graph)
//	loader/        - CSV edge and label tables
//	report/        - text, JSON and YAML renderers
//	config/        - viper configuration with TRIADIC_ environment overrides
//	observability/ - OpenTelemetry tracing, Prometheus metrics
//	cmd/triadic    - command-line front end
//
// Quick ASCII example:
//
//	    1(A)───2(A)
//	      \    /
//	       3(A)───4(B)
//
//	one balanced triangle {1,2,3}; three same-label wedges, all closed.
//
//	go install github.com/katalvlaran/triadic/cmd/triadic@latest
package triadic
