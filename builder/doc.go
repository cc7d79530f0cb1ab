// Package builder produces deterministic labeled graph fixtures for the
// structural-balance engine: small canonical topologies with known triangle
// and wedge counts, and seeded random graphs with tunable homophily.
//
// Every fixture is a Constructor applied to a Draft. BuildGraph composes
// constructors as a disjoint union: each one appends its own vertices after
// those already present, so Complete(3) followed by Path(2) yields a triangle
// on 1..3 and an edge 4-5.
//
//   - Topologies:
//     – Complete(n):              K_n, C(n,3) triangles.
//     – Cycle(n), Path(n):        triangle-free for n ≥ 4.
//     – Star(n), Wheel(n):        hub fixtures (wedge hot path).
//     – CompleteBipartite(a,b):   triangle-free, many wedges.
//     – RandomSparse(n,p):        Erdős–Rényi G(n,p).
//     – PlantedPartition(sizes,pIn,pOut): stochastic block model; block b is
//       labeled b+1, so pIn > pOut yields strong homophily.
//   - Labels:
//     – Labeled(code, c): assigns code to every vertex c adds.
//     – vertices default to code 1.
//   - Options:
//     – WithSeed / WithRand for stochastic constructors.
//
// Guarantees:
//
//   - Deterministic for equal constructors, order and seed.
//   - Output graphs satisfy adjacency.Validate (simple, sorted, symmetric).
//   - Constructors return sentinel errors and never panic; option
//     constructors panic on meaningless input (nil RNG).
package builder
