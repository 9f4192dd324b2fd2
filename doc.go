// Package projective provides primitives and routines for projective
// algebraic geometry: plane curves, quadrics, and conics represented by
// homogeneous coefficient tensors. It was designed to serve the needs of
// geometric-computation callers that work in homogeneous coordinates, but it
// is intended to be general enough to be useful for other applications.
//
// # Features
//
// We provide the following notable features:
//
//   - Homogeneous points, lines, and hyperplanes with join/meet operators
//     (see [Point], [Line], [Plane], [SpanLine])
//   - General plane algebraic curves with tangent and intersection queries
//     (see [AlgebraicCurve])
//   - Quadrics in any dimension: degeneracy, duality, decomposition into
//     linear components, and line/quadric intersection via pencils (see
//     [Quadric])
//   - Conics with the classical synthetic constructions: five points,
//     tangent line, cross-ratio, and foci (see [Conic])
//   - Metric shapes parametrized by center and radius, including Lie
//     coordinates for circles (see [Circle], [Ellipse], [Sphere], [Cone],
//     [Cylinder])
//   - Symbolic multivariate polynomials and their coefficient-tensor form
//     (see [Poly], [TensorFromPoly])
//
// # Representations
//
// The package deliberately keeps two representations side by side. Symbolic
// polynomial algebra ([Poly]) is used where structure matters: solving
// polynomial systems during curve intersection, finding the degenerate
// member of a pencil of quadrics, and matching coefficients in the
// cross-ratio construction. Numeric linear algebra (complex matrices and
// coefficient tensors) is used for everything else: containment, tangents,
// duals, and the decomposition of degenerate quadrics. Conversions between
// the two are explicit ([TensorFromPoly], [PolyFromTensor],
// [Quadric.Polynomial]).
//
// All shapes are immutable values. Every derived object is freshly
// constructed; no value is mutated after construction. Operations are
// deterministic up to floating-point rounding and the inherent sign
// ambiguity of complex square roots taken during decompositions.
//
// Intersection queries take their operand as an [Intersectable], a closed
// set of operand kinds. Passing an operand kind an operation does not
// support yields [ErrNotSupported].
package projective
