// Package shape models validated axis-aligned rectangles and squares with integer
// extents, their snapshots and the JSON text those snapshots are stored as.
//
// Values reaching a shape from untyped sources (bulk updates, decoded JSON) are checked
// by Int, PositiveInt and NonNegativeInt. Failures are reported as Error with a Kind of
// TypeKind, ValueKind or ParseKind.
package shape
