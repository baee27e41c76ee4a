// Package planlog renders a computed path as an ordered mission log: one
// timestamped record per segment, followed by a coverage summary.
//
// What:
//
//   - Record mirrors the core's per-segment output contract (Step, Label,
//     From, To, SegDist, SownDist, Action, FarmType) plus a Timestamp that
//     the logger (never the core) assigns.
//   - Logger writes the records as a colored table to any io.Writer.
//   - Clock abstracts time so tests stay deterministic.
//
// The logger only reads the path; it never mutates it, and it may run
// concurrently with other consumers of the same path.
package planlog
