// Package pvrec implements the streaming position-variable-source (PV)
// recognizer: a single-threaded, per-batch association engine that turns a
// time-ordered stream of per-frame detections into promoted tracklets
// ("objects").
//
// Responsibilities: frame buffering, multi-hypothesis candidate tracking
// with deterministic disambiguation, a motion model that matures from a
// 1-point seed through 2-point linear and 3+-point accelerated prediction,
// and candidate lifecycle (seed, extend, promote, retire).
//
// Dependency rule: pvrec has no knowledge of the input line format, time
// conversion, or output file layout — those live in internal/pvrecio.
package pvrec
