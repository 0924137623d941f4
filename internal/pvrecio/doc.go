// Package pvrecio holds the external interface adapters around the pvrec
// engine: input line parsing, UTC->MJD conversion, tracklet file writing,
// and file/directory traversal. None of this package's concerns belong in
// the engine itself (pvrec.Engine never touches a filesystem or a clock).
package pvrecio
