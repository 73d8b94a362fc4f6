// Package debug provides optional structured trace logging for the layout engine.
//
// When the BOX3D_DEBUG environment variable is set to a file path, trace
// records are appended to that file as text-formatted slog records.
// Otherwise, logging is a no-op.
package debug
