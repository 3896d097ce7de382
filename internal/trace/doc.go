// Package trace records what the sfz pipeline is doing.
//
// It is the only log sink of the module: the core packages never write
// anything, the driver opens spans around phases and files.
//
//	sfz diag --trace=- --trace-level=detail samples/
//
// Tracers:
//
//   - Nop: zero-overhead when tracing is off
//   - StreamTracer: writes each event as it happens (stderr or a file)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// Levels are off, error, phase, detail and debug. Scopes are driver (one
// command), pass (load, include, expand, tokenize, build) and file (one
// instrument inside a directory run).
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "build", 0)
//	defer span.End("")
package trace
