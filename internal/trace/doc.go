// Package trace records nested spans of a compiler run.
//
// The driver opens a driver span per invocation, the pipeline a pass span
// per document stage, the resolver a component span per component and a
// binding span per binding. Which of these are recorded is decided by the
// Level:
//
//	sixtyfps resolve --trace=- --trace-level=detail ui/main.60.mp
//
// Without --trace events go to an in-memory ring that is dumped to stderr
// when the run fails.
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "decode", trace.ParentSpan(ctx))
//	defer span.End("")
package trace
