// Package diag defines the diagnostic model shared by the loader, the
// resolving pass and the CLI.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier with a stable string form (codes.go).
//   - Message – human oriented text; keep it short and actionable.
//   - Primary – the source.Span the finding is anchored at.
//   - Notes – optional secondary spans with extra context.
//   - Fixes – optional text edits that would address the problem.
//
// # Emitting diagnostics
//
// Producers depend on Reporter (or Sink when they must know whether an
// error was already recorded, e.g. to poison an expression silently).
// ReportError/ReportWarning return a ReportBuilder that can be decorated
// with notes and fixes before Emit. BagReporter collects into a Bag which
// supports sorting, deduplication and merging of per-document bags.
//
// Package diag does no formatting or IO; rendering lives in internal/diagfmt.
package diag
