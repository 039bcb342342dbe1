package diag

import "github.com/Be-ing/sixtyfps/internal/source"

// Reporter receives diagnostics from a pass.
type Reporter interface {
	Report(d Diagnostic)
}

// Sink is a Reporter that can tell whether an error was already recorded.
// The resolving pass uses it to poison expressions without double reporting.
type Sink interface {
	Reporter
	HasErrors() bool
}

// ReportBuilder collects notes and fixes before the diagnostic is sent:
//
//	diag.ReportError(r, diag.SemaTypeMismatch, sp, msg).WithNote(decl, "declared here").Emit()
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

func NewReportBuilder(r Reporter, sev Severity, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{reporter: r, diag: New(sev, code, primary, msg)}
}

func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, primary, msg)
}

func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, primary, msg)
}

func ReportInfo(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevInfo, code, primary, msg)
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b != nil {
		b.diag = b.diag.WithNote(sp, msg)
	}
	return b
}

func (b *ReportBuilder) WithFix(title string, edits ...FixEdit) *ReportBuilder {
	if b != nil {
		b.diag = b.diag.WithFix(title, edits...)
	}
	return b
}

// Emit sends the diagnostic once; later calls do nothing.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	b.emitted = true
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
}

// Diagnostic returns what Emit would send.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}

// BagReporter пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

func (r BagReporter) HasErrors() bool {
	return r.Bag != nil && r.Bag.HasErrors()
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

func (NopReporter) HasErrors() bool { return false }

// DedupReporter forwards each distinct diagnostic once. Two diagnostics
// are the same when code, severity, primary span and message match.
type DedupReporter struct {
	next Sink
	seen map[key]struct{}
}

func NewDedupReporter(next Sink) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[key]struct{})}
}

func (r *DedupReporter) Report(d Diagnostic) {
	if r == nil || r.next == nil {
		return
	}
	k := d.key()
	if _, dup := r.seen[k]; dup {
		return
	}
	r.seen[k] = struct{}{}
	r.next.Report(d)
}

func (r *DedupReporter) HasErrors() bool {
	return r != nil && r.next != nil && r.next.HasErrors()
}
