package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/objtree"
	"github.com/Be-ing/sixtyfps/internal/observ"
	"github.com/Be-ing/sixtyfps/internal/resolve"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/trace"
	"github.com/Be-ing/sixtyfps/internal/typeloader"
	"github.com/Be-ing/sixtyfps/internal/types"
	"github.com/Be-ing/sixtyfps/internal/ui"
)

// Options configure a resolve run.
type Options struct {
	MaxDiagnostics   int
	Jobs             int // 0 means GOMAXPROCS
	IncludeDirs      []string
	WarningsAsErrors bool
	EnableTimings    bool
	// BaseDir is used for relative path display.
	BaseDir  string
	Progress ui.Sink
	Log      logrus.FieldLogger
}

// DocumentResult is the outcome for one interchange file. Document is
// nil when the file could not be read or decoded.
type DocumentResult struct {
	Path     string // interchange file
	Source   string // .60 document
	FileID   source.FileID
	Document *objtree.Document
	Bag      *diag.Bag
	Stats    resolve.Stats
}

// Result holds every document in input order plus the merged, sorted
// diagnostics.
type Result struct {
	FileSet   *source.FileSet
	Types     *types.Interner
	Documents []DocumentResult
	Bag       *diag.Bag
	Timings   *observ.Report
	timer     *observ.Timer
}

// HasErrors reports whether any document produced an error.
func (r *Result) HasErrors() bool {
	return r != nil && r.Bag.HasErrors()
}

// TimingSummary renders the phase table, empty without timings.
func (r *Result) TimingSummary() string {
	if r == nil || r.timer == nil {
		return ""
	}
	return r.timer.Summary()
}

type decoded struct {
	path string
	file *objtree.DocumentFile
	err  error
	// read failed before decoding started
	loadErr bool
}

// Resolve decodes the interchange files in parallel, then builds and
// resolves them one after another against a shared builtin register.
// Per-file read or decode failures become diagnostics; only context
// cancellation is returned as an error.
func Resolve(ctx context.Context, paths []string, opts Options) (*Result, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "resolve", trace.ParentSpan(ctx)).
		WithExtra("documents", fmt.Sprint(len(paths)))
	defer span.End("")
	ctx = trace.WithParentSpan(ctx, span.ID())

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}

	done := timer.Track("decode")
	docs, err := decodeAll(ctx, paths, opts)
	done(fmt.Sprintf("%d files", len(paths)))
	if err != nil {
		return nil, err
	}

	in := types.NewInterner()
	builtin := objtree.NewBuiltinRegister(in)
	res := &Result{
		FileSet:   source.NewFileSetWithBase(opts.BaseDir),
		Types:     in,
		Documents: make([]DocumentResult, 0, len(docs)),
		Bag:       diag.NewBag(0),
		timer:     timer,
	}
	for _, d := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dr := resolveOne(ctx, d, builtin, res.FileSet, opts, log, timer)
		res.Bag.Merge(dr.Bag)
		res.Documents = append(res.Documents, dr)
	}

	res.Bag.Sort()
	res.Bag.Dedup()
	if opts.WarningsAsErrors {
		if n := res.Bag.PromoteWarnings(); n > 0 {
			log.Debugf("promoted %d warnings to errors", n)
		}
	}
	if opts.MaxDiagnostics > 0 {
		res.Bag.Truncate(opts.MaxDiagnostics)
	}
	if timer != nil {
		report := timer.Report()
		res.Timings = &report
	}
	span.WithExtra("errors", fmt.Sprint(res.Bag.Count(diag.SevError)))
	return res, nil
}

func decodeAll(ctx context.Context, paths []string, opts Options) ([]decoded, error) {
	out := make([]decoded, len(paths))
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	tracer := trace.FromContext(ctx)
	parent := trace.ParentSpan(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		out[i].path = path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			span := trace.Begin(tracer, trace.ScopePass, "decode", parent).WithExtra("path", path)
			defer span.End("")
			notify(opts.Progress, ui.Event{File: path, Stage: ui.StageDecode})

			// #nosec G304 -- path comes from the command line
			data, err := os.ReadFile(path)
			if err != nil {
				out[i].err = fmt.Errorf("failed to read %s: %w", path, err)
				out[i].loadErr = true
				return nil
			}
			f, err := objtree.DecodeDocumentFile(data)
			if err != nil {
				out[i].err = fmt.Errorf("%s: %w", path, err)
				return nil
			}
			out[i].file = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func resolveOne(ctx context.Context, d decoded, builtin *objtree.TypeRegister, fset *source.FileSet, opts Options, log logrus.FieldLogger, timer *observ.Timer) DocumentResult {
	dr := DocumentResult{Path: d.path, Bag: diag.NewBag(opts.MaxDiagnostics)}
	reporter := diag.BagReporter{Bag: dr.Bag}

	if d.err != nil {
		dr.Source = d.path
		dr.FileID = fset.Add(d.path, nil, source.FileVirtual)
		code := diag.IODecodeError
		if d.loadErr {
			code = diag.IOLoadFileError
		}
		if errors.Is(d.err, fs.ErrNotExist) {
			code = diag.IOLoadFileError
		}
		diag.ReportError(reporter, code, source.Span{File: dr.FileID}, d.err.Error()).Emit()
		log.WithError(d.err).Warn("skipping document")
		notify(opts.Progress, ui.Event{File: d.path, Stage: ui.StageFailed, Errors: 1})
		return dr
	}

	dr.Source = sourcePath(d.path, d.file.Path)
	// spans are byte offsets into the source as sent, so no CRLF folding
	dr.FileID = fset.Add(dr.Source, []byte(d.file.Source), source.FileVirtual)
	entry := log.WithField("document", dr.Source)

	notify(opts.Progress, ui.Event{File: d.path, Stage: ui.StageBuild})
	dr.Document = objtree.Build(d.file, dr.FileID, builtin, reporter)

	notify(opts.Progress, ui.Event{File: d.path, Stage: ui.StageResolve})
	done := timer.Track("resolve " + dr.Source)
	dr.Stats = resolve.ResolveExpressions(dr.Document, resolve.Options{
		Sink:       diag.NewDedupReporter(reporter),
		Importer:   typeloader.ForDocument(dr.Source, opts.IncludeDirs, entry),
		Tracer:     trace.FromContext(ctx),
		ParentSpan: trace.ParentSpan(ctx),
	})
	done(fmt.Sprintf("%d bindings", dr.Stats.Bindings))

	entry.WithFields(logrus.Fields{
		"bindings": dr.Stats.Bindings,
		"models":   dr.Stats.Models,
		"aliases":  dr.Stats.Aliases,
	}).Debug("resolved")

	errs, warns := dr.Bag.Count(diag.SevError), dr.Bag.Count(diag.SevWarning)
	stage := ui.StageDone
	if errs > 0 {
		stage = ui.StageFailed
	}
	notify(opts.Progress, ui.Event{File: d.path, Stage: stage, Errors: errs, Warnings: warns})
	return dr
}

func notify(s ui.Sink, ev ui.Event) {
	if s != nil {
		s.OnEvent(ev)
	}
}

// EmitTree dumps the resolved element tree of every document that was
// built.
func (r *Result) EmitTree(w io.Writer, withTypes bool) error {
	for _, dr := range r.Documents {
		if dr.Document == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "// %s\n", dr.Source); err != nil {
			return err
		}
		if err := objtree.Dump(w, dr.Document, objtree.DumpOptions{WithTypes: withTypes}); err != nil {
			return fmt.Errorf("dump %s: %w", dr.Source, err)
		}
	}
	return nil
}
