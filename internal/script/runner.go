package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/eapache/queue"

	"github.com/pavanmanishd/vector"
)

// ErrStepFailed is returned by Run in fail-fast mode when an expectation does not hold.
var ErrStepFailed = errors.New("step failed")

// Options configures Run.
type Options struct {
	Logger   *slog.Logger // defaults to slog.Default()
	FailFast bool         // stop at the first failed step
}

// Result describes the vector after one step.
type Result struct {
	Index    int
	Step     Step
	Elements []int
	Size     int
	Capacity int
	Err      error  // error returned, or panic raised, by the vector
	Failure  string // unmet expectation, empty when the step passed
}

// Passed reports whether every expectation of the step held.
func (r Result) Passed() bool { return r.Failure == "" }

// Report collects the results of one script run.
type Report struct {
	Script  string
	Results []Result
	Failed  int
}

// OK reports whether every executed step passed.
func (r *Report) OK() bool { return r.Failed == 0 }

type pendingStep struct {
	index int
	step  Step
}

// Run executes the steps of s in order against a fresh vector.
// Cancellation is checked between steps.
func Run(ctx context.Context, s *Script, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("script", s.Name)

	pending := queue.New()
	for i, st := range s.Steps {
		pending.Add(pendingStep{index: i, step: st})
	}

	v := vector.New[int]()
	report := &Report{Script: s.Name}

	for pending.Length() > 0 {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		p := pending.Remove().(pendingStep)

		got, err := apply(v, p.step)
		res := Result{
			Index:    p.index,
			Step:     p.step,
			Elements: slices.Clone(v.Slice()),
			Size:     v.Len(),
			Capacity: v.Cap(),
			Err:      err,
			Failure:  check(p.step, v, got, err),
		}
		report.Results = append(report.Results, res)

		if res.Passed() {
			log.Debug("step passed", "index", p.index, "op", p.step.Op, "size", res.Size, "capacity", res.Capacity)
			continue
		}
		report.Failed++
		log.Warn("step failed", "index", p.index, "op", p.step.Op, "failure", res.Failure)
		if opts.FailFast {
			return report, fmt.Errorf("%w: %s step %d: %s", ErrStepFailed, s.Name, p.index, res.Failure)
		}
	}

	log.Info("script finished", "steps", len(report.Results), "failed", report.Failed)
	return report, nil
}

// apply performs one operation. Panics carrying an error (contract violations,
// allocation failures) are returned as errors.
func apply(v *vector.Vector[int], st Step) (got *int, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			got, err = nil, e
		}
	}()

	switch st.Op {
	case OpPushBack:
		v.PushBack(*st.Value)
	case OpPopBack:
		v.PopBack()
	case OpInsert:
		v.Insert(*st.Pos, *st.Value)
	case OpErase:
		_, err = v.Erase(*st.Pos)
	case OpReserve:
		v.Reserve(*st.N)
	case OpResize:
		v.Resize(*st.N)
	case OpClear:
		v.Clear()
	case OpAt:
		var p *int
		if p, err = v.At(*st.Pos); err == nil {
			x := *p
			got = &x
		}
	case OpSet:
		var p *int
		if p, err = v.At(*st.Pos); err == nil {
			*p = *st.Value
		}
	default:
		err = fmt.Errorf("%w: unknown op %q", ErrInvalidScript, st.Op)
	}
	return got, err
}

// check returns a description of the first unmet expectation, or "".
func check(st Step, v *vector.Vector[int], got *int, err error) string {
	if kind := ErrorKind(err); kind != st.Error {
		if st.Error == "" {
			return fmt.Sprintf("unexpected error: %v", err)
		}
		return fmt.Sprintf("error kind = %q, want %q", kind, st.Error)
	}
	if st.Op == OpAt && err == nil && st.Value != nil && *got != *st.Value {
		return fmt.Sprintf("at(%d) = %d, want %d", *st.Pos, *got, *st.Value)
	}
	if st.Expect != nil && !slices.Equal(v.Slice(), *st.Expect) {
		return fmt.Sprintf("elements = %v, want %v", v.Slice(), *st.Expect)
	}
	if st.Size != nil && v.Len() != *st.Size {
		return fmt.Sprintf("size = %d, want %d", v.Len(), *st.Size)
	}
	if st.Capacity != nil && v.Cap() != *st.Capacity {
		return fmt.Sprintf("capacity = %d, want %d", v.Cap(), *st.Capacity)
	}
	return ""
}

// ErrorKind maps an error from the vector to its script name.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vector.ErrIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, vector.ErrEmptyContainer):
		return KindEmptyContainer
	case errors.Is(err, vector.ErrInvalidPosition):
		return KindInvalidPosition
	case errors.Is(err, vector.ErrAllocationFailure):
		return KindAllocationFailure
	default:
		return KindOther
	}
}
