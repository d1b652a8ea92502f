// Package strategy implements the three ways a target file is brought in
// sync with its source: symbolic link, hard link and byte copy.
//
// Strategies never return Go errors for filesystem failures. Every call
// yields an Attempt whose Status separates "not possible here" (Unsupported)
// from "tried and failed" (Failed), so the engine can fall back without
// inspecting platform error values.
package strategy

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bamsammich/hooksync/internal/platform"
	"github.com/bamsammich/hooksync/internal/stats"
)

// Method selects a strategy, or Auto for the fallback chain.
type Method int

const (
	Auto Method = iota
	Symlink
	Hardlink
	Copy
)

var methodNames = [...]string{
	Auto:     "auto",
	Symlink:  "symlink",
	Hardlink: "hardlink",
	Copy:     "copy",
}

func (m Method) String() string {
	if m >= Auto && m <= Copy {
		return methodNames[m]
	}
	return "unknown"
}

// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
var ErrUnknownMethod = errors.New("unknown sync method")

// ParseMethod parses a --method value.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Method(m), nil
		}
	}
	return Auto, fmt.Errorf("%w %q (want auto, symlink, hardlink or copy)", ErrUnknownMethod, s)
}

// MethodNames lists the accepted --method values.
func MethodNames() []string {
	return append([]string(nil), methodNames[:]...)
}

// Outcome maps a concrete method to the statistic it records on success.
func (m Method) Outcome() stats.Outcome {
	switch m {
	case Symlink:
		return stats.Symlinked
	case Hardlink:
		return stats.HardLinked
	case Copy:
		return stats.Copied
	default:
		return stats.Failed
	}
}

// Order returns the candidate methods for m in preference order.
func Order(m Method) []Method {
	if m == Auto {
		return []Method{Symlink, Hardlink, Copy}
	}
	return []Method{m}
}

// Status classifies an Attempt.
type Status int

const (
	Succeeded   Status = iota
	Unsupported        // structural precondition not met; try the next method
	Failed             // I/O failure while syncing
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Unsupported:
		return "unsupported"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Attempt is the result of applying one strategy to one file.
type Attempt struct {
	Err    error
	Method Method
	Status Status
	Bytes  int64 // bytes written, copy only
	DryRun bool
}

// OK reports whether the strategy brought the target in sync.
func (a Attempt) OK() bool { return a.Status == Succeeded }

// Strategy is one synchronization primitive.
type Strategy interface {
	Method() Method
	// Apply makes dst mirror src. src must be an existing regular file.
	Apply(src, dst string) Attempt
}

// Options configures every strategy.
type Options struct {
	FS     FS
	Logger *slog.Logger
	DryRun bool
}

func (o Options) withDefaults() Options {
	if o.FS == nil {
		o.FS = OSFS{}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// New returns the strategy for a concrete method.
//
//nolint:ireturn // one constructor for all methods
func New(m Method, opts Options) (Strategy, error) {
	opts = opts.withDefaults()
	switch m {
	case Symlink:
		return &symlinkStrategy{opts: opts}, nil
	case Hardlink:
		return &hardlinkStrategy{opts: opts}, nil
	case Copy:
		return &copyStrategy{opts: opts}, nil
	default:
		return nil, fmt.Errorf("no strategy for method %s", m)
	}
}

// Chain returns the strategies for m in the order they should be tried.
func Chain(m Method, opts Options) []Strategy {
	order := Order(m)
	chain := make([]Strategy, 0, len(order))
	for _, cm := range order {
		s, err := New(cm, opts)
		if err != nil {
			continue
		}
		chain = append(chain, s)
	}
	return chain
}

func succeeded(m Method, dryRun bool) Attempt {
	return Attempt{Method: m, Status: Succeeded, DryRun: dryRun}
}

func failed(m Method, dryRun bool, err error) Attempt {
	return Attempt{Method: m, Status: Failed, Err: err, DryRun: dryRun}
}

// classify maps a link error to Unsupported or Failed.
func classify(m Method, dryRun bool, err error) Attempt {
	status := Failed
	if platform.IsUnsupported(err) {
		status = Unsupported
	}
	return Attempt{Method: m, Status: status, Err: err, DryRun: dryRun}
}
