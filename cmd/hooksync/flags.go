package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/bamsammich/hooksync/internal/engine"
	"github.com/bamsammich/hooksync/internal/filter"
	"github.com/bamsammich/hooksync/internal/strategy"
)

var (
	_ pflag.Value = (*methodFlag)(nil)
	_ pflag.Value = (*digestFlag)(nil)
	_ pflag.Value = (*filterFlag)(nil)
)

// methodFlag validates --method at parse time.
type methodFlag struct {
	method *strategy.Method
}

func (f *methodFlag) String() string {
	if f.method == nil {
		return strategy.Auto.String()
	}
	return f.method.String()
}

func (*methodFlag) Type() string { return "method" }

func (f *methodFlag) Set(val string) error {
	m, err := strategy.ParseMethod(val)
	if err != nil {
		return err
	}
	*f.method = m
	return nil
}

// digestFlag validates --digest at parse time.
type digestFlag struct {
	digest *engine.Digest
}

func (f *digestFlag) String() string {
	if f.digest == nil {
		return engine.BLAKE3.String()
	}
	return f.digest.String()
}

func (*digestFlag) Type() string { return "digest" }

func (f *digestFlag) Set(val string) error {
	d, err := engine.ParseDigest(val)
	if err != nil {
		return err
	}
	*f.digest = d
	return nil
}

// filterFlag is a custom pflag.Value that preserves CLI ordering of
// --exclude and --include rules by appending to a shared filter.Chain.
type filterFlag struct {
	chain   *filter.Chain
	include bool
}

func (*filterFlag) String() string { return "" }
func (*filterFlag) Type() string   { return "pattern" }

func (f *filterFlag) Set(val string) error {
	if f.include {
		return f.chain.AddInclude(val)
	}
	return f.chain.AddExclude(val)
}

func methodUsage() string {
	return "sync method: " + strings.Join(strategy.MethodNames(), ", ")
}
