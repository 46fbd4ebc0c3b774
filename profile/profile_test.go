package profile

import (
	"flag"
	"testing"
)

func TestOptFlag(t *testing.T) {
	var (
		opt = None
		fs  = flag.NewFlagSet("preview", flag.ContinueOnError)
	)
	fs.Var(&opt, "profile", Usage())
	if err := fs.Parse([]string{"-profile", "mem"}); err != nil {
		t.Fatalf("parsing: %v", err)
	}
	if opt != Memory {
		t.Errorf("got %q, want %q", opt, Memory)
	}
	if err := opt.Set("heap"); err == nil {
		t.Errorf("expected error for unknown option")
	}
}

func TestNewProfiler(t *testing.T) {
	for _, o := range Opts {
		p := o.NewProfiler()
		if p.Type != o {
			t.Errorf("%s: profiler of type %q", o, p.Type)
		}
		if o != None && p.Starter == nil {
			t.Errorf("%s: no starter", o)
		}
	}
	// None must be safe to drive.
	p := None.NewProfiler()
	p.Start()
	p.Stop()
}
