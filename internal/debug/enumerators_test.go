package debug

import (
	"errors"
	"testing"

	"github.com/dshills/debughost/internal/debug/enum"
)

func sampleThreads() []*Thread {
	return []*Thread{
		{ID: 1, Name: "main", ExecState: ThreadStopped},
		{ID: 2, Name: "worker-1", ExecState: ThreadRunning},
		{ID: 3, Name: "worker-2", ExecState: ThreadRunning},
	}
}

func TestThreadEnumerator_NarrowsToHandles(t *testing.T) {
	threads := sampleThreads()
	e := NewThreadEnumerator(threads)

	if e.Count() != 3 {
		t.Fatalf("Count() = %d, expected 3", e.Count())
	}

	buf := make([]ThreadHandle, 2)
	n, st := e.Next(2, buf)
	if n != 2 || st != enum.StatusComplete {
		t.Fatalf("Next(2) = (%d, %v), expected (2, complete)", n, st)
	}

	// Handles must reference the stored threads, not copies.
	if got, ok := buf[0].(*Thread); !ok || got != threads[0] {
		t.Errorf("handle 0 does not reference the stored thread")
	}
	if buf[1].ThreadID() != 2 {
		t.Errorf("handle 1 ThreadID() = %d, expected 2", buf[1].ThreadID())
	}

	n, st = e.Next(2, buf)
	if n != 1 || st != enum.StatusPartial {
		t.Errorf("Next(2) at tail = (%d, %v), expected (1, partial)", n, st)
	}
	if buf[0].ThreadName() != "worker-2" {
		t.Errorf("last handle name = %s, expected worker-2", buf[0].ThreadName())
	}
}

func TestThreadEnumerator_SkipAndReset(t *testing.T) {
	e := NewThreadEnumerator(sampleThreads())

	n, st := e.Skip(2)
	if n != 2 || st != enum.StatusComplete {
		t.Fatalf("Skip(2) = (%d, %v), expected (2, complete)", n, st)
	}

	buf := make([]ThreadHandle, 4)
	n, _ = e.Next(4, buf)
	if n != 1 || buf[0].ThreadID() != 3 {
		t.Fatalf("Next after Skip delivered wrong elements (n=%d)", n)
	}

	e.Reset()
	n, st = e.Next(4, buf)
	if n != 3 || st != enum.StatusPartial {
		t.Errorf("Next after Reset = (%d, %v), expected (3, partial)", n, st)
	}
	if buf[0].ThreadID() != 1 {
		t.Errorf("Reset did not return to the first thread")
	}
}

func TestModuleEnumerator_NarrowsToHandles(t *testing.T) {
	modules := []*Module{
		{ID: 1, Name: "app", Path: "/bin/app", SymbolState: SymbolsLoaded},
		{ID: 2, Path: "/lib/libc.so.6", SymbolState: SymbolsNotLoaded},
	}
	e := NewModuleEnumerator(modules)

	buf := make([]ModuleHandle, 2)
	n, st := e.Next(5, buf)
	if n != 2 || st != enum.StatusPartial {
		t.Fatalf("Next(5) = (%d, %v), expected (2, partial)", n, st)
	}
	if buf[0].ModuleName() != "app" {
		t.Errorf("ModuleName() = %s, expected app", buf[0].ModuleName())
	}
	// Name derived from path when unset.
	if buf[1].ModuleName() != "libc.so.6" {
		t.Errorf("ModuleName() = %s, expected libc.so.6", buf[1].ModuleName())
	}
	if buf[1].Symbols() != SymbolsNotLoaded {
		t.Errorf("Symbols() = %v, expected not loaded", buf[1].Symbols())
	}
}

func TestFrameInfoEnumerator_ReferenceConvention(t *testing.T) {
	frames := []FrameInfo{
		{ID: 1, FuncName: "a"},
		{ID: 2, FuncName: "b"},
		{ID: 3, FuncName: "c"},
	}
	e := NewFrameInfoEnumerator(frames)

	buf := make([]FrameInfo, 2)
	n := 2
	st := e.Next(buf, &n)
	if st != enum.StatusComplete || n != 2 {
		t.Fatalf("Next = (%v, n=%d), expected (complete, 2)", st, n)
	}
	if buf[0].FuncName != "a" || buf[1].FuncName != "b" {
		t.Errorf("delivered %s,%s, expected a,b", buf[0].FuncName, buf[1].FuncName)
	}

	// The same pointer carries the request in and the result out.
	n = 2
	st = e.Next(buf, &n)
	if st != enum.StatusPartial || n != 1 {
		t.Errorf("Next at tail = (%v, n=%d), expected (partial, 1)", st, n)
	}
	if buf[0].FuncName != "c" {
		t.Errorf("delivered %s, expected c", buf[0].FuncName)
	}

	// nil count pointer is a zero-sized request.
	if st := e.Next(buf, nil); st != enum.StatusComplete {
		t.Errorf("Next(nil count) = %v, expected complete", st)
	}
}

func TestPropertyEnumerators_AliasedContractsMatch(t *testing.T) {
	props := []PropertyInfo{
		{Name: "items", Type: "[]string", Attr: PropAttrExpandable, ChildRef: 7},
		{Name: "count", Type: "int", Value: "3"},
	}

	walk := func(next func(buf []PropertyInfo, n *int) enum.Status) []string {
		var names []string
		buf := make([]PropertyInfo, 1)
		for {
			n := 1
			st := next(buf, &n)
			for _, p := range buf[:n] {
				names = append(names, p.Name)
			}
			if st == enum.StatusPartial {
				return names
			}
		}
	}

	a := NewPropertyEnumerator(props)
	b := NewPropertyChildEnumerator(props)

	namesA := walk(a.Next)
	namesB := walk(b.Next)

	if len(namesA) != 2 || len(namesB) != 2 {
		t.Fatalf("walks delivered %d and %d names, expected 2 and 2", len(namesA), len(namesB))
	}
	for i := range namesA {
		if namesA[i] != namesB[i] {
			t.Errorf("aliased contracts diverged at %d: %s vs %s", i, namesA[i], namesB[i])
		}
	}
}

func TestPropertyInfo_Expandable(t *testing.T) {
	tests := []struct {
		name     string
		attr     PropertyAttr
		expected bool
	}{
		{name: "plain", attr: PropAttrNone, expected: false},
		{name: "expandable", attr: PropAttrExpandable, expected: true},
		{name: "expandable and readonly", attr: PropAttrExpandable | PropAttrReadOnly, expected: true},
		{name: "readonly only", attr: PropAttrReadOnly, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PropertyInfo{Attr: tt.attr}
			if p.Expandable() != tt.expected {
				t.Errorf("Expandable() = %v, expected %v", p.Expandable(), tt.expected)
			}
		})
	}
}

func TestBoundBreakpointEnumerator_ReferenceConvention(t *testing.T) {
	pending := &PendingBreakpoint{ID: 1, Path: "main.go", Line: 42, Enabled: true}
	bound := []*BoundBreakpoint{
		{Pending: pending, Location: &CodeContext{SourcePath: "main.go", Line: 42}, Verified: true},
		{Pending: pending, Location: &CodeContext{SourcePath: "main.go", Line: 43}, Verified: false},
	}
	e := NewBoundBreakpointEnumerator(bound)

	buf := make([]*BoundBreakpoint, 4)
	n := 4
	st := e.Next(buf, &n)
	if st != enum.StatusPartial || n != 2 {
		t.Fatalf("Next = (%v, n=%d), expected (partial, 2)", st, n)
	}
	if buf[0] != bound[0] || buf[1] != bound[1] {
		t.Errorf("bound breakpoints copied by value instead of by reference")
	}
}

func TestProgramEnumerator_Walk(t *testing.T) {
	programs := []*Program{
		{ID: "p1", Name: "app"},
		{ID: "p2", Pid: 99},
	}
	e := NewProgramEnumerator(programs)

	buf := make([]*Program, 1)
	var seen []string
	for {
		n, st := e.Next(1, buf)
		for _, p := range buf[:n] {
			seen = append(seen, p.DisplayName())
		}
		if st == enum.StatusPartial {
			break
		}
	}

	if len(seen) != 2 || seen[0] != "app" || seen[1] != "pid 99" {
		t.Errorf("walk delivered %v, expected [app, pid 99]", seen)
	}
}

func TestCodeContextEnumerator_Walk(t *testing.T) {
	ctxs := []*CodeContext{
		{Address: 0x1000, SourcePath: "main.go", Line: 42},
		{Address: 0x2000},
	}
	e := NewCodeContextEnumerator(ctxs)

	if e.Count() != 2 {
		t.Fatalf("Count() = %d, expected 2", e.Count())
	}

	buf := make([]*CodeContext, 2)
	n, st := e.Next(2, buf)
	if n != 2 || st != enum.StatusComplete {
		t.Fatalf("Next(2) = (%d, %v), expected (2, complete)", n, st)
	}
	if buf[0].FormatLocation() != "main.go:42" {
		t.Errorf("FormatLocation() = %s, expected main.go:42", buf[0].FormatLocation())
	}
	if buf[1].FormatLocation() != "0x00002000" {
		t.Errorf("FormatLocation() = %s, expected 0x00002000", buf[1].FormatLocation())
	}
}

func TestEnumerators_CloneNotImplemented(t *testing.T) {
	checks := []struct {
		name  string
		clone func() error
	}{
		{"programs", func() error { _, err := NewProgramEnumerator(nil).Clone(); return err }},
		{"threads", func() error { _, err := NewThreadEnumerator(nil).Clone(); return err }},
		{"modules", func() error { _, err := NewModuleEnumerator(nil).Clone(); return err }},
		{"code contexts", func() error { _, err := NewCodeContextEnumerator(nil).Clone(); return err }},
		{"frames", func() error { _, err := NewFrameInfoEnumerator(nil).Clone(); return err }},
		{"bound breakpoints", func() error { _, err := NewBoundBreakpointEnumerator(nil).Clone(); return err }},
		{"properties", func() error { _, err := NewPropertyEnumerator(nil).Clone(); return err }},
		{"property children", func() error { _, err := NewPropertyChildEnumerator(nil).Clone(); return err }},
	}

	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.clone(); !errors.Is(err, enum.ErrNotImplemented) {
				t.Errorf("Clone() error = %v, expected ErrNotImplemented", err)
			}
		})
	}
}

func TestThread_ThreadName(t *testing.T) {
	named := &Thread{ID: 7, Name: "worker"}
	if named.ThreadName() != "worker" {
		t.Errorf("ThreadName() = %s, expected worker", named.ThreadName())
	}

	unnamed := &Thread{ID: 7}
	if unnamed.ThreadName() != "Thread 7" {
		t.Errorf("ThreadName() = %s, expected Thread 7", unnamed.ThreadName())
	}
}

func TestFrameInfo_FormatLocation(t *testing.T) {
	tests := []struct {
		name     string
		frame    FrameInfo
		expected string
	}{
		{
			name:     "with source",
			frame:    FrameInfo{SourcePath: "main.go", Line: 42},
			expected: "main.go:42",
		},
		{
			name:     "address only",
			frame:    FrameInfo{Address: 0x401220},
			expected: "0x00401220",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.frame.FormatLocation(); got != tt.expected {
				t.Errorf("FormatLocation() = %s, expected %s", got, tt.expected)
			}
		})
	}
}
