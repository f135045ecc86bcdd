// Package main is the entry point for the debughost inspection tool.
//
// The tool loads a launch profile, seeds a session with the debuggee
// state a collaborator would report, and walks every enumerable debug
// collection in batches, printing what the host would see.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/dshills/debughost/internal/config"
	"github.com/dshills/debughost/internal/debug"
	"github.com/dshills/debughost/internal/debug/enum"
	"github.com/dshills/debughost/internal/debug/launch"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath  string
	launchPath  string
	profileName string
	batchSize   int
	showVersion bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to debughost.toml")
	flag.StringVar(&opts.launchPath, "launch", "launch.json", "path to launch profile file")
	flag.StringVar(&opts.profileName, "profile", "", "launch profile name (default: first profile)")
	flag.IntVar(&opts.batchSize, "batch", 0, "batch size for enumerator walks (default: from config)")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()
	return opts
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("debughost %s\n", version)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	batch := cfg.MaxBatchSize
	if opts.batchSize > 0 {
		batch = opts.batchSize
	}

	profiles, err := launch.Load(opts.launchPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load launch profiles: %v\n", err)
		return 1
	}

	profile := launch.Profile{Name: "default", Program: "debuggee"}
	if len(profiles) > 0 {
		profile = profiles[0]
		if opts.profileName != "" {
			p, ok := launch.Find(profiles, opts.profileName)
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: launch profile %q not found\n", opts.profileName)
				return 1
			}
			profile = p
		}
	}
	log.Info().Str("profile", profile.Name).Stringer("request", profile.Request).Msg("using launch profile")

	session := debug.NewSession(log)
	session.Breakpoints().SetPersistPath(cfg.BreakpointsFile)
	if err := session.Breakpoints().Load(); err != nil {
		log.Warn().Err(err).Msg("breakpoint load failed")
	}

	if cfg.WatchBreakpoints {
		watcher, err := debug.NewBreakpointWatcher(session.Breakpoints(), cfg.BreakpointsFile, log)
		if err != nil {
			log.Warn().Err(err).Msg("breakpoint watching disabled")
		} else {
			defer watcher.Close()
		}
	}

	seedSession(session, profile)

	walkAll(session, batch)
	session.Terminate()
	return 0
}

// seedSession populates the session with the debuggee state a
// collaborator would report at a stop.
func seedSession(session *debug.Session, profile launch.Profile) {
	session.Programs().Add(profile.Program, 4242, profile.Request == launch.RequestAttach)
	_ = session.Run()
	_ = session.Stop()

	session.SetThreads([]*debug.Thread{
		{ID: 1, Name: "main", ExecState: debug.ThreadStopped, FrameCount: 3},
		{ID: 2, Name: "worker-1", ExecState: debug.ThreadRunning},
		{ID: 3, Name: "worker-2", ExecState: debug.ThreadRunning},
	})
	session.SetModules([]*debug.Module{
		{ID: 1, Name: "debuggee", Path: profile.Program, SymbolState: debug.SymbolsLoaded, IsUserCode: true, LoadAddress: 0x400000},
		{ID: 2, Name: "libc.so.6", Path: "/lib/libc.so.6", SymbolState: debug.SymbolsNotLoaded, LoadAddress: 0x7f0000000000},
	})
	session.SetFrames(1, []debug.FrameInfo{
		{ID: 1000, FuncName: "main.process", SourcePath: "main.go", Line: 42, ModuleName: "debuggee", Address: 0x401220},
		{ID: 1001, FuncName: "main.run", SourcePath: "main.go", Line: 17, ModuleName: "debuggee", Address: 0x401100},
		{ID: 1002, FuncName: "main.main", SourcePath: "main.go", Line: 9, ModuleName: "debuggee", Address: 0x401000},
	})
	session.SetProperties(1000, []debug.PropertyInfo{
		{Name: "items", FullName: "items", Type: "[]string", Value: "len 3", Attr: debug.PropAttrExpandable, ChildRef: 2000},
		{Name: "count", FullName: "count", Type: "int", Value: "3"},
	})
	session.SetProperties(2000, []debug.PropertyInfo{
		{Name: "[0]", FullName: "items[0]", Type: "string", Value: `"a"`},
		{Name: "[1]", FullName: "items[1]", Type: "string", Value: `"b"`},
		{Name: "[2]", FullName: "items[2]", Type: "string", Value: `"c"`},
	})
	session.SetCodeContexts("main.go", 42, []*debug.CodeContext{
		{Address: 0x401220, SourcePath: "main.go", Line: 42, FuncName: "main.process"},
	})

	if bp, err := session.Breakpoints().Add("main.go", 42); err == nil {
		_, _ = session.Breakpoints().Bind(bp.ID,
			&debug.CodeContext{Address: 0x401220, SourcePath: "main.go", Line: 42},
			true, "")
	}
}

// walkAll drains every enumerator family and prints the results.
func walkAll(session *debug.Session, batch int) {
	fmt.Printf("programs (%d):\n", session.EnumPrograms().Count())
	walkPrograms(session.EnumPrograms(), batch)

	fmt.Printf("threads (%d):\n", session.EnumThreads().Count())
	walkThreads(session.EnumThreads(), batch)

	fmt.Printf("modules (%d):\n", session.EnumModules().Count())
	walkModules(session.EnumModules(), batch)

	fmt.Printf("frames for thread 1 (%d):\n", session.EnumFrames(1).Count())
	walkFrames(session.EnumFrames(1), batch)

	fmt.Printf("properties for frame 1000 (%d):\n", session.EnumProperties(1000).Count())
	walkProperties(session.EnumProperties(1000), batch)

	fmt.Printf("bound breakpoints in main.go (%d):\n", session.EnumBoundBreakpoints("main.go").Count())
	walkBreakpoints(session.EnumBoundBreakpoints("main.go"), batch)

	fmt.Printf("code contexts at main.go:42 (%d):\n", session.EnumCodeContexts("main.go", 42).Count())
	walkCodeContexts(session.EnumCodeContexts("main.go", 42), batch)
}

func walkPrograms(e debug.ProgramsEnum, batch int) {
	buf := make([]*debug.Program, batch)
	for {
		n, st := e.Next(batch, buf)
		for _, p := range buf[:n] {
			fmt.Printf("  %s (%s)\n", p.DisplayName(), p.ID)
		}
		if st == enum.StatusPartial {
			return
		}
	}
}

func walkThreads(e debug.ThreadsEnum, batch int) {
	buf := make([]debug.ThreadHandle, batch)
	for {
		n, st := e.Next(batch, buf)
		for _, t := range buf[:n] {
			fmt.Printf("  #%d %s [%s]\n", t.ThreadID(), t.ThreadName(), t.State())
		}
		if st == enum.StatusPartial {
			return
		}
	}
}

func walkModules(e debug.ModulesEnum, batch int) {
	buf := make([]debug.ModuleHandle, batch)
	for {
		n, st := e.Next(batch, buf)
		for _, m := range buf[:n] {
			fmt.Printf("  %s (%s, symbols %s)\n", m.ModuleName(), m.ModulePath(), m.Symbols())
		}
		if st == enum.StatusPartial {
			return
		}
	}
}

func walkFrames(e debug.FramesEnum, batch int) {
	buf := make([]debug.FrameInfo, batch)
	for {
		n := batch
		st := e.Next(buf, &n)
		for _, f := range buf[:n] {
			fmt.Printf("  %s at %s\n", f.FuncName, f.FormatLocation())
		}
		if st == enum.StatusPartial {
			return
		}
	}
}

func walkProperties(e debug.PropertiesEnum, batch int) {
	buf := make([]debug.PropertyInfo, batch)
	for {
		n := batch
		st := e.Next(buf, &n)
		for _, p := range buf[:n] {
			fmt.Printf("  %s %s = %s\n", p.Type, p.FullName, p.Value)
		}
		if st == enum.StatusPartial {
			return
		}
	}
}

func walkBreakpoints(e debug.BoundBreakpointsEnum, batch int) {
	buf := make([]*debug.BoundBreakpoint, batch)
	for {
		n := batch
		st := e.Next(buf, &n)
		for _, b := range buf[:n] {
			fmt.Printf("  %s verified=%v\n", b.FormatLocation(), b.Verified)
		}
		if st == enum.StatusPartial {
			return
		}
	}
}

func walkCodeContexts(e debug.CodeContextsEnum, batch int) {
	buf := make([]*debug.CodeContext, batch)
	for {
		n, st := e.Next(batch, buf)
		for _, c := range buf[:n] {
			fmt.Printf("  %s (0x%08x)\n", c.FormatLocation(), c.Address)
		}
		if st == enum.StatusPartial {
			return
		}
	}
}
