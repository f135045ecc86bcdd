// Package launch reads debug launch profiles from a workspace
// launch.json file.
//
// The file follows the common editor layout: a top-level "configurations"
// array of named profiles. Unknown fields are ignored so profiles written
// for other tools keep working.
package launch

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Request selects how a profile starts debugging.
type Request int

const (
	// RequestLaunch starts the program under the debugger.
	RequestLaunch Request = iota
	// RequestAttach attaches to an already-running process.
	RequestAttach
)

// String returns a string representation of the request kind.
func (r Request) String() string {
	switch r {
	case RequestLaunch:
		return "launch"
	case RequestAttach:
		return "attach"
	default:
		return "unknown"
	}
}

// Profile is one debug launch configuration.
type Profile struct {
	// Name is the display name of the profile.
	Name string

	// Type is the adapter type (e.g. "go", "python").
	Type string

	// Request is how the profile starts debugging.
	Request Request

	// Program is the path of the program to run or attach to.
	Program string

	// Args are the program arguments.
	Args []string

	// Cwd is the working directory for the program.
	Cwd string

	// Pid is the process to attach to, for attach profiles.
	Pid int

	// StopOnEntry stops at the program entry point.
	StopOnEntry bool
}

// Load reads the profiles from a launch.json file. A missing file is not
// an error and returns nil profiles, matching the behavior of the other
// workspace file loaders.
func Load(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read launch file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse extracts the profiles from launch.json contents.
func Parse(data []byte) ([]Profile, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid launch file: not valid JSON")
	}

	configs := gjson.GetBytes(data, "configurations")
	if !configs.Exists() {
		return nil, nil
	}
	if !configs.IsArray() {
		return nil, fmt.Errorf("invalid launch file: configurations is not an array")
	}

	var profiles []Profile
	var parseErr error
	configs.ForEach(func(_, cfg gjson.Result) bool {
		p, err := parseProfile(cfg)
		if err != nil {
			parseErr = err
			return false
		}
		profiles = append(profiles, p)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return profiles, nil
}

// parseProfile converts one configurations entry.
func parseProfile(cfg gjson.Result) (Profile, error) {
	name := cfg.Get("name").String()
	if name == "" {
		return Profile{}, fmt.Errorf("invalid launch profile: missing name")
	}

	p := Profile{
		Name:        name,
		Type:        cfg.Get("type").String(),
		Program:     cfg.Get("program").String(),
		Cwd:         cfg.Get("cwd").String(),
		Pid:         int(cfg.Get("processId").Int()),
		StopOnEntry: cfg.Get("stopOnEntry").Bool(),
	}

	switch req := cfg.Get("request").String(); req {
	case "", "launch":
		p.Request = RequestLaunch
	case "attach":
		p.Request = RequestAttach
	default:
		return Profile{}, fmt.Errorf("launch profile %s: unknown request %q", name, req)
	}

	for _, arg := range cfg.Get("args").Array() {
		p.Args = append(p.Args, arg.String())
	}

	if p.Request == RequestLaunch && p.Program == "" {
		return Profile{}, fmt.Errorf("launch profile %s: missing program", name)
	}
	return p, nil
}

// Find returns the profile with the given name.
func Find(profiles []Profile, name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
