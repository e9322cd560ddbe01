package config

import (
	"github.com/arthur-debert/envctl/pkg/pathset"
)

// DefaultVariable is edited when neither the command line nor the
// configuration names a variable.
const DefaultVariable = "PATH"

// Config is the merged configuration.
type Config struct {
	// Variable is the variable edited when none is given on the command line.
	Variable string `koanf:"variable"`
	// Variables holds standing rules keyed by variable name.
	Variables map[string]Rules `koanf:"variables"`

	// Source is the user file that was loaded, if any.
	Source string `koanf:"-"`
}

// Rules are standing edits for one variable.
type Rules struct {
	Prepend []string `koanf:"prepend"`
	Append  []string `koanf:"append"`
	Remove  []string `koanf:"remove"`
}

// RulesFor returns the rules configured for name, or empty rules.
func (c *Config) RulesFor(name string) Rules {
	if c == nil {
		return Rules{}
	}
	return c.Variables[name]
}

// Request combines configured rules with edits given on the command line.
//
// Command line edits wrap the configured ones: they are prepended before
// and appended after the configured entries, so they end up outermost.
// Removals are the union of both.
func (r Rules) Request(current string, prepend, appendPaths, remove []string) pathset.Request {
	req := pathset.Request{
		Current: current,
		Prepend: concat(prepend, r.Prepend),
		Append:  concat(r.Append, appendPaths),
		Remove:  pathset.NewRemovalSet(r.Remove...),
	}
	req.Remove.Add(remove...)
	return req
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
