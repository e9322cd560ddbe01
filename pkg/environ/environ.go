// Package environ abstracts the process environment so that callers can read
// variables and build child environments without touching the real one.
package environ

import (
	"os"
	"sort"
	"strings"
)

// Accessor reads environment variables.
type Accessor interface {
	// Lookup returns the value of name and whether it is set.
	Lookup(name string) (string, bool)
	// Environ returns the environment as "key=value" pairs.
	Environ() []string
}

// OS reads the real process environment.
type OS struct{}

func (OS) Lookup(name string) (string, bool) { return os.LookupEnv(name) }

func (OS) Environ() []string { return os.Environ() }

// Map is an in-memory environment, mostly for tests.
type Map map[string]string

func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Environ returns the pairs sorted by key.
func (m Map) Environ() []string {
	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return pairs
}

// Get returns the value of name, or "" when it is unset.
func Get(a Accessor, name string) string {
	v, _ := a.Lookup(name)
	return v
}

// With returns a copy of base where name is set to value. Existing entries
// for name are dropped; base is not modified.
//
// Names are compared exactly. On platforms with case-insensitive variable
// names a differently cased duplicate may survive; os/exec keeps the last
// entry, which is the one added here.
func With(base []string, name, value string) []string {
	env := make([]string, 0, len(base)+1)
	prefix := name + "="
	for _, kv := range base {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		env = append(env, kv)
	}
	return append(env, prefix+value)
}

// ValidName reports whether name can be used as a variable name: non-empty,
// without '=' or NUL.
func ValidName(name string) bool {
	return name != "" && !strings.ContainsAny(name, "=\x00")
}
