package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// execKeyword introduces the command to run.
const execKeyword = "exec"

// splitExec separates envctl's own arguments from an "exec COMMAND ARGS..."
// tail. The tail is never seen by the flag parser, so command arguments that
// look like options reach the child untouched.
//
// The flag sets tell which options consume the following argument, so in
// "-a exec" the word is a path, not the keyword. After "--" nothing is
// treated as the keyword.
func splitExec(args []string, flagSets ...*pflag.FlagSet) (head, tail []string, found bool) {
	takesValue := func(f *pflag.Flag) bool {
		return f != nil && f.NoOptDefVal == ""
	}
	long := func(name string) bool {
		for _, fs := range flagSets {
			if f := fs.Lookup(name); f != nil {
				return takesValue(f)
			}
		}
		return false
	}
	short := func(name string) bool {
		for _, fs := range flagSets {
			if f := fs.ShorthandLookup(name); f != nil {
				return takesValue(f)
			}
		}
		return false
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args, nil, false
		case arg == execKeyword:
			return args[:i], args[i+1:], true
		case strings.HasPrefix(arg, "--"):
			name, _, inline := strings.Cut(arg[2:], "=")
			if !inline && long(name) {
				i++
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			// A cluster like -vva consumes the next argument only when the
			// value-taking shorthand is its last letter.
			for j := 1; j < len(arg); j++ {
				if short(arg[j : j+1]) {
					if j == len(arg)-1 {
						i++
					}
					break
				}
			}
		}
	}
	return args, nil, false
}
