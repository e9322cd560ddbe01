package cli

// Command descriptions
const (
	MsgRootUse   = "envctl [VARIABLE] [-a PATH]... [-p PATH]... [-r PATH]... [exec COMMAND [ARGS...]]"
	MsgRootShort = "Edit PATH-like environment variables"
	MsgRootLong  = `envctl edits a colon-delimited variable such as PATH.

It prepends and appends segments, removes segments, drops empty segments and
collapses duplicates while keeping the first occurrence of each one. Segments
keep the order prepend, current value, append.

Without "exec" the result is printed to stdout:

  export PATH="$(envctl -p ~/bin -r .)"

With "exec" the command runs with the edited variable in its environment.
Everything after "exec" is passed to the command untouched, so "exec" must
come after all envctl options:

  envctl MANPATH -a /opt/tool/man exec man tool

VARIABLE defaults to PATH, or to the configured variable.`
)

// Flag descriptions
const (
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagAppend   = "Append this path to the variable (repeatable)"
	MsgFlagPrepend  = "Prepend this path to the variable (repeatable)"
	MsgFlagRemove   = "Remove this path from the variable (repeatable)"
	MsgFlagValue    = "Edit this string instead of the variable's current value"
	MsgFlagConfig   = "Read configuration from this file"
	MsgFlagNoConfig = "Ignore configuration files"
)

// Error messages
const (
	MsgErrorPrefix     = "Error: "
	MsgInvalidArgs     = "invalid arguments"
	MsgTooManyArgs     = "expected at most one VARIABLE, got %d arguments: %v"
	MsgInvalidVariable = "invalid variable name %q"
	MsgMissingCommand  = "exec requires a command"
	MsgConfigConflict  = "--config and --no-config cannot be used together"
	MsgVersionTemplate = "envctl version {{.Version}}\n  commit: %s\n  built:  %s\n"
)
