package pathcheck

// MissingArgWarner describes a path argument before its value is known. It
// makes the "argument required" message when the argument is absent and
// binds checkers once a value is supplied.
type MissingArgWarner struct {
	argName string
	ext     Extension
}

func NewMissingArgWarner(argName string, ext Extension) MissingArgWarner {
	return MissingArgWarner{argName: argName, ext: ext}
}

func (w MissingArgWarner) ArgName() string {
	return w.argName
}

func (w MissingArgWarner) Extension() Extension {
	return w.ext
}

func (w MissingArgWarner) MakeChecker(path string) ArgPathChecker {
	return NewArgPathChecker(path, w.ext, w.argName)
}

func (w MissingArgWarner) MakePathChecker(path string) PathChecker {
	return NewPathChecker(path, w.ext)
}

func (w MissingArgWarner) MakeMissingArgMsg() string {
	return missingArgMsg(w.argName, w.ext)
}

// MissingArgError wraps MakeMissingArgMsg in an *ArgError for callers that
// report an absent argument as an error.
func (w MissingArgWarner) MissingArgError() error {
	return &ArgError{
		ArgName: w.argName,
		Kind:    ErrMissingArgument,
		msg:     w.MakeMissingArgMsg(),
	}
}
