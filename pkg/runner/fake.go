package runner

import (
	"context"
)

// Call is one invocation seen by a FakeCommandRunner.
type Call struct {
	Args    []string
	Options Options
}

// FakeCommandRunner records invocations instead of spawning processes. Results
// and Errs are replayed by call index; past their end the zero Result is
// returned with a nil error.
type FakeCommandRunner struct {
	Calls   []Call
	Results []*Result
	Errs    []error
}

var _ CommandRunner = &FakeCommandRunner{}

func (f *FakeCommandRunner) RunCommand(ctx context.Context, args []string, opts Options) (*Result, error) {
	i := len(f.Calls)
	f.Calls = append(f.Calls, Call{Args: append([]string(nil), args...), Options: opts})

	result := &Result{}
	if i < len(f.Results) && f.Results[i] != nil {
		result = f.Results[i]
	}
	var err error
	if i < len(f.Errs) {
		err = f.Errs[i]
	}
	return result, err
}

// LastArgs returns the argument list of the most recent call, or nil.
func (f *FakeCommandRunner) LastArgs() []string {
	if len(f.Calls) == 0 {
		return nil
	}
	return f.Calls[len(f.Calls)-1].Args
}
