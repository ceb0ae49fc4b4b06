package commands

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Soumodip04/MindScope-sub001/internal/core/scenario"
)

// stdinArg selects standard input as the script source.
const stdinArg = "-"

// loadScript resolves the script named by arg. An empty arg selects the
// built-in demo, "-" reads from stdin and anything else is a path or a name
// in the configured scenario library.
func (f *Flags) loadScript(arg string, stdin io.Reader) (*scenario.Script, error) {
	switch arg {
	case "":
		return scenario.Demo(), nil
	case stdinArg:
		if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			return nil, fmt.Errorf("no input provided (stdin is a terminal); pass a script path or pipe a script")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return scenario.Parse(data)
	}

	path, err := scenario.Resolve(f.cfg().Scenarios.Dir, arg)
	if err != nil {
		return nil, err
	}
	return scenario.Load(path)
}
