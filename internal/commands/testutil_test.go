package commands

import (
	"bytes"
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Soumodip04/MindScope-sub001/internal/core/config"
)

// testApp builds a root command with output captured in buf. Exit errors are
// returned to the caller instead of terminating the test binary.
func testApp(buf *bytes.Buffer, register func(*cli.Command) *cli.Command) *cli.Command {
	app := &cli.Command{
		Name:           "mindscope",
		Writer:         buf,
		ErrWriter:      buf,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	return register(app)
}

func testFlags() *Flags {
	cfg := config.DefaultConfig()
	cfg.Scenarios.Dir = "testdata"
	return &Flags{Config: &cfg}
}
