/*
Package input reads command data from arguments, files or stdin.
*/
package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/term"
)

// Stdin is the reader used when no data is given in arguments. If it's a
// terminal, nothing is read.
var Stdin io.Reader = os.Stdin

// ErrNoInput is returned when there is nothing to read the data from.
var ErrNoInput = errors.New("no input data: pass it as an argument, with --in or via stdin")

// InFlag is a flag for reading data from a file.
var InFlag = cli.StringFlag{
	Name:  "in, i",
	Usage: "read data from the given file instead of the argument",
}

// Read returns the command data: the only argument, the contents of the file
// given with --in or all of Stdin.
func Read(ctx *cli.Context) ([]byte, error) {
	if in := ctx.String("in"); in != "" {
		if ctx.NArg() != 0 {
			return nil, errors.New("data can't be given both in a file and as an argument")
		}
		b, err := os.ReadFile(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return b, nil
	}
	switch ctx.NArg() {
	case 0:
		return ReadAll()
	case 1:
		return []byte(ctx.Args().First()), nil
	default:
		return nil, fmt.Errorf("expected one argument, got %d", ctx.NArg())
	}
}

// ReadAll reads all of Stdin unless it's an interactive terminal.
func ReadAll() ([]byte, error) {
	if f, ok := Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, ErrNoInput
	}
	return io.ReadAll(Stdin)
}
