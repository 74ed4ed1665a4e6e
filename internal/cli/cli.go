// Package cli implements the slist command line tool: each command
// loads a list of integers from a JSON (or JSONC) file, applies one
// list operation, prints the result as JSON, and optionally writes
// the modified list back to the file.
package cli

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
	"go.uber.org/zap"

	"github.com/tychoish/slist"
	"github.com/tychoish/slist/ers"
)

// ErrNoInput is returned by commands that need a list when no input
// file was named.
const ErrNoInput = ers.Error("no input file")

// ErrRepeatedStdin is returned when standard input is named as more
// than one input.
const ErrRepeatedStdin = ers.Error("standard input named more than once")

// stdinPath names standard input as the input file.
const stdinPath = "-"

type app struct {
	fs      afero.Fs
	logger  *zap.Logger
	file    string
	write   bool
	verbose bool
}

// NewRootCommand builds the command tree. Files are read and written
// through fs. When logger is nil, a zap production logger (or a
// development logger, with --verbose) is built once the flags are
// parsed.
func NewRootCommand(fs afero.Fs, logger *zap.Logger) *cobra.Command {
	a := &app{fs: fs, logger: logger}

	root := &cobra.Command{
		Use:           "slist",
		Short:         "apply singly linked list operations to JSON integer arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if a.logger != nil {
				return nil
			}

			var err error
			if a.verbose {
				a.logger, err = zap.NewDevelopment()
			} else {
				a.logger, err = zap.NewProduction()
			}
			return errors.Wrap(err, "build logger")
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.file, "file", "f", "", "JSON array to operate on, or - for standard input")
	flags.BoolVar(&a.write, "write", false, "write the modified list back to the input file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log with the development logger")

	root.AddCommand(
		a.showCommand(),
		a.infoCommand(),
		a.sortCommand(),
		a.splitCommand(),
		a.mergeCommand(),
		a.searchCommand(),
		a.locateCommand(),
	)
	root.AddCommand(a.pushCommands()...)
	root.AddCommand(a.popCommands()...)

	return root
}

// load reads and decodes the list named by path.
func (a *app) load(cmd *cobra.Command, path string) (*slist.List[int64], error) {
	var (
		raw []byte
		err error
	)

	switch path {
	case "":
		return nil, ErrNoInput
	case stdinPath:
		raw, err = io.ReadAll(cmd.InOrStdin())
	default:
		raw, err = afero.ReadFile(a.fs, path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read list")
	}

	list := &slist.List[int64]{}
	if err = json.Unmarshal(jsonc.ToJSON(raw), list); err != nil {
		return nil, errors.Wrapf(err, "decode list %q", path)
	}

	a.logger.Debug("loaded list", zap.String("path", path), zap.Int("size", list.Len()))
	return list, nil
}

// store writes the list back to the input file when --write is set.
// Lists read from standard input are never written.
func (a *app) store(list *slist.List[int64]) error {
	if !a.write || a.file == stdinPath {
		return nil
	}

	out, err := json.Marshal(list)
	if err != nil {
		return errors.Wrap(err, "encode list")
	}
	if err = afero.WriteFile(a.fs, a.file, append(out, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "write list")
	}

	a.logger.Info("wrote list", zap.String("path", a.file), zap.Int("size", list.Len()))
	return nil
}

// flush syncs the logger. Commands defer it, so that failing
// commands flush their logs too.
func (a *app) flush() { _ = a.logger.Sync() }

func emit(cmd *cobra.Command, value any) error {
	return errors.Wrap(json.NewEncoder(cmd.OutOrStdout()).Encode(value), "encode output")
}

type operation func(list *slist.List[int64], args []string) (any, error)

// apply loads the input list, runs op, stores the list, and prints
// the result of op. A nil result prints the list itself. Panics from
// op are returned as errors.
func (a *app) apply(name string, op operation) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.flush()

		list, err := a.load(cmd, a.file)
		if err != nil {
			return err
		}

		var (
			result any
			opErr  error
		)
		if err = ers.WithRecoverCall(func() { result, opErr = op(list, args) }); err == nil {
			err = opErr
		}
		if err != nil {
			a.logFailure(name, err)
			return errors.Wrap(err, name)
		}
		if err = a.store(list); err != nil {
			return err
		}

		a.logger.Debug("applied operation", zap.String("op", name), zap.Int("size", list.Len()))
		if result == nil {
			result = list
		}
		return emit(cmd, result)
	}
}

// logFailure logs rejected operations (empty lists, bad positions) at
// debug level, and everything else as an error.
func (a *app) logFailure(name string, err error) {
	switch {
	case ers.IsInvariantViolation(err):
		a.logger.Error("list invariant violated", zap.String("op", name), zap.Error(err))
	case ers.Is(err, slist.ErrEmptyContainer, slist.ErrIndexOutOfRange, slist.ErrPositionNotFound):
		a.logger.Debug("operation rejected", zap.String("op", name), zap.Error(err))
	default:
		a.logger.Error("operation failed", zap.String("op", name), zap.Error(err))
	}
}
