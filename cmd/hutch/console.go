package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

func newConsoleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "console",
		Aliases: []string{"c"},
		Short:   "Run several commands from an interactive console",
		Long: `Console reads one command per line and dispatches it exactly as if it
had been passed on the command line. "quit" or end of input leaves the
console; errors are printed and the console continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// One buffered reader, shared with every dispatched subcommand.
			// The console consumes exactly one line per iteration, so a
			// subcommand that reads input (quickadd) sees the lines the
			// console has not touched yet instead of a drained stream.
			in := bufio.NewReader(cmd.InOrStdin())

			for {
				fmt.Fprint(out, "hutch> ")
				line, readErr := in.ReadString('\n')

				words, err := shellwords.Parse(strings.TrimRight(line, "\r\n"))
				switch {
				case err != nil:
					fmt.Fprintf(out, "Error: %v\n", err)
				case len(words) == 0:
					// Blank line.
				case words[0] == "quit" || words[0] == "exit":
					return nil
				case words[0] == "console" || words[0] == "c":
					// Already in the console.
				default:
					// A fresh command tree per line keeps flag state from
					// one command out of the next.
					sub := newRootCmd()
					sub.SetArgs(append(words, a.storeFlags()...))
					sub.SetIn(in)
					sub.SetOut(out)
					sub.SetErr(cmd.ErrOrStderr())

					if err := sub.Execute(); err != nil {
						fmt.Fprintf(out, "Error: %v\n", err)
					}
				}

				if readErr != nil {
					fmt.Fprintln(out)
					if errors.Is(readErr, io.EOF) {
						return nil
					}
					return readErr
				}
			}
		},
	}
}
