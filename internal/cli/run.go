package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"bookstore/internal/command"
)

// execIface is the minimal command surface the loop needs. The real
// command.Processor satisfies it; tests can provide a lightweight stub.
type execIface interface {
	Execute(ctx context.Context, line string) command.Result
}

// runLoop reads one command per line from in, dispatches it, and writes
// the reply (if any) as one line to out. A nil promptW disables the
// prompt. The loop ends on end-of-input or on a terminating command;
// persistence already happened inside each command, so nothing is
// flushed here.
func runLoop(ctx context.Context, proc execIface, in io.Reader, out, promptW io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if promptW != nil {
			fmt.Fprint(promptW, "bookstore> ")
		}
		if !scanner.Scan() {
			break
		}
		res := proc.Execute(ctx, scanner.Text())
		if res.HasReply {
			fmt.Fprintln(out, res.Reply)
		}
		if res.Quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}
