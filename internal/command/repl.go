package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lawnchairsociety/delver/internal/logger"
)

// Prompt is written before each line of input
const Prompt = "> "

// Run reads commands from in until the player quits, the input ends or ctx
// is cancelled. Output for each command goes to out.
func Run(ctx context.Context, s *Session, in io.Reader, out io.Writer) error {
	if banner := s.helpTopics().Banner(); banner != "" {
		fmt.Fprintf(out, "%s\n\n", banner)
	}
	fmt.Fprintf(out, "%s\n\n", describeRoom(s.Game))

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		cmd := ParseCommand(line)
		logger.Debug("command", "name", cmd.Name, "args", cmd.Args)
		if resp := cmd.Execute(s); resp != "" {
			fmt.Fprintf(out, "%s\n\n", resp)
		}
		if s.Quit {
			return nil
		}
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
