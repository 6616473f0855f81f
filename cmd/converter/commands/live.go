package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"go-currency-converter/debounce"
)

func liveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live <from> <to>",
		Short: "Convert amounts typed on stdin, one per line, as typing settles",
		Long: "Reads amounts from stdin, one per line. A conversion runs once no new line\n" +
			"has arrived for the debounce quiet period; only the latest amount is converted.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := parseCode(args[0]), parseCode(args[1])
			ctx := cmd.Context()

			// output is written from the debouncer's timer goroutine as well as this one
			var lock sync.Mutex
			out := &lockedWriter{w: cmd.OutOrStdout(), lock: &lock}

			d := debounce.New(a.cfg.DebounceQuietPeriod)
			defer d.Stop()

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				amount := parseAmount(line)
				d.Trigger(func() {
					if err := a.convert(ctx, out, amount, from, to); err != nil {
						fmt.Fprintf(out, "Error: %v\n", err)
					}
				})
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			// input is closed, so nothing can supersede the pending conversion
			if !d.Flush() {
				level.Debug(a.logger).Log("msg", "no pending conversion at end of input")
			}
			return nil
		},
	}
	return cmd
}

// lockedWriter serialises writes from several goroutines
type lockedWriter struct {
	w    io.Writer
	lock *sync.Mutex
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.w.Write(p)
}
