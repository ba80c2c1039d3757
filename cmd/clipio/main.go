package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/clipio-sh/clipio/pkg/clipboard"
	"github.com/clipio-sh/clipio/pkg/codepage"
)

var (
	verbosity int

	copyIn   bool
	copyOut  bool
	clearClp bool

	expand   bool
	collapse bool

	useACP  bool
	useOEM  bool
	useUTF8 bool
)

var cmd = &cobra.Command{
	Use:   "clipio",
	Short: "Bridge standard input/output and the system clipboard",
	Long: `clipio pipes text between a process's standard streams and the system
clipboard, converting character encodings and normalizing line endings
along the way.`,
	PersistentPreRun: logging,
	RunE:             run,
	SilenceUsage:     true,
	SilenceErrors:    true,
}

func main() {
	cmd.Flags().BoolVarP(&copyIn, "in", "i", false, "set clipboard from stdin")
	cmd.Flags().BoolVarP(&copyOut, "out", "o", false, "print clipboard contents to stdout")
	cmd.Flags().BoolVarP(&clearClp, "clear", "x", false, "delete clipboard contents")
	cmd.Flags().BoolVar(&expand, "crlf", false, "replace lone LF with CRLF before setting the clipboard")
	cmd.Flags().BoolVar(&collapse, "lf", false, "replace CRLF with LF before printing to stdout")
	cmd.Flags().BoolVar(&useACP, "acp", false, "assume the system ANSI code page on the stream side")
	cmd.Flags().BoolVar(&useOEM, "oem", false, "assume the system OEM code page on the stream side")
	cmd.Flags().BoolVar(&useUTF8, "utf8", false, "assume UTF-8 on the stream side (default)")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "how verbose to be, can use multiple")

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logging(cmd *cobra.Command, args []string) {
	level := slog.LevelWarn
	switch verbosity {
	case 0:
	case 1:
		level = slog.LevelInfo
	default: // 2+
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	})))
}

func run(cc *cobra.Command, args []string) error {
	direction, ok := pickDirection()
	if !ok {
		// malformed arguments print usage and still exit 0
		fmt.Fprint(cc.ErrOrStderr(), cc.UsageString())
		return nil
	}
	cp, ok := pickCodepage()
	if !ok {
		fmt.Fprint(cc.ErrOrStderr(), cc.UsageString())
		return nil
	}

	if direction == dirIn && isatty.IsTerminal(os.Stdin.Fd()) {
		slog.Info("reading standard input until EOF (ctrl-d to finish)")
	}

	a := &app{
		log:      slog.Default(),
		clip:     clipboard.System(),
		cp:       cp,
		expand:   expand,
		collapse: collapse,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
	}
	return a.run(direction)
}

// pickDirection requires exactly one of -i, -o, -x.
func pickDirection() (direction, bool) {
	var (
		d direction
		n int
	)
	if copyIn {
		d, n = dirIn, n+1
	}
	if copyOut {
		d, n = dirOut, n+1
	}
	if clearClp {
		d, n = dirClear, n+1
	}
	return d, n == 1
}

// pickCodepage allows at most one code-page flag. UTF-8 is the default.
func pickCodepage() (codepage.Codepage, bool) {
	var (
		cp = codepage.UTF8
		n  int
	)
	if useACP {
		cp, n = codepage.ANSI, n+1
	}
	if useOEM {
		cp, n = codepage.OEM, n+1
	}
	if useUTF8 {
		cp, n = codepage.UTF8, n+1
	}
	return cp, n <= 1
}
