package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"hop.computer/dlist/flags"
	"hop.computer/dlist/render"
	"hop.computer/dlist/scenario"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func run(args []string, out *os.File) error {
	f, err := flags.ParseArgs(args)
	if err != nil {
		return err
	}

	tty := isatty.IsTerminal(out.Fd())
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   tty && !f.NoColor,
		DisableColors: f.NoColor,
	})
	if f.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	sc, err := flags.LoadScenarioFromFlags(f)
	if err != nil {
		return err
	}
	if sc.Trace {
		logrus.SetLevel(logrus.TraceLevel)
	}
	logrus.Debugf("loaded scenario %q with %d steps", sc.Name, len(sc.Steps))

	r := scenario.NewRunner(sc, logrus.NewEntry(logrus.StandardLogger()))
	report, err := r.Run()
	if report != nil {
		printReport(out, report)
	}
	if err != nil {
		return err
	}

	if sc.Render {
		width := f.Width
		if width == 0 && tty {
			if w, _, err := term.GetSize(int(out.Fd())); err == nil {
				width = w
			}
		}
		opts := render.Options{Width: width, Plain: !tty || f.NoColor}
		fmt.Fprintln(out, render.Line(r.List().Forward(), opts))
	}
	return nil
}

func printReport(w io.Writer, report *scenario.Report) {
	fmt.Fprintf(w, "scenario %s\n", report.Name)
	for _, s := range report.Steps {
		fmt.Fprintln(w, s.String())
	}
	if report.Final != nil {
		fmt.Fprintf(w, "final %q\n", report.Final)
	}
}
