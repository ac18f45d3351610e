// Command lumen is a thin CLI host for package interp: a file runner and
// an interactive REPL. It carries no language semantics of its own —
// every form it evaluates goes through interp.Session.Run the same way
// a future browser IDE host would call it.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/nfiedler-labs/lumen/interp"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
  _
 | |_   _ _ __ ___   ___ _ __
 | | | | | '_ ' _ \ / _ \ '_ \
 | | |_| | | | | | |  __/ | | |
 |_|\__,_|_| |_| |_|\___|_| |_|
`

const line = "----------------------------------------------------------------"

func main() {
	file := flag.String("file", "", "run a lumen source file instead of starting the REPL")
	logDir := flag.String("log-dir", "", "directory for messages.log (default ~/.lumen)")
	flag.Parse()

	session := interp.NewSession()
	if err := session.ConfigureLogging(*logDir); err != nil {
		redColor.Fprintf(os.Stderr, "could not set up logging: %v\n", err)
		os.Exit(1)
	}

	if *file != "" {
		runFile(session, *file)
		return
	}
	repl(session)
}

func runFile(session *interp.Session, path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s: %v\n", path, err)
		os.Exit(1)
	}
	printLines(session.Run(string(source)))
}

// repl is the interactive read-eval-print loop, structured the way the
// teacher's own repl()/lispRepl() functions are: a banner, a prompt, a
// loop reading one line at a time, and a handful of ':'-prefixed
// meta-commands alongside ordinary source lines.
func repl(session *interp.Session) {
	printBanner()

	rl, err := readline.New("lumen> ")
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		input, err := rl.Readline()
		if err != nil {
			fmt.Println("Goodbye")
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ":exit" {
			fmt.Println("Goodbye")
			return
		}
		if input == ":help" {
			cyanColor.Println("Enter a lumen expression and press enter. Use :exit to quit.")
			continue
		}
		rl.SaveHistory(input)
		printLines(session.Run(input))
	}
}

func printBanner() {
	blueColor.Println(line)
	greenColor.Println(banner)
	blueColor.Println(line)
	cyanColor.Println("Welcome to lumen. Type ':help' for usage, ':exit' to quit.")
	blueColor.Println(line)
}

func printLines(lines []interp.OutputLine) {
	for _, l := range lines {
		switch l.Kind {
		case interp.Error:
			redColor.Println(l.Text)
		case interp.Time:
			blueColor.Println(l.Text)
		default:
			yellowColor.Println(l.Text)
		}
	}
}
