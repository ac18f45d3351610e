// Package interp is the host adapter: the one piece of this module a
// surrounding application (a REPL, an IDE, a test harness) talks to. It
// drives the lexer/parser/evaluator pipeline end to end and reduces a
// whole program to an ordered slice of OutputLines, the way the
// teacher's swatcl.Interpreter.Evaluate reduces a Tcl script to a single
// result but logs its own lifecycle along the way via setupLogging.
package interp

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"time"

	"github.com/nfiedler-labs/lumen/eval"
	"github.com/nfiedler-labs/lumen/object"
	"github.com/nfiedler-labs/lumen/parser"
)

// Kind tags the role an OutputLine plays in the host's transcript.
type Kind int

const (
	Value Kind = iota
	Error
	Info
	Time
)

func (k Kind) String() string {
	switch k {
	case Value:
		return "value"
	case Error:
		return "error"
	case Info:
		return "info"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

// OutputLine is one entry in the transcript Run returns: a successful
// top-level value, an error, an informational echo, or the trailing
// timing summary.
type OutputLine struct {
	Kind Kind
	Text string
}

// Session wraps one eval.Interpreter together with the host-visible
// knobs: where print output goes, and where lifecycle messages are
// logged. A Session is not safe for concurrent use, matching the
// single eval.Interpreter it owns.
type Session struct {
	in      *eval.Interpreter
	Logger  *log.Logger
	exprRun int
}

// NewSession builds a fresh interpreter whose root environment holds only
// the builtins, with a print sink that writes to the process's standard
// output. Lifecycle messages go to the standard logger until
// ConfigureLogging redirects them; that does not affect print output.
func NewSession() *Session {
	s := &Session{in: eval.NewInterpreter(), Logger: log.Default()}
	s.in.Output = func(text string) { fmt.Print(text) }
	return s
}

// SetPrintSink installs the callback that receives everything the
// `print` builtin writes, replacing the default of writing straight to
// the process's standard output. This is how a host captures printed
// side effects instead of letting them escape to its own stdout.
func (s *Session) SetPrintSink(sink func(text string)) {
	s.in.Output = sink
}

// Run lexes, parses, and evaluates source, returning the transcript
// described in the host adapter's interface: a single error line on a
// lex/parse failure with no evaluation attempted; otherwise one line
// per top-level form (errors surfaced, nil results suppressed), plus a
// trailing time line.
func (s *Session) Run(source string) []OutputLine {
	start := time.Now()
	s.Logger.Printf("run: %d bytes of source", len(source))

	exprs, errs := parser.ParseProgram(source)
	if len(errs) > 0 {
		s.Logger.Printf("run: parse failed with %d error(s)", len(errs))
		return []OutputLine{{Kind: Error, Text: errs[0].Error()}}
	}

	lines := make([]OutputLine, 0, len(exprs)+1)
	count := 0
	for _, x := range exprs {
		v, err := s.in.Eval(x, s.in.Root)
		count++
		if err != nil {
			s.Logger.Printf("run: expression %d errored: %v", count, err)
			lines = append(lines, OutputLine{Kind: Error, Text: err.Error()})
			continue
		}
		if v == object.Nil {
			continue
		}
		lines = append(lines, OutputLine{Kind: Value, Text: object.Format(v, true)})
	}

	s.exprRun += count
	elapsed := time.Since(start)
	lines = append(lines, OutputLine{
		Kind: Time,
		Text: fmt.Sprintf("%d expression(s) in %.2fms", count, float64(elapsed.Microseconds())/1000.0),
	})
	return lines
}

// ConfigureLogging points the session's logger at a file under the
// given directory (defaulting to ~/.lumen when dir is empty), matching
// the teacher's own setupLogging/logSysInfo shape: a banner header and
// a handful of environment facts are recorded at the start of every
// session, for diagnosability when something goes wrong later.
func (s *Session) ConfigureLogging(dir string) error {
	if dir == "" {
		usr, err := user.Current()
		if err != nil {
			return err
		}
		dir = filepath.Join(usr.HomeDir, ".lumen")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	logfile, err := os.OpenFile(filepath.Join(dir, "messages.log"), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	s.Logger = log.New(logfile, "", log.LstdFlags)
	s.logSysInfo()
	return nil
}

func (s *Session) logSysInfo() {
	header := "-------------------------------------------------------------------------------"
	s.Logger.Println(header)
	s.Logger.Printf("Log Session: %s", time.Now().Format(time.ANSIC))
	s.Logger.Printf("Go Version = %s", runtime.Version())
	if pwd, err := os.Getwd(); err == nil {
		s.Logger.Printf("Current Directory = %s", pwd)
	}
	for _, key := range []string{"SHELL", "TERM"} {
		if val := os.Getenv(key); val != "" {
			s.Logger.Printf("%s = %s", key, val)
		}
	}
	s.Logger.Println(header)
}
