package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/linkset/calc"
	"github.com/npillmayer/linkset/sets"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI ("S.REPL"), where users may enter statements
// on ordered sets. S.REPL will evaluate each statement and print out the result.
//
// Please refer to packages "sets" and "calc".
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	mode := flag.String("mode", "copy", "Kind of sets [copy|inplace]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to S.REPL")   // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	kind, err := setKind(*mode)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if _, err := calc.DefaultLexer(); err != nil { // compile the DFA up front
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	level := traceLevel(*tlevel)
	tracer().SetTraceLevel(level) // now set the user supplied level
	gtrace.SyntaxTracer.SetTraceLevel(level)
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	tracer().Infof("Input argument is \"%s\"", input)
	//
	// set up REPL
	repl, err := readline.New("srepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{
		env:  calc.NewEnv(kind),
		repl: repl,
	}
	//
	// load an init file and start receiving statements
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.env.PushScope("repl")          // keep init definitions apart
	if input != "" {
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setKind(mode string) (sets.Kind, error) {
	stmt, err := calc.Parse("mode " + mode)
	if err != nil {
		return sets.AsCopy, err
	}
	return stmt.Mode, nil
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
