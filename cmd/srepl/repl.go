package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/linkset/calc"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	env  *calc.Env
	repl *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a statement, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	switch line {
	case "quit":
		return true, nil
	case "vars":
		intp.printVars()
		return false, nil
	}
	result, err := intp.env.Exec(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	intp.printResult(result)
	return false, nil
}

func (intp *Intp) printResult(result calc.Result) {
	if result.Note != "" {
		pterm.Info.Println(result.Note)
	}
	if result.IsEmpty() {
		return
	}
	pterm.Info.Println(result.String())
	if result.Product && len(result.Pairs) > 0 {
		root := pterm.NewTreeFromLeveledList(leveledPairs(result.Pairs))
		pterm.DefaultTree.WithRoot(root).Render()
	}
	if len(result.Visits) > 0 {
		pterm.DefaultTable.WithHasHeader().WithData(visitsTable(result.Visits)).Render()
	}
}

func (intp *Intp) printVars() {
	names := intp.env.Names()
	if len(names) == 0 {
		pterm.Info.Println("no variables")
		return
	}
	for _, name := range names {
		r, _ := intp.env.Lookup(name)
		pterm.Info.Println(name + " = " + r.String())
	}
}

// leveledPairs groups pairs by their first component. Pairs of a product are
// ordered by first component, thus each group is a run of pairs.
func leveledPairs(pairs []calc.IntPair) pterm.LeveledList {
	ll := pterm.LeveledList{}
	for i, p := range pairs {
		if i == 0 || pairs[i-1].First != p.First {
			ll = append(ll, pterm.LeveledListItem{
				Level: 0,
				Text:  fmt.Sprint(p.First),
			})
		}
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprint(p.Second),
		})
	}
	return ll
}

// visitsTable lists operands with their keys and visitation counts.
func visitsTable(visits []calc.Visitation) pterm.TableData {
	data := pterm.TableData{{"operand", "keys", "visits"}}
	for _, v := range visits {
		data = append(data, []string{v.Operand, joinInts(v.Keys), joinInts(v.Counts)})
	}
	return data
}

func joinInts(ints []int) string {
	s := make([]string, len(ints))
	for i, n := range ints {
		s[i] = fmt.Sprint(n)
	}
	return strings.Join(s, " ")
}
