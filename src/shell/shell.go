package shell

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Nigel2392/avltree/src/binarytree"
	"github.com/Nigel2392/avltree/src/logger"
	"github.com/jedib0t/go-pretty/v6/table"
)

// A line based shell driving a single tree of integer keys.
type Shell struct {
	// The tree commands run against.
	Tree binarytree.Tree[int]
	// Where commands are read from.
	in *bufio.Scanner
	// Where results are written to.
	out io.Writer
	// Print a prompt before every line.
	prompt bool
	// The logger to use.
	logger logger.Logger
}

// New creates a shell reading commands from in and writing to out.
func New(tree binarytree.Tree[int], in io.Reader, out io.Writer) *Shell {
	if tree == nil {
		tree = binarytree.NewAVL[int]()
	}
	return &Shell{
		Tree: tree,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// NewLogger sets the logger for the shell.
func (s *Shell) NewLogger(l logger.Logger) {
	s.logger = l
}

// ShowPrompt turns the interactive prompt on or off.
func (s *Shell) ShowPrompt(show bool) {
	s.prompt = show
}

// Run reads and executes commands until quit or the end of input.
func (s *Shell) Run() error {
	if s.prompt {
		s.printHelp()
		fmt.Fprintln(s.out)
	}
	for {
		if s.prompt {
			logger.Purple.Fprint(s.out, "avltree> ")
		}
		if !s.in.Scan() {
			return s.in.Err()
		}

		var cmd, err = ParseCommand(s.in.Text())
		if err != nil {
			if s.logger != nil {
				s.logger.Debugf("bad input %q: %s\n", s.in.Text(), err)
			}
			logger.Red.Fprintf(s.out, "%s, type \"help\" for a list of commands\n", err)
			continue
		}
		if cmd == nil {
			continue
		}

		if s.Execute(cmd) {
			return nil
		}
	}
}

// Execute runs a single command. Reports whether the shell should stop.
func (s *Shell) Execute(cmd *Command) (quit bool) {
	if s.logger != nil {
		s.logger.Debugf("executing %s %v\n", cmd.Type, cmd.Keys)
	}

	switch cmd.Type {
	case TypeADD:
		for _, k := range cmd.Keys {
			if s.Tree.Add(k) {
				logger.Green.Fprintf(s.out, "added %d\n", k)
			} else {
				logger.Yellow.Fprintf(s.out, "%d already present\n", k)
			}
		}
	case TypeREMOVE:
		for _, k := range cmd.Keys {
			if s.Tree.Remove(k) {
				logger.Green.Fprintf(s.out, "removed %d\n", k)
			} else {
				logger.Yellow.Fprintf(s.out, "%d not found\n", k)
			}
		}
	case TypeCONTAINS:
		fmt.Fprintln(s.out, strconv.FormatBool(s.Tree.Contains(cmd.Keys[0])))
	case TypeMIN:
		s.printKey(s.Tree.FindMin())
	case TypeMAX:
		s.printKey(s.Tree.FindMax())
	case TypeINORDER:
		var keys = s.Tree.InOrder()
		var values = make([]string, len(keys))
		for i, k := range keys {
			values[i] = strconv.Itoa(k)
		}
		fmt.Fprintf(s.out, "[%s]\n", strings.Join(values, ", "))
	case TypePREORDER:
		fmt.Fprintln(s.out, s.Tree.PreOrderString())
	case TypePRINT:
		if s.Tree.IsEmpty() {
			logger.Yellow.Fprintln(s.out, "tree is empty")
			return false
		}
		fmt.Fprint(s.out, s.Tree.String())
	case TypeVALID:
		if err := s.Tree.Validate(); err != nil {
			logger.Red.Fprint(s.out, err.Error())
			return false
		}
		logger.Green.Fprintln(s.out, "valid")
	case TypeSTATS:
		fmt.Fprintln(s.out, statsTable(s.Tree))
	case TypeCLEAR:
		s.Tree.Clear()
		logger.Green.Fprintln(s.out, "OK")
	case TypeHELP:
		s.printHelp()
	case TypeQUIT:
		return true
	}
	return false
}

func (s *Shell) printKey(k int, ok bool) {
	if !ok {
		logger.Yellow.Fprintln(s.out, "tree is empty")
		return
	}
	fmt.Fprintln(s.out, k)
}

func (s *Shell) printHelp() {
	logger.Purple.Fprintln(s.out, "avltree - Available Commands")
	var commands = [][2]string{
		{"add", "args: [KEY...]"},
		{"remove", "args: [KEY...]"},
		{"contains", "args: [KEY]"},
		{"min", ""},
		{"max", ""},
		{"inorder", ""},
		{"preorder", ""},
		{"print", ""},
		{"valid", ""},
		{"stats", ""},
		{"clear", ""},
		{"help", ""},
		{"quit", ""},
	}
	for _, c := range commands {
		fmt.Fprintf(s.out, "\t%s %s\n", logger.Colorize(fmt.Sprintf("%-8s", c[0]), logger.Green), c[1])
	}
}

// HeightBound is the worst case height of an AVL tree holding n keys.
func HeightBound(n int) float64 {
	return 1.44 * math.Log2(float64(n+2))
}

func statsTable(tree binarytree.Tree[int]) string {
	var tbl = table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Keys", "Height", "AVL bound", "Valid"})
	tbl.AppendRow(table.Row{
		tree.Len(),
		tree.Height(),
		fmt.Sprintf("%.2f", HeightBound(tree.Len())),
		tree.IsValid(),
	})
	return tbl.Render()
}
