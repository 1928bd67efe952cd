package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Nigel2392/avltree/src/binarytree"
	"github.com/Nigel2392/avltree/src/logger"
	"github.com/Nigel2392/avltree/src/shell"
)

var flags struct {
	// The tree to run against.
	tree string
	// The logfile to write to.
	logfile string
	// Log level.
	loglevel string
	// Disable colored output.
	noColor bool
	// Keys drawn per stress round, 0 starts the shell.
	stress int
	// Number of stress rounds.
	rounds int
	// Seed of the first stress round.
	seed int64
	// Upper bound (exclusive) of stress keys.
	maxKey int
}

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens first.
func run() int {
	if flags.noColor {
		logger.DisableColor(true)
	}

	var w io.Writer = os.Stderr
	if flags.logfile != "" {
		var f, err = logger.NewLogFile(flags.logfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		w = f
	}
	var log = logger.Newlogger(logger.LoglevelFromString(flags.loglevel), w, flags.tree)

	var newTree, err = treeFactory(flags.tree, log)
	if err != nil {
		log.Critical(err)
		return 2
	}

	if flags.stress > 0 {
		return runStress(newTree, log)
	}

	var sh = shell.New(newTree(), os.Stdin, os.Stdout)
	sh.NewLogger(log)
	sh.ShowPrompt(true)
	if err = sh.Run(); err != nil {
		log.Critical(err)
		return 1
	}
	return 0
}

func treeFactory(name string, log logger.Logger) (func() binarytree.Tree[int], error) {
	switch strings.ToLower(name) {
	case "avl":
		return func() binarytree.Tree[int] {
			var t = binarytree.NewAVL[int]()
			t.SetLogger(log)
			return t
		}, nil
	case "bst":
		return func() binarytree.Tree[int] {
			return binarytree.NewBST[int]()
		}, nil
	}
	return nil, fmt.Errorf("unknown tree %q, expected \"avl\" or \"bst\"", name)
}

func runStress(newTree func() binarytree.Tree[int], log logger.Logger) int {
	var cfg = shell.StressConfig{
		Rounds:     flags.rounds,
		Keys:       flags.stress,
		MaxKey:     flags.maxKey,
		Seed:       flags.seed,
		CheckBound: strings.EqualFold(flags.tree, "avl"),
	}

	log.Infof("Running %d stress rounds of %d keys...\n", cfg.Rounds, cfg.Keys)
	var result, err = shell.Stress(cfg, newTree, log)
	fmt.Println(result.Table())
	if err != nil {
		return 1
	}
	return 0
}
