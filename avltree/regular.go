//go:build !docker
// +build !docker

package main

import "flag"

func init() {
	flag.StringVar(&flags.tree, "tree", "avl", "The tree to run against. (\"avl\", \"bst\")")
	flag.StringVar(&flags.logfile, "logfile", "", "The logfile to write to (none for stderr).")
	flag.StringVar(&flags.loglevel, "loglevel", "INFO", "The log level to use. (\"CRITICAL\", \"ERROR\", \"WARNING\", \"INFO\", \"DEBUG\", \"TEST\")")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output.")
	flag.IntVar(&flags.stress, "stress", 0, "Run a randomized stress test drawing this many keys per round instead of the shell.")
	flag.IntVar(&flags.rounds, "rounds", 100, "The number of stress test rounds.")
	flag.Int64Var(&flags.seed, "seed", 0, "The seed of the first stress test round.")
	flag.IntVar(&flags.maxKey, "max-key", 20000, "Stress test keys are drawn from [1, max-key).")
	flag.Parse()
}
