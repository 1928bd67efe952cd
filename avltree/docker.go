//go:build docker
// +build docker

package main

import (
	"os"
	"strconv"
)

func init() {
	var (
		err1, err2, err3, err4, err5 error
	)
	flags.tree = envOr("TREE", "avl")
	flags.logfile = os.Getenv("LOGFILE")
	flags.loglevel = envOr("LOGLEVEL", "INFO")
	flags.noColor, err1 = strconv.ParseBool(envOr("NO_COLOR", "true"))
	flags.stress, err2 = strconv.Atoi(envOr("STRESS", "900"))
	flags.rounds, err3 = strconv.Atoi(envOr("ROUNDS", "100"))
	flags.seed, err4 = strconv.ParseInt(envOr("SEED", "0"), 10, 64)
	flags.maxKey, err5 = strconv.Atoi(envOr("MAX_KEY", "20000"))

	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		panic("Invalid environment variables")
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
