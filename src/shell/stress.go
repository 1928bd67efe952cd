package shell

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Nigel2392/avltree/src/binarytree"
	"github.com/Nigel2392/avltree/src/logger"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	DefaultRounds = 100
	DefaultKeys   = 900
	DefaultMaxKey = 20000
)

type StressConfig struct {
	// Number of fresh trees to build.
	Rounds int
	// Random draws per round; duplicates are dropped.
	Keys int
	// Keys are drawn from [1, MaxKey).
	MaxKey int
	// Round i uses Seed+i.
	Seed int64
	// Fail a round whose height exceeds HeightBound.
	CheckBound bool
}

func (c *StressConfig) defaults() {
	if c.Rounds <= 0 {
		c.Rounds = DefaultRounds
	}
	if c.Keys <= 0 {
		c.Keys = DefaultKeys
	}
	if c.MaxKey <= 1 {
		c.MaxKey = DefaultMaxKey
	}
}

type RoundResult struct {
	Round   int
	Added   int
	Removed int
	// Height after all keys were added.
	Height int
	Bound  float64
}

type StressResult struct {
	Rounds   []RoundResult
	Duration time.Duration
}

// Stress builds cfg.Rounds trees from random keys, removes every other
// key again and validates each tree after both phases.
//
// The first failing round aborts the run; its error wraps ErrInvalidTree.
func Stress(cfg StressConfig, newTree func() binarytree.Tree[int], log logger.Logger) (*StressResult, error) {
	cfg.defaults()

	var start = time.Now()
	var result = &StressResult{
		Rounds: make([]RoundResult, 0, cfg.Rounds),
	}
	for round := 0; round < cfg.Rounds; round++ {
		var r, err = stressRound(cfg, round, newTree())
		if err != nil {
			if log != nil {
				log.Error(err)
			}
			return result, err
		}
		if log != nil {
			log.Debugf("round %d: added %d, removed %d, height %d\n", round, r.Added, r.Removed, r.Height)
		}
		result.Rounds = append(result.Rounds, r)
	}
	result.Duration = time.Since(start)

	if log != nil {
		log.Infof("%d rounds passed in %s\n", len(result.Rounds), result.Duration)
	}
	return result, nil
}

func stressRound(cfg StressConfig, round int, tree binarytree.Tree[int]) (RoundResult, error) {
	var rng = rand.New(rand.NewSource(cfg.Seed + int64(round)))
	var seen = make(map[int]struct{}, cfg.Keys)
	var keys = make([]int, 0, cfg.Keys)
	for i := 0; i < cfg.Keys; i++ {
		var k = rng.Intn(cfg.MaxKey-1) + 1
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	var r = RoundResult{Round: round}
	for _, k := range keys {
		tree.Add(k)
	}
	r.Added = len(keys)
	r.Height = tree.Height()
	r.Bound = HeightBound(len(keys))

	if err := tree.Validate(); err != nil {
		return r, fmt.Errorf("round %d after add: %w\n%w", round, ErrInvalidTree, err)
	}
	if tree.Len() != len(keys) {
		return r, fmt.Errorf("round %d: %w: holds %d keys, want %d", round, ErrInvalidTree, tree.Len(), len(keys))
	}
	if cfg.CheckBound && float64(r.Height) > r.Bound {
		return r, fmt.Errorf("round %d: %w: height %d exceeds %.2f", round, ErrInvalidTree, r.Height, r.Bound)
	}

	for i := 0; i < len(keys); i += 2 {
		if !tree.Remove(keys[i]) {
			return r, fmt.Errorf("round %d: %w: %d could not be removed", round, ErrInvalidTree, keys[i])
		}
		if tree.Contains(keys[i]) {
			return r, fmt.Errorf("round %d: %w: %d still present after removal", round, ErrInvalidTree, keys[i])
		}
		r.Removed++
	}

	if err := tree.Validate(); err != nil {
		return r, fmt.Errorf("round %d after remove: %w\n%w", round, ErrInvalidTree, err)
	}
	if len(tree.InOrder()) != r.Added-r.Removed {
		return r, fmt.Errorf("round %d: %w: in-order walk lost keys", round, ErrInvalidTree)
	}
	return r, nil
}

// Table renders one row per round and a footer with the totals.
func (r *StressResult) Table() string {
	var tbl = table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Round", "Added", "Removed", "Height", "AVL bound"})

	var added, removed int64
	var maxHeight int
	for _, round := range r.Rounds {
		tbl.AppendRow(table.Row{
			round.Round,
			round.Added,
			round.Removed,
			round.Height,
			fmt.Sprintf("%.2f", round.Bound),
		})
		added += int64(round.Added)
		removed += int64(round.Removed)
		if round.Height > maxHeight {
			maxHeight = round.Height
		}
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d rounds", len(r.Rounds)),
		humanize.Comma(added),
		humanize.Comma(removed),
		maxHeight,
		r.Duration.Round(time.Millisecond).String(),
	})
	return tbl.Render()
}
