// SPDX-License-Identifier: MIT
package linescan

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Result holds the outcome of solving a single input file.
type Result struct {
	Path  string
	Total int
	Err   error
}

// SolveFiles runs the Puzzle over each file at paths on a pool of [Config.Workers] goroutines.
//
// Each file is solved on its own, in line order; results follow the order of paths. err only
// reports a failure to schedule the work, per file failures are held by each Result.
func (p Puzzle) SolveFiles(ctx context.Context, cfg *Config, paths ...string) (results []Result, err error) {
	cfg.Validate()

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		err = fmt.Errorf("failed to create worker pool: %w", err)
		return
	}
	defer pool.Release()

	results = make([]Result, len(paths))
	wg := new(sync.WaitGroup)
	for index := range paths {
		index := index

		fileCfg := *cfg
		fileCfg.Logger = cfg.Logger.WithField("input", paths[index])

		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()

			resl := &results[index]
			resl.Path = paths[index]
			resl.Total, resl.Err = p.SolveFile(ctx, &fileCfg, paths[index])
		}); err != nil {
			wg.Done()
			err = fmt.Errorf("failed to schedule %s: %w", paths[index], err)
			break
		}
	}
	wg.Wait()

	return
}
