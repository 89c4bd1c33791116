package uniform

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Fill overwrites every element of dst with an independent draw from s.
func Fill[T Integer](s Sampler[T], src Source, dst []T) {
	for i := range dst {
		dst[i] = s.Sample(src)
	}
}

// FillParallel fills dst using up to workers goroutines over contiguous
// shards. The sampler value is copied per goroutine; each shard draws from
// its own Source obtained from newSource, so newSource must return
// independently seeded sources or the shards will repeat each other.
// Sources are created up front, in shard order, which keeps the
// source-to-shard mapping deterministic.
//
// workers <= 0 means GOMAXPROCS. If newSource fails, the error is returned
// before any draw happens and dst is left untouched.
func FillParallel[T Integer](s Sampler[T], newSource func() (Source, error), dst []T, workers int) error {
	if len(dst) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(dst) {
		workers = len(dst)
	}
	chunk := (len(dst) + workers - 1) / workers

	type shard struct {
		dst []T
		src Source
	}
	var shards []shard
	for start := 0; start < len(dst); start += chunk {
		src, err := newSource()
		if err != nil {
			return err
		}
		shards = append(shards, shard{
			dst: dst[start:min(start+chunk, len(dst))],
			src: src,
		})
	}

	var g errgroup.Group
	for _, sh := range shards {
		g.Go(func() error {
			Fill(s, sh.src, sh.dst)
			return nil
		})
	}
	return g.Wait()
}
