// Bench measures sampler throughput, retry rate, and uniformity for a
// configurable range and integer width.
//
// Usage:
//
//	go run ./cmd/bench -width u32 -low 0 -high 9 -draws 10000000 -workers 4
//
// Flags:
//
//	-width     Integer width: i8, i16, i32, i64, u8, u16, u32, u64 (default: u64)
//	-low       Inclusive lower bound (default: 0)
//	-high      Inclusive upper bound (default: 999999)
//	-draws     Total draws across all workers (default: 10,000,000)
//	-workers   Parallel workers, each with its own source (default: 1)
//	-seed      Base seed; worker seeds are derived from it (default: streambench)
//	-buckets   Chi-square buckets for the uniformity pass, 0 to skip (default: 0)
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spaolacci/murmur3"
	"golang.org/x/sync/errgroup"

	"github.com/tamirms/uniform"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

// workerSeed derives a distinct 64-bit seed per worker from the base seed
// string, so parallel sources never share a word stream.
func workerSeed(base string, worker int) uint64 {
	h1, _ := murmur3.Sum128WithSeed([]byte(base), uint32(worker))
	return h1
}

// countingSource wraps a Source and counts words drawn, exposing the
// retry rate as words/draws - 1.
type countingSource struct {
	src   uniform.Source
	words int64
}

func (c *countingSource) Uint64() uint64 {
	c.words++
	return c.src.Uint64()
}

type result struct {
	draws    int64
	words    int64
	duration time.Duration
}

// runBench runs the throughput measurement for one integer type.
func runBench[T uniform.Integer](low, high T, draws, workers int, seed string, buckets int) error {
	s, err := uniform.NewInclusive(low, high)
	if err != nil {
		return err
	}

	perWorker := draws / workers
	var totalWords atomic.Int64
	var totalDraws atomic.Int64

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		src := &countingSource{src: uniform.NewCounterSource(workerSeed(seed, w))}
		g.Go(func() error {
			var sink T
			for i := 0; i < perWorker; i++ {
				sink += s.Sample(src)
			}
			_ = sink
			totalWords.Add(src.words)
			totalDraws.Add(int64(perWorker))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	res := result{draws: totalDraws.Load(), words: totalWords.Load(), duration: elapsed}
	printResult(res, workers)

	if buckets > 0 {
		return runUniformity(s, low, buckets, draws, seed)
	}
	return nil
}

// runUniformity folds draws into buckets modulo the bucket count and prints
// the chi-square statistic. This is a smoke check, not a proof: it folds
// the range, so use a bucket count dividing the range size for exact
// expectations.
func runUniformity[T uniform.Integer](s uniform.Sampler[T], low T, buckets, draws int, seed string) error {
	src := uniform.NewCounterSource(workerSeed(seed, -1))
	counts := make([]int64, buckets)
	for i := 0; i < draws; i++ {
		v := s.Sample(src)
		counts[uint64(v-low)%uint64(buckets)]++
	}

	expected := float64(draws) / float64(buckets)
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	fmt.Printf("Uniformity: chi-square = %.2f over %d buckets (df = %d)\n",
		chi2, buckets, buckets-1)
	return nil
}

func printResult(res result, workers int) {
	drawsPerSec := float64(res.draws) / res.duration.Seconds()
	wordsPerDraw := float64(res.words) / float64(res.draws)

	fmt.Printf("Draws          %d\n", res.draws)
	fmt.Printf("Workers        %d\n", workers)
	fmt.Printf("Elapsed        %.2f sec\n", res.duration.Seconds())
	fmt.Printf("Throughput     %.2f M draws/sec\n", drawsPerSec/1_000_000)
	fmt.Printf("Words per draw %.4f (retry rate %.4f%%)\n",
		wordsPerDraw, (wordsPerDraw-1)*100)
	fmt.Printf("Peak RSS       %.1f MB\n", float64(getMaxRSS())/1_000_000)
}

func main() {
	widthFlag := flag.String("width", "u64", "integer width: i8, i16, i32, i64, u8, u16, u32, u64")
	lowFlag := flag.Int64("low", 0, "inclusive lower bound")
	highFlag := flag.Int64("high", 999999, "inclusive upper bound")
	drawsFlag := flag.Int("draws", 10_000_000, "total draws across all workers")
	workersFlag := flag.Int("workers", 1, "parallel workers")
	seedFlag := flag.String("seed", "streambench", "base seed string")
	bucketsFlag := flag.Int("buckets", 0, "chi-square buckets (0 = skip uniformity pass)")
	flag.Parse()

	low, high := *lowFlag, *highFlag
	draws, workers := *drawsFlag, *workersFlag
	if workers < 1 {
		workers = 1
	}

	var err error
	switch *widthFlag {
	case "i8":
		err = runBench(int8(low), int8(high), draws, workers, *seedFlag, *bucketsFlag)
	case "i16":
		err = runBench(int16(low), int16(high), draws, workers, *seedFlag, *bucketsFlag)
	case "i32":
		err = runBench(int32(low), int32(high), draws, workers, *seedFlag, *bucketsFlag)
	case "i64":
		err = runBench(low, high, draws, workers, *seedFlag, *bucketsFlag)
	case "u8":
		err = runBench(uint8(low), uint8(high), draws, workers, *seedFlag, *bucketsFlag)
	case "u16":
		err = runBench(uint16(low), uint16(high), draws, workers, *seedFlag, *bucketsFlag)
	case "u32":
		err = runBench(uint32(low), uint32(high), draws, workers, *seedFlag, *bucketsFlag)
	case "u64":
		err = runBench(uint64(low), uint64(high), draws, workers, *seedFlag, *bucketsFlag)
	default:
		fmt.Printf("Unknown width: %s\n", *widthFlag)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("bench failed: %v\n", err)
		os.Exit(1)
	}
}
