// Package generate synthesises random DNA or RNA sequences.
//
// The requested length is split into fixed-size chunks. Each chunk is filled
// by its own worker from a generator seeded with (seed, chunk index), and the
// chunks are joined in partition order. The output for a given seed is
// therefore the same whatever the worker count. A chunk that does not come
// back in full fails the whole generation.
package generate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pswsm/fasta-cli-tools/internal/bioerr"
	"github.com/pswsm/fasta-cli-tools/internal/sequence"
)

// DefaultChunkSize is the number of bases one worker produces per task.
const DefaultChunkSize = 1 << 16

// Options configures Generate.
type Options struct {
	Length    int
	Alphabet  sequence.Alphabet
	Workers   int    // defaults to runtime.NumCPU()
	ChunkSize int    // defaults to DefaultChunkSize
	Seed      uint64 // 0 picks a random seed

	// OnChunk, when set, is called once for every finished chunk. It may be
	// called from several goroutines at once.
	OnChunk func()
}

// Header is the header given to a generated sequence of n bases.
func Header(n int) string {
	return fmt.Sprintf("randomly generated sequence of %d bases", n)
}

// Partition splits length into consecutive chunk sizes of at most size.
func Partition(length, size int) []int {
	if length <= 0 || size <= 0 {
		return nil
	}
	sizes := make([]int, 0, (length+size-1)/size)
	for rest := length; rest > 0; rest -= size {
		sizes = append(sizes, min(size, rest))
	}
	return sizes
}

// fillChunk is swapped in tests.
var fillChunk = func(rng *rand.Rand, bases string, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = bases[rng.IntN(len(bases))]
	}
	return out
}

// Generate builds a random sequence as described by opts.
func Generate(ctx context.Context, opts Options) (sequence.Sequence, error) {
	if opts.Length < 0 {
		return sequence.Sequence{}, fmt.Errorf("generate: negative length %d", opts.Length)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	bases := opts.Alphabet.Bases()

	sizes := Partition(opts.Length, chunkSize)
	chunks := make([][]byte, len(sizes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, n := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(seed, uint64(i)))
			chunks[i] = fillChunk(rng, bases, n)
			if opts.OnChunk != nil {
				opts.OnChunk()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sequence.Sequence{}, fmt.Errorf("generate: %w", err)
	}

	var sb strings.Builder
	sb.Grow(opts.Length)
	for i, c := range chunks {
		if len(c) != sizes[i] {
			return sequence.Sequence{}, fmt.Errorf("generate: chunk %d has %d of %d bases: %w", i, len(c), sizes[i], bioerr.ErrMissingChunk)
		}
		sb.Write(c)
	}
	return sequence.FromText(Header(opts.Length), sb.String())
}
