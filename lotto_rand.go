package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/suapapa/lotto645/internal/lotto"
)

// newGenerator returns the generator a command draws from. A zero seed in
// the config means a fresh random seed per process.
func newGenerator(cfg *Config) *lotto.Generator {
	return lotto.NewGenerator(cfg.Seed)
}

// batches holds the last generated batch of each chat. A new batch
// replaces the old one.
type batches struct {
	mu sync.Mutex
	m  map[int64]lotto.Batch
}

func newBatches() *batches {
	return &batches{m: make(map[int64]lotto.Batch)}
}

func (b *batches) put(chatID int64, batch lotto.Batch) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.m[chatID] = batch
}

func (b *batches) get(chatID int64) (lotto.Batch, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	batch, ok := b.m[chatID]
	return batch, ok
}

// setLabel is the row label shared by bot messages and CLI tables.
func setLabel(pos int) string {
	return fmt.Sprintf("%d 세트", pos)
}

// batchLines renders "1 세트: 1 10 20 30 40 45" style lines.
func batchLines(batch lotto.Batch) []string {
	lines := make([]string, len(batch))
	for i, ns := range batch {
		lines[i] = setLabel(i+1) + ": " + ns.String()
	}
	return lines
}

// chunkLines joins lines into messages of at most per lines each.
func chunkLines(lines []string, per int) []string {
	var out []string
	for start := 0; start < len(lines); start += per {
		end := min(start+per, len(lines))
		out = append(out, strings.Join(lines[start:end], "\n"))
	}
	return out
}
