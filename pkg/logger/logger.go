// Package logger adds repeat-suppression on top of the standard log
// package. Cache hits and queue chatter tend to arrive in identical
// bursts; Dedup collapses a burst into one line with a count.
package logger

import (
	"fmt"
	"log"
	"sync"
	"time"
)

var dedup = &deduplicator{
	flushDelay: 2 * time.Second,
}

type deduplicator struct {
	mu         sync.Mutex
	lastMsg    string
	count      int
	flushDelay time.Duration
	timer      *time.Timer
}

func (d *deduplicator) flush() {
	if d.count == 0 {
		return
	}
	if d.count == 1 {
		log.Print(d.lastMsg)
	} else {
		log.Printf("%s (%d)", d.lastMsg, d.count)
	}
	d.count = 0
	d.lastMsg = ""
}

func (d *deduplicator) scheduleFlush() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.flushDelay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.flush()
	})
}

// Dedup logs a formatted message, collapsing consecutive identical
// messages into a single line with a repeat count once the burst goes
// quiet.
func Dedup(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	dedup.mu.Lock()
	defer dedup.mu.Unlock()

	if msg == dedup.lastMsg {
		dedup.count++
		dedup.scheduleFlush()
		return
	}

	dedup.flush()
	dedup.lastMsg = msg
	dedup.count = 1
	dedup.scheduleFlush()
}

// Flush forces any pending deduplicated line out immediately.
func Flush() {
	dedup.mu.Lock()
	defer dedup.mu.Unlock()
	dedup.flush()
}
