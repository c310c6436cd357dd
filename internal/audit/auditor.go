// Package audit appends the vendor's activity (logins, catalog edits,
// order updates) to a dated log file; the dashboard reads the tail back
// as "recent activity".
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Auditor struct {
	logFile string
	mu      sync.Mutex
	batch   []Entry
	// Flush after this many buffered entries; the timer covers quiet
	// periods
	batchSize  int
	flushTimer *time.Timer
}

const flushInterval = time.Minute

func NewAuditor(logDir string) (*Auditor, error) {
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create activity log directory: %w", err)
	}

	a := &Auditor{
		logFile:   filepath.Join(logDir, fmt.Sprintf("activity_%s.log", time.Now().Format("2006-01-02"))),
		batchSize: 10,
		batch:     make([]Entry, 0, 10),
	}

	a.flushTimer = time.AfterFunc(flushInterval, func() {
		_ = a.Flush()
		a.flushTimer.Reset(flushInterval)
	})

	return a, nil
}

// Record buffers one activity entry, flushing when the batch fills
func (a *Auditor) Record(action Action, subject, summary string, details map[string]string) {
	entry := Entry{
		ID:        uuid.NewString(),
		Action:    action,
		Subject:   subject,
		Summary:   summary,
		Timestamp: time.Now(),
		Details:   details,
	}

	a.mu.Lock()
	a.batch = append(a.batch, entry)
	full := len(a.batch) >= a.batchSize
	a.mu.Unlock()

	if full {
		_ = a.Flush()
	}
}

// Flush appends buffered entries to the log file as JSON lines
func (a *Auditor) Flush() error {
	a.mu.Lock()
	if len(a.batch) == 0 {
		a.mu.Unlock()
		return nil
	}
	pending := a.batch
	a.batch = make([]Entry, 0, a.batchSize)
	a.mu.Unlock()

	f, err := os.OpenFile(a.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open activity log: %w", err)
	}
	defer f.Close()

	for _, entry := range pending {
		line, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		if _, err := f.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("failed to write activity log: %w", err)
		}
	}

	return nil
}

// Recent returns up to limit entries from today's log, newest first,
// including any still buffered
func (a *Auditor) Recent(limit int) ([]Entry, error) {
	if err := a.Flush(); err != nil {
		return nil, err
	}

	f, err := os.Open(a.logFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read activity log: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan activity log: %w", err)
	}

	// Newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Shutdown flushes anything buffered and stops the timer
func (a *Auditor) Shutdown() error {
	if a.flushTimer != nil {
		a.flushTimer.Stop()
	}
	return a.Flush()
}
