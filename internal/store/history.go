package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/clauselens/clauselens/internal/model"
)

// History persists completed analysis reports as one JSON file per entry
type History struct {
	dir string
}

// Entry is a stored analysis record
type Entry struct {
	ID        string        `json:"id"`
	User      string        `json:"user"`
	StoredAt  time.Time     `json:"stored_at"`
	Report    *model.Report `json:"report"`
}

// Summary is the listing view of an entry, without the full report
type Summary struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	StoredAt  time.Time `json:"stored_at"`
	Document  string    `json:"document"`
	Clauses   int       `json:"clauses"`
	HighRisk  int       `json:"high_risk"`
}

// NewHistory creates a history store rooted at dir
func NewHistory(dir string) *History {
	return &History{dir: dir}
}

// Save stores a report for a user and returns the entry id
func (h *History) Save(user string, report *model.Report) (string, error) {
	if user == "" {
		user = "default"
	}

	id := fmt.Sprintf("%s-%d", sanitize(report.Document), time.Now().UnixNano())
	entry := Entry{
		ID:       id,
		User:     user,
		StoredAt: time.Now().UTC(),
		Report:   report,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal entry: %w", err)
	}

	userDir := filepath.Join(h.dir, sanitize(user))
	if err := os.MkdirAll(userDir, 0755); err != nil {
		return "", fmt.Errorf("create history dir: %w", err)
	}

	path := filepath.Join(userDir, id+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write entry: %w", err)
	}

	return id, nil
}

// List returns up to limit most recent entries for a user, newest first
func (h *History) List(user string, limit int) ([]Summary, error) {
	if user == "" {
		user = "default"
	}
	if limit <= 0 {
		limit = 10
	}

	userDir := filepath.Join(h.dir, sanitize(user))
	files, err := os.ReadDir(userDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history dir: %w", err)
	}

	var summaries []Summary
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		entry, err := h.load(filepath.Join(userDir, file.Name()))
		if err != nil {
			continue
		}

		counts := entry.Report.CountByLevel()
		summaries = append(summaries, Summary{
			ID:       entry.ID,
			User:     entry.User,
			StoredAt: entry.StoredAt,
			Document: entry.Report.Document,
			Clauses:  len(entry.Report.Clauses),
			HighRisk: counts[model.RiskLevelHigh],
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].StoredAt.After(summaries[j].StoredAt)
	})

	if len(summaries) > limit {
		summaries = summaries[:limit]
	}

	return summaries, nil
}

// Get loads a stored entry by id
func (h *History) Get(user, id string) (*Entry, error) {
	if user == "" {
		user = "default"
	}

	path := filepath.Join(h.dir, sanitize(user), id+".json")
	entry, err := h.load(path)
	if err != nil {
		return nil, fmt.Errorf("load entry %s: %w", id, err)
	}
	return entry, nil
}

func (h *History) load(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	if entry.Report == nil {
		return nil, fmt.Errorf("entry has no report")
	}

	return &entry, nil
}

// sanitize keeps ids and user names filesystem-safe
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "doc"
	}
	return b.String()
}
