// Package store provides read-only access to the on-disk match layout:
//
//	<root>/<match-id>/metadata.json
//	<root>/<match-id>/ground_truth.json
//	<root>/<match-id>/results/*.json
//
// The store only loads documents; validation beyond JSON well-formedness
// is left to the evaluation core, which treats missing fields as absent.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/okian/matscore/internal/domain/model"
)

// Default root directory for match documents.
const defaultRoot = "matches"

// MatchInfo identifies one match directory.
type MatchInfo struct {
	ID    string `json:"video_id"`
	Title string `json:"title"`
}

// metadata mirrors the subset of metadata.json the store cares about.
type metadata struct {
	Title string `json:"title"`
}

// Store reads match documents from the filesystem.
type Store struct {
	root string
}

// New creates a Store with configuration options.
func New(opts ...Option) *Store {
	s := &Store{root: defaultRoot}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every match directory that carries a metadata.json,
// sorted by id. A missing root directory is an empty list, not an error.
func (s *Store) List(_ context.Context) ([]MatchInfo, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list matches: %w", err)
	}

	var matches []MatchInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.root, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta metadata
		if err := json.Unmarshal(raw, &meta); err != nil {
			continue
		}
		title := meta.Title
		if title == "" {
			title = entry.Name()
		}
		matches = append(matches, MatchInfo{ID: entry.Name(), Title: title})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

// GroundTruth loads the ground-truth document for a match.
func (s *Store) GroundTruth(_ context.Context, matchID string) (model.GroundTruth, error) {
	var gt model.GroundTruth
	path := filepath.Join(s.root, matchID, "ground_truth.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return gt, fmt.Errorf("%w: %s", ErrNoGroundTruth, path)
		}
		return gt, fmt.Errorf("read ground truth: %w", err)
	}
	if err := json.Unmarshal(raw, &gt); err != nil {
		return gt, fmt.Errorf("%w: %s: %w", ErrMalformedDocument, path, err)
	}
	return gt, nil
}

// ResultNames lists the result file names for a match, newest first
// (reverse lexical order; result files carry sortable timestamped names).
func (s *Store) ResultNames(_ context.Context, matchID string) ([]string, error) {
	dir := filepath.Join(s.root, matchID, "results")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list results: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Result loads one prediction document for a match.
func (s *Store) Result(_ context.Context, matchID, name string) (model.Result, error) {
	var res model.Result
	path := filepath.Join(s.root, matchID, "results", name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return res, fmt.Errorf("%w: %s", ErrResultNotFound, path)
		}
		return res, fmt.Errorf("read result: %w", err)
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return res, fmt.Errorf("%w: %s: %w", ErrMalformedDocument, path, err)
	}
	return res, nil
}

// Exists reports whether a match directory is present.
func (s *Store) Exists(_ context.Context, matchID string) bool {
	info, err := os.Stat(filepath.Join(s.root, matchID))
	return err == nil && info.IsDir()
}
