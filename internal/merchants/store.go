package merchants

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"store-locator/internal/types"
)

// Store holds the merchant dataset. It is populated once at startup and
// read-only afterwards, so lookups need no locking.
type Store struct {
	records []types.Merchant
	byID    map[string]types.Merchant
}

// Load reads the dataset from a JSON file and validates it.
func Load(path string, logger *slog.Logger) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read merchant dataset: %w", err)
	}

	var records []types.Merchant
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse merchant dataset: %w", err)
	}

	store, err := NewStore(records)
	if err != nil {
		return nil, err
	}

	logger.Info("merchant dataset loaded", "path", path, "count", store.Len())
	return store, nil
}

// NewStore validates the records and builds the lookup index. The dataset is
// curated, so a duplicate id or out-of-range coordinate fails startup rather
// than being skipped silently.
func NewStore(records []types.Merchant) (*Store, error) {
	byID := make(map[string]types.Merchant, len(records))
	for _, m := range records {
		if m.ID == "" {
			return nil, fmt.Errorf("merchant %q has empty id", m.TradingName)
		}
		if _, exists := byID[m.ID]; exists {
			return nil, fmt.Errorf("duplicate merchant id %q", m.ID)
		}
		if err := m.Coordinates.Validate(); err != nil {
			return nil, fmt.Errorf("merchant %q: %w", m.ID, err)
		}
		byID[m.ID] = m
	}

	return &Store{
		records: records,
		byID:    byID,
	}, nil
}

func (s *Store) Len() int {
	return len(s.records)
}

// All returns the full dataset in load order. Callers get a copy so the
// store's records stay immutable.
func (s *Store) All() []types.Merchant {
	out := make([]types.Merchant, len(s.records))
	copy(out, s.records)
	return out
}

// Get looks up a merchant by id.
func (s *Store) Get(id string) (types.Merchant, bool) {
	m, ok := s.byID[id]
	return m, ok
}

// Filter returns merchants matching an optional state and an optional
// free-text query. The query matches trading name, city, or postal code,
// case-insensitively. Empty arguments match everything.
func (s *Store) Filter(state, query string) []types.Merchant {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]types.Merchant, 0, len(s.records))
	for _, m := range s.records {
		if state != "" && !strings.EqualFold(m.State, state) {
			continue
		}
		if query != "" && !matchesQuery(m, query) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// States returns the distinct states in the dataset, sorted.
func (s *Store) States() []string {
	seen := make(map[string]struct{})
	var states []string
	for _, m := range s.records {
		if m.State == "" {
			continue
		}
		if _, ok := seen[m.State]; ok {
			continue
		}
		seen[m.State] = struct{}{}
		states = append(states, m.State)
	}
	sort.Strings(states)
	return states
}

func matchesQuery(m types.Merchant, query string) bool {
	return strings.Contains(strings.ToLower(m.TradingName), query) ||
		strings.Contains(strings.ToLower(m.City), query) ||
		strings.Contains(strings.ToLower(m.PostalCode), query)
}
