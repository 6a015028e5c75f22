// Package session holds per-visitor dashboard state: favorites, the active
// strategy profile, the market filter and the universe sort order.
package session

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/trogers1052/supershares/internal/scoring"
	"github.com/trogers1052/supershares/internal/signals"
)

// Session is the state of one dashboard visitor
type Session struct {
	ID        string
	Favorites map[string]bool
	Profile   string
	Market    string
	SortKey   string
	SortAsc   bool
}

func newSession(id string) *Session {
	return &Session{
		ID:        id,
		Favorites: make(map[string]bool),
		Profile:   signals.ProfileTrader,
		Market:    "All",
		SortKey:   scoring.SortScore,
		SortAsc:   false,
	}
}

// ToggleFavorite flips the favorite flag and returns the new state
func (s *Session) ToggleFavorite(ticker string) bool {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return false
	}
	if s.Favorites[ticker] {
		delete(s.Favorites, ticker)
		return false
	}
	s.Favorites[ticker] = true
	return true
}

// IsFavorite reports whether ticker is a favorite
func (s *Session) IsFavorite(ticker string) bool {
	return s.Favorites[strings.ToUpper(strings.TrimSpace(ticker))]
}

// FavoriteTickers returns the favorites in alphabetical order
func (s *Session) FavoriteTickers() []string {
	out := make([]string, 0, len(s.Favorites))
	for t := range s.Favorites {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// SetProfile stores the canonical profile name; unknown names become TRADER
func (s *Session) SetProfile(name string) {
	s.Profile = signals.ProfileFor(name).Name
}

// SetMarket stores the market filter; empty means All
func (s *Session) SetMarket(market string) {
	market = strings.TrimSpace(market)
	if market == "" {
		market = "All"
	}
	s.Market = market
}

// SetSort selects a sort column. Choosing the current column flips the
// direction; a new text column starts ascending, a numeric one descending.
// Unknown keys are ignored.
func (s *Session) SetSort(key string) {
	key = strings.ToLower(strings.TrimSpace(key))
	if !scoring.IsSortKey(key) {
		return
	}
	if key == s.SortKey {
		s.SortAsc = !s.SortAsc
		return
	}
	s.SortKey = key
	s.SortAsc = scoring.IsTextColumn(key)
}

func (s *Session) clone() *Session {
	c := *s
	c.Favorites = make(map[string]bool, len(s.Favorites))
	for k, v := range s.Favorites {
		c.Favorites[k] = v
	}
	return &c
}

// DefaultStoreSize bounds the number of sessions kept in memory
const DefaultStoreSize = 10000

// Store keeps the most recently used sessions in memory keyed by id. The
// least recently used session is dropped once the store is full.
type Store struct {
	mu       sync.Mutex
	sessions *lru.Cache[string, *Session]
}

// NewStore creates an empty session store holding at most size sessions
func NewStore(size int) *Store {
	if size <= 0 {
		size = DefaultStoreSize
	}
	// lru.New only fails for a non-positive size
	sessions, _ := lru.New[string, *Session](size)
	return &Store{sessions: sessions}
}

// lookup returns the session for id or registers a fresh one. Callers hold mu.
func (st *Store) lookup(id string) *Session {
	if s, ok := st.sessions.Get(id); ok {
		return s
	}
	s := newSession(uuid.NewString())
	st.sessions.Add(s.ID, s)
	return s
}

// Get returns a copy of the session for id, creating a fresh one with a
// new id when id is empty or unknown.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.lookup(id).clone()
}

// Update applies fn to the stored session under the store lock and returns
// a copy of the result.
func (st *Store) Update(id string, fn func(*Session)) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.lookup(id)
	fn(s)
	return s.clone()
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	return st.sessions.Len()
}
