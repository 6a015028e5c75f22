package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/trogers1052/supershares/internal/indicators"
	"github.com/trogers1052/supershares/internal/models"
	"github.com/trogers1052/supershares/internal/patterns"
	"github.com/trogers1052/supershares/internal/portfolio"
	"github.com/trogers1052/supershares/internal/scoring"
	"github.com/trogers1052/supershares/internal/session"
	"github.com/trogers1052/supershares/internal/signals"
	"github.com/trogers1052/supershares/internal/universe"
)

// SessionCookie names the cookie carrying the session id
const SessionCookie = "supershares_session"

const (
	detailWindowDays = 400
	peerLimit        = 5
	tradeLimit       = 50
	maxTradeLimit    = 500
)

// MarketData is the subset of the market data gate used by the API
type MarketData interface {
	Series(ctx context.Context, ticker string, start, end time.Time) []models.Bar
	Fundamentals(ctx context.Context, ticker string) models.Fundamentals
	Financials(ctx context.Context, ticker string) []models.FinancialYear
	Holders(ctx context.Context, ticker string) *models.Holders
}

// Portfolio is the subset of the portfolio manager used by the API
type Portfolio interface {
	AddTransaction(ctx context.Context, ticker, qty, price string) (*models.Position, error)
	Remove(ctx context.Context, ticker string) error
	Positions(ctx context.Context) ([]models.Position, error)
	Tickers(ctx context.Context) (map[string]bool, error)
}

// Archive is the persisted price and trade history
type Archive interface {
	GetLatestPriceData(ctx context.Context, symbol string) (*models.Bar, error)
	GetRawTradesBySymbol(ctx context.Context, symbol string, limit int) ([]*models.RawTrade, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	market       MarketData
	scorer       *scoring.Scorer
	portfolio    Portfolio
	archive      Archive
	sessions     *session.Store
	lookbackDays int
	now          func() time.Time
}

// NewHandler creates a new Handler. archive may be nil.
func NewHandler(market MarketData, scorer *scoring.Scorer, p Portfolio, archive Archive, sessions *session.Store, lookbackDays int) *Handler {
	if lookbackDays <= 0 {
		lookbackDays = scoring.DefaultLookbackDays
	}
	return &Handler{
		market:       market,
		scorer:       scorer,
		portfolio:    p,
		archive:      archive,
		sessions:     sessions,
		lookbackDays: lookbackDays,
		now:          time.Now,
	}
}

// UniverseRow is a scored instrument with the visitor's flags
type UniverseRow struct {
	models.ScoreRow
	Currency string `json:"currency"`
	Favorite bool   `json:"favorite"`
	Owned    bool   `json:"owned"`
}

// UniverseResponse is the body of GET /universe
type UniverseResponse struct {
	Profile string               `json:"profile"`
	Market  string               `json:"market"`
	SortKey string               `json:"sort"`
	SortAsc bool                 `json:"asc"`
	Summary models.MarketSummary `json:"summary"`
	Rows    []UniverseRow        `json:"rows"`
}

// Peer is a same-sector instrument with its current decision
type Peer struct {
	Ticker   string `json:"ticker"`
	Company  string `json:"company"`
	Decision string `json:"decision"`
	Score    int    `json:"score"`
}

// DetailResponse is the body of GET /instruments/{ticker}
type DetailResponse struct {
	Instrument   models.Instrument      `json:"instrument"`
	Currency     string                 `json:"currency"`
	Profile      string                 `json:"profile"`
	Stale        bool                   `json:"stale,omitempty"`
	Favorite     bool                   `json:"favorite"`
	Owned        bool                   `json:"owned"`
	Signal       models.Signal          `json:"signal"`
	LastClose    float64                `json:"last_close"`
	PrevClose    float64                `json:"prev_close"`
	Change       float64                `json:"change"`
	ChangePct    float64                `json:"change_pct"`
	Bars         []models.AnnotatedBar  `json:"bars"`
	Patterns     []models.PatternMatch  `json:"patterns"`
	Takeaways    signals.Takeaways      `json:"takeaways"`
	ProsCons     signals.ProsCons       `json:"pros_cons"`
	Fundamentals models.Fundamentals    `json:"fundamentals,omitempty"`
	Financials   []models.FinancialYear `json:"financials,omitempty"`
	Holders      *models.Holders        `json:"holders,omitempty"`
	Peers        []Peer                 `json:"peers"`
}

// PortfolioResponse is the body of GET /portfolio
type PortfolioResponse struct {
	Profile string                 `json:"profile"`
	Rows    []models.PortfolioRow  `json:"rows"`
	Totals  models.PortfolioTotals `json:"totals"`
}

// session resolves the visitor's session and refreshes the cookie
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}
	s := h.sessions.Get(id)
	if s.ID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    s.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return s
}

func (h *Handler) owned(ctx context.Context) map[string]bool {
	owned, err := h.portfolio.Tickers(ctx)
	if err != nil {
		log.Printf("Error loading portfolio tickers: %v", err)
		return map[string]bool{}
	}
	return owned
}

// GetUniverse handles GET /universe
func (h *Handler) GetUniverse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s := h.session(w, r)

	s = h.sessions.Update(s.ID, func(s *session.Session) {
		if v := q.Get("profile"); v != "" {
			s.SetProfile(v)
		}
		if q.Has("market") {
			s.SetMarket(q.Get("market"))
		}
		if v := q.Get("sort"); v != "" {
			if asc, err := strconv.ParseBool(q.Get("asc")); err == nil && scoring.IsSortKey(v) {
				s.SortKey = strings.ToLower(v)
				s.SortAsc = asc
			} else {
				s.SetSort(v)
			}
		}
	})

	lookback := h.lookbackDays
	if v := q.Get("lookback"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid lookback", http.StatusBadRequest)
			return
		}
		lookback = n
	}

	instruments := universe.Select(universe.Filter{
		Market: s.Market,
		Sector: q.Get("sector"),
		Group:  q.Get("group"),
		Ticker: q.Get("ticker"),
	})

	profile := signals.ProfileFor(s.Profile)
	scored := h.scorer.ScoreUniverse(r.Context(), instruments, lookback, profile)
	owned := h.owned(r.Context())

	rows := make([]UniverseRow, 0, len(scored))
	for _, row := range scoring.SortRows(scored, s.SortKey, s.SortAsc) {
		rows = append(rows, UniverseRow{
			ScoreRow: row,
			Currency: universe.CurrencyPrefix(row.Market),
			Favorite: s.IsFavorite(row.Ticker),
			Owned:    owned[row.Ticker],
		})
	}

	respondJSON(w, http.StatusOK, UniverseResponse{
		Profile: s.Profile,
		Market:  s.Market,
		SortKey: s.SortKey,
		SortAsc: s.SortAsc,
		Summary: scoring.Summarize(scored),
		Rows:    rows,
	})
}

// GetInstrument handles GET /instruments/{ticker}
func (h *Handler) GetInstrument(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["ticker"]))
	s := h.session(w, r)
	ctx := r.Context()

	inst, ok := universe.Lookup(ticker)
	if !ok {
		inst = models.Instrument{Ticker: ticker, Name: ticker, Market: models.MarketUSA}
	}

	now := h.now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	bars := h.market.Series(ctx, ticker, end.AddDate(0, 0, -detailWindowDays), end)

	owned := h.owned(ctx)[ticker]
	profile := signals.ProfileFor(s.Profile)
	series := indicators.Compute(bars)

	resp := DetailResponse{
		Instrument: inst,
		Currency:   universe.CurrencyPrefix(inst.Market),
		Profile:    profile.Name,
		Favorite:   s.IsFavorite(ticker),
		Owned:      owned,
		Signal:     signals.Decide(series, profile, owned),
		Bars:       series,
		Patterns:   patterns.Detect(bars, patterns.DefaultLookback),
		Takeaways:  signals.Explain(series),
		ProsCons:   signals.Assess(series),
		Peers:      []Peer{},
	}

	switch {
	case len(bars) > 0:
		resp.LastClose = bars[len(bars)-1].Close
		if len(bars) > 1 {
			resp.PrevClose = bars[len(bars)-2].Close
			resp.Change = resp.LastClose - resp.PrevClose
			if resp.PrevClose != 0 {
				resp.ChangePct = resp.Change / resp.PrevClose * 100
			}
		}
	case h.archive != nil:
		latest, err := h.archive.GetLatestPriceData(ctx, ticker)
		if err != nil {
			log.Printf("No archived close for %s: %v", ticker, err)
			http.Error(w, "no market data for "+ticker, http.StatusNotFound)
			return
		}
		resp.LastClose = latest.Close
		resp.Stale = true
	default:
		http.Error(w, "no market data for "+ticker, http.StatusNotFound)
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		resp.Fundamentals = h.market.Fundamentals(ctx, ticker)
		return nil
	})
	g.Go(func() error {
		resp.Financials = h.market.Financials(ctx, ticker)
		return nil
	})
	g.Go(func() error {
		resp.Holders = h.market.Holders(ctx, ticker)
		return nil
	})
	g.Go(func() error {
		peers := universe.Peers(ticker, peerLimit)
		for _, row := range h.scorer.ScoreUniverse(ctx, peers, h.lookbackDays, profile) {
			resp.Peers = append(resp.Peers, Peer{
				Ticker:   row.Ticker,
				Company:  row.Company,
				Decision: row.Signal.Decision,
				Score:    row.Signal.Score,
			})
		}
		return nil
	})
	_ = g.Wait()

	respondJSON(w, http.StatusOK, resp)
}

// GetFavorites handles GET /favorites
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	profile := signals.ProfileFor(s.Profile)
	instruments := universe.ByTickers(s.FavoriteTickers())
	rows := h.scorer.ScoreUniverse(r.Context(), instruments, h.lookbackDays, profile)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"favorites": s.FavoriteTickers(),
		"rows":      rows,
	})
}

// ToggleFavorite handles POST /favorites/{ticker}
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["ticker"]))
	s := h.session(w, r)

	var favorite bool
	h.sessions.Update(s.ID, func(s *session.Session) {
		favorite = s.ToggleFavorite(ticker)
	})

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ticker":   ticker,
		"favorite": favorite,
	})
}

// GetPortfolio handles GET /portfolio
func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)

	positions, err := h.portfolio.Positions(r.Context())
	if err != nil {
		log.Printf("Error loading portfolio: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	profile := signals.ProfileFor(s.Profile)
	rows := h.scorer.ScorePortfolio(r.Context(), positions, profile)

	respondJSON(w, http.StatusOK, PortfolioResponse{
		Profile: profile.Name,
		Rows:    rows,
		Totals:  scoring.PortfolioTotals(rows),
	})
}

// AddTransaction handles POST /portfolio/transactions
func (h *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Ticker string      `json:"ticker"`
		Qty    json.Number `json:"qty"`
		Price  json.Number `json:"price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	pos, err := h.portfolio.AddTransaction(r.Context(), req.Ticker, req.Qty.String(), req.Price.String())
	if err != nil {
		if errors.Is(err, portfolio.ErrInvalidTicker) ||
			errors.Is(err, portfolio.ErrInvalidQuantity) ||
			errors.Is(err, portfolio.ErrInvalidPrice) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error applying transaction: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"position": pos,
		"closed":   pos == nil,
	})
}

// RemovePosition handles DELETE /portfolio/{ticker}
func (h *Handler) RemovePosition(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	if err := h.portfolio.Remove(r.Context(), ticker); err != nil {
		log.Printf("Error removing position %s: %v", ticker, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTrades handles GET /portfolio/{ticker}/trades
func (h *Handler) GetTrades(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["ticker"]))

	limit := tradeLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, maxTradeLimit)
	}

	trades := []*models.RawTrade{}
	if h.archive != nil {
		found, err := h.archive.GetRawTradesBySymbol(r.Context(), ticker, limit)
		if err != nil {
			log.Printf("Error loading trades for %s: %v", ticker, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if found != nil {
			trades = found
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ticker": ticker,
		"trades": trades,
	})
}

// GetSectors handles GET /sectors
func (h *Handler) GetSectors(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, universe.Sectors())
}

// GetGroups handles GET /groups
func (h *Handler) GetGroups(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, universe.Groups())
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
