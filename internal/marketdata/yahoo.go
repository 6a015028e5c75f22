package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/trogers1052/supershares/internal/models"
)

// DefaultYahooBaseURL is the public Yahoo Finance query host
const DefaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider fetches daily bars and company data from Yahoo Finance
type YahooProvider struct {
	baseURL string
	http    *http.Client
}

// NewYahooProvider creates a provider; timeout bounds every request
func NewYahooProvider(baseURL string, timeout time.Duration) *YahooProvider {
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	return &YahooProvider{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				GMTOffset int64 `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// FetchSeries returns daily bars for [start, end] inclusive, oldest first.
// Rows with a missing value are dropped and duplicate dates keep the last row.
func (y *YahooProvider) FetchSeries(ctx context.Context, ticker string, start, end time.Time) ([]models.Bar, error) {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.AddDate(0, 0, 1).Unix(), 10))
	q.Set("interval", "1d")
	q.Set("events", "history")

	var out chartResponse
	if err := y.get(ctx, "/v8/finance/chart/"+url.PathEscape(ticker), q, &out); err != nil {
		return nil, err
	}
	if out.Chart.Error != nil {
		return nil, fmt.Errorf("chart error for %s: %s", ticker, out.Chart.Error.Description)
	}
	if len(out.Chart.Result) == 0 || len(out.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	res := out.Chart.Result[0]
	quote := res.Indicators.Quote[0]
	var adj []*float64
	if len(res.Indicators.AdjClose) > 0 {
		adj = res.Indicators.AdjClose[0].AdjClose
	}

	byDate := make(map[time.Time]models.Bar, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		open, high, low := at(quote.Open, i), at(quote.High, i), at(quote.Low, i)
		closePrice := at(quote.Close, i)
		if closePrice == nil {
			closePrice = at(adj, i)
		}
		var volume *int64
		if i < len(quote.Volume) {
			volume = quote.Volume[i]
		}
		if open == nil || high == nil || low == nil || closePrice == nil || volume == nil {
			continue
		}

		date := time.Unix(ts+res.Meta.GMTOffset, 0).UTC().Truncate(24 * time.Hour)
		byDate[date] = models.Bar{
			Date:   date,
			Open:   *open,
			High:   *high,
			Low:    *low,
			Close:  *closePrice,
			Volume: *volume,
		}
	}

	bars := make([]models.Bar, 0, len(byDate))
	for _, b := range byDate {
		bars = append(bars, b)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

type rawValue struct {
	Raw *float64 `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]json.RawMessage `json:"result"`
		Error  *yahooError                  `json:"error"`
	} `json:"quoteSummary"`
}

func (y *YahooProvider) quoteSummary(ctx context.Context, ticker string, modules string) (map[string]json.RawMessage, error) {
	q := url.Values{}
	q.Set("modules", modules)

	var out quoteSummaryResponse
	if err := y.get(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(ticker), q, &out); err != nil {
		return nil, err
	}
	if out.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("quoteSummary error for %s: %s", ticker, out.QuoteSummary.Error.Description)
	}
	if len(out.QuoteSummary.Result) == 0 {
		return nil, nil
	}
	return out.QuoteSummary.Result[0], nil
}

// FetchFundamentals flattens the profile, price and statistics modules into one map.
// Formatted numbers are reduced to their raw value.
func (y *YahooProvider) FetchFundamentals(ctx context.Context, ticker string) (models.Fundamentals, error) {
	result, err := y.quoteSummary(ctx, ticker, "assetProfile,summaryDetail,defaultKeyStatistics,financialData,price,quoteType")
	if err != nil {
		return nil, err
	}

	info := models.Fundamentals{}
	for _, module := range result {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(module, &fields); err != nil {
			continue
		}
		for key, raw := range fields {
			if v, ok := flatten(raw); ok {
				info[key] = v
			}
		}
	}
	if len(info) == 0 {
		return nil, nil
	}
	return info, nil
}

func flatten(raw json.RawMessage) (interface{}, bool) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	switch t := v.(type) {
	case map[string]interface{}:
		r, ok := t["raw"]
		return r, ok
	case []interface{}:
		return nil, false
	case nil:
		return nil, false
	default:
		return t, true
	}
}

// FetchFinancials returns annual revenue and net income, oldest first
func (y *YahooProvider) FetchFinancials(ctx context.Context, ticker string) ([]models.FinancialYear, error) {
	result, err := y.quoteSummary(ctx, ticker, "incomeStatementHistory")
	if err != nil {
		return nil, err
	}

	var history struct {
		Statements []struct {
			EndDate      rawValue `json:"endDate"`
			TotalRevenue rawValue `json:"totalRevenue"`
			NetIncome    rawValue `json:"netIncome"`
		} `json:"incomeStatementHistory"`
	}
	raw, ok := result["incomeStatementHistory"]
	if !ok {
		return nil, nil
	}
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("failed to decode income statements for %s: %w", ticker, err)
	}

	years := make([]models.FinancialYear, 0, len(history.Statements))
	for _, s := range history.Statements {
		if s.EndDate.Raw == nil {
			continue
		}
		years = append(years, models.FinancialYear{
			EndDate:   time.Unix(int64(*s.EndDate.Raw), 0).UTC(),
			Revenue:   s.TotalRevenue.Raw,
			NetIncome: s.NetIncome.Raw,
		})
	}
	sort.Slice(years, func(i, j int) bool { return years[i].EndDate.Before(years[j].EndDate) })
	return years, nil
}

// FetchHolders returns the ownership breakdown and the institutional holder list
func (y *YahooProvider) FetchHolders(ctx context.Context, ticker string) (*models.Holders, error) {
	result, err := y.quoteSummary(ctx, ticker, "majorHoldersBreakdown,institutionOwnership")
	if err != nil {
		return nil, err
	}

	holders := &models.Holders{}

	if raw, ok := result["majorHoldersBreakdown"]; ok {
		var breakdown map[string]json.RawMessage
		if err := json.Unmarshal(raw, &breakdown); err == nil {
			for key, v := range breakdown {
				var rv rawValue
				if json.Unmarshal(v, &rv) == nil && rv.Raw != nil {
					if holders.Breakdown == nil {
						holders.Breakdown = make(map[string]float64)
					}
					holders.Breakdown[key] = *rv.Raw
				}
			}
		}
	}

	if raw, ok := result["institutionOwnership"]; ok {
		var ownership struct {
			List []struct {
				Organization string   `json:"organization"`
				PctHeld      rawValue `json:"pctHeld"`
				Position     rawValue `json:"position"`
				Value        rawValue `json:"value"`
				ReportDate   rawValue `json:"reportDate"`
			} `json:"ownershipList"`
		}
		if err := json.Unmarshal(raw, &ownership); err == nil {
			for _, o := range ownership.List {
				h := models.InstitutionalHolder{Holder: o.Organization}
				if o.PctHeld.Raw != nil {
					h.PctHeld = *o.PctHeld.Raw
				}
				if o.Position.Raw != nil {
					h.Shares = int64(*o.Position.Raw)
				}
				if o.Value.Raw != nil {
					h.Value = *o.Value.Raw
				}
				if o.ReportDate.Raw != nil {
					h.DateReported = time.Unix(int64(*o.ReportDate.Raw), 0).UTC()
				}
				holders.Institutional = append(holders.Institutional, h)
			}
		}
	}

	if len(holders.Breakdown) == 0 && len(holders.Institutional) == 0 {
		return nil, nil
	}
	return holders, nil
}

func (y *YahooProvider) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; supershares/1.0)")
	req.Header.Set("Accept", "application/json")

	resp, err := y.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
