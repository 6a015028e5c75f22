package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{
  "chart": {
    "result": [{
      "meta": {"gmtoffset": 0},
      "timestamp": [1704240000, 1704153600, 1704326400, 1704326400, 1704412800],
      "indicators": {
        "quote": [{
          "open":   [11.0, 10.0, 12.0, 12.5, null],
          "high":   [12.0, 11.0, 13.0, 13.5, 14.0],
          "low":    [10.0,  9.0, 11.0, 11.5, 12.0],
          "close":  [11.5, 10.5, 12.5, 13.0, 13.0],
          "volume": [200,   100,  300,  350,  400]
        }],
        "adjclose": [{"adjclose": [11.5, 10.5, 12.5, 13.0, 13.0]}]
      }
    }],
    "error": null
  }
}`

func TestYahooProvider_FetchSeries(t *testing.T) {
	var gotPath, gotPeriod2 string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPeriod2 = r.URL.Query().Get("period2")
		w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	p := NewYahooProvider(srv.URL, time.Second)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	bars, err := p.FetchSeries(context.Background(), "AAPL", start, end)
	require.NoError(t, err)

	assert.Equal(t, "/v8/finance/chart/AAPL", gotPath)
	assert.Equal(t, "1704499200", gotPeriod2, "end date is inclusive")

	// null open dropped, duplicate 2024-01-04 keeps the last row, sorted ascending
	require.Len(t, bars, 3)
	assert.True(t, bars[0].Date.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 10.5, bars[0].Close)
	assert.Equal(t, 11.5, bars[1].Close)
	assert.Equal(t, 13.0, bars[2].Close)
	assert.Equal(t, int64(350), bars[2].Volume)
}

func TestYahooProvider_Errors(t *testing.T) {
	t.Run("non 200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewYahooProvider(srv.URL, time.Second).FetchSeries(context.Background(), "NOPE", time.Now(), time.Now())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 404")
	})

	t.Run("chart error payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
		}))
		defer srv.Close()

		_, err := NewYahooProvider(srv.URL, time.Second).FetchSeries(context.Background(), "NOPE", time.Now(), time.Now())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No data found")
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		_, err := NewYahooProvider(srv.URL, 20*time.Millisecond).FetchSeries(context.Background(), "SLOW", time.Now(), time.Now())
		require.Error(t, err)
	})
}

func TestYahooProvider_QuoteSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("modules") {
		case "incomeStatementHistory":
			w.Write([]byte(`{"quoteSummary":{"result":[{"incomeStatementHistory":{"incomeStatementHistory":[
				{"endDate":{"raw":1727654400},"totalRevenue":{"raw":391035000000},"netIncome":{"raw":93736000000}},
				{"endDate":{"raw":1696032000},"totalRevenue":{"raw":383285000000},"netIncome":{"raw":96995000000}}
			]}}],"error":null}}`))
		case "majorHoldersBreakdown,institutionOwnership":
			w.Write([]byte(`{"quoteSummary":{"result":[{
				"majorHoldersBreakdown":{"insidersPercentHeld":{"raw":0.02},"institutionsPercentHeld":{"raw":0.61}},
				"institutionOwnership":{"ownershipList":[{"organization":"Vanguard","pctHeld":{"raw":0.08},"position":{"raw":1300000000},"value":{"raw":250000000000},"reportDate":{"raw":1719705600}}]}
			}],"error":null}}`))
		default:
			w.Write([]byte(`{"quoteSummary":{"result":[{
				"assetProfile":{"sector":"Technology","longBusinessSummary":"Makes phones.","companyOfficers":[]},
				"summaryDetail":{"marketCap":{"raw":3400000000000,"fmt":"3.4T"},"trailingPE":{"raw":33.1,"fmt":"33.10"}},
				"price":{"longName":"Apple Inc.","currency":"USD"}
			}],"error":null}}`))
		}
	}))
	defer srv.Close()

	p := NewYahooProvider(srv.URL, time.Second)
	ctx := context.Background()

	t.Run("fundamentals are flattened", func(t *testing.T) {
		info, err := p.FetchFundamentals(ctx, "AAPL")
		require.NoError(t, err)
		assert.Equal(t, "Technology", info["sector"])
		assert.Equal(t, "Apple Inc.", info["longName"])
		assert.Equal(t, 33.1, info["trailingPE"])
		assert.Equal(t, 3.4e12, info["marketCap"])
		assert.NotContains(t, info, "companyOfficers")
	})

	t.Run("financials are oldest first", func(t *testing.T) {
		years, err := p.FetchFinancials(ctx, "AAPL")
		require.NoError(t, err)
		require.Len(t, years, 2)
		assert.True(t, years[0].EndDate.Before(years[1].EndDate))
		require.NotNil(t, years[1].Revenue)
		assert.Equal(t, 391035000000.0, *years[1].Revenue)
	})

	t.Run("holders", func(t *testing.T) {
		h, err := p.FetchHolders(ctx, "AAPL")
		require.NoError(t, err)
		require.NotNil(t, h)
		assert.Equal(t, 0.61, h.Breakdown["institutionsPercentHeld"])
		require.Len(t, h.Institutional, 1)
		assert.Equal(t, "Vanguard", h.Institutional[0].Holder)
		assert.Equal(t, int64(1300000000), h.Institutional[0].Shares)
	})
}
