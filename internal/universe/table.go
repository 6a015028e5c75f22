package universe

// entry is the compact source form of an instrument
type entry struct {
	ticker string
	name   string
	sector string
	market string
	tags   []string
	query  string
}

const (
	usa   = "USA"
	india = "INDIA"
)

var table = []entry{
	// ETFs & Indexes (USA)
	{"SPY", "SPDR S&P 500 ETF Trust", "ETFs & Indexes", usa, []string{"ETF", "Index"}, "SPY ETF"},
	{"QQQ", "Invesco QQQ Trust", "ETFs & Indexes", usa, []string{"ETF", "Index", "Nasdaq"}, "QQQ ETF"},
	{"DIA", "SPDR Dow Jones Industrial Average ETF Trust", "ETFs & Indexes", usa, []string{"ETF", "Index"}, "DIA ETF"},
	{"IWM", "iShares Russell 2000 ETF", "ETFs & Indexes", usa, []string{"ETF", "Small Cap"}, "IWM ETF"},
	{"VTI", "Vanguard Total Stock Market ETF", "ETFs & Indexes", usa, []string{"ETF", "Total Market"}, "VTI ETF"},
	{"VOO", "Vanguard S&P 500 ETF", "ETFs & Indexes", usa, []string{"ETF", "Index"}, "VOO ETF"},
	{"VXUS", "Vanguard Total International Stock ETF", "ETFs & Indexes", usa, []string{"ETF", "International"}, "VXUS ETF"},
	{"TLT", "iShares 20+ Year Treasury Bond ETF", "ETFs & Indexes", usa, []string{"ETF", "Bonds"}, "TLT ETF"},
	{"IEF", "iShares 7-10 Year Treasury Bond ETF", "ETFs & Indexes", usa, []string{"ETF", "Bonds"}, "IEF ETF"},
	{"GLD", "SPDR Gold Shares", "ETFs & Indexes", usa, []string{"ETF", "Gold"}, "GLD ETF"},
	{"SLV", "iShares Silver Trust", "ETFs & Indexes", usa, []string{"ETF", "Silver"}, "SLV ETF"},
	{"USO", "United States Oil Fund", "ETFs & Indexes", usa, []string{"ETF", "Oil"}, "USO ETF"},
	{"XLK", "Technology Select Sector SPDR Fund", "ETFs & Indexes", usa, []string{"ETF", "Sector", "Tech"}, "XLK ETF"},
	{"XLF", "Financial Select Sector SPDR Fund", "ETFs & Indexes", usa, []string{"ETF", "Sector", "Financials"}, "XLF ETF"},
	{"XLE", "Energy Select Sector SPDR Fund", "ETFs & Indexes", usa, []string{"ETF", "Sector", "Energy"}, "XLE ETF"},
	{"XLV", "Health Care Select Sector SPDR Fund", "ETFs & Indexes", usa, []string{"ETF", "Sector", "Healthcare"}, "XLV ETF"},
	{"XLI", "Industrial Select Sector SPDR Fund", "ETFs & Indexes", usa, []string{"ETF", "Sector", "Industrials"}, "XLI ETF"},
	{"XLP", "Consumer Staples Select Sector SPDR Fund", "ETFs & Indexes", usa, []string{"ETF", "Sector", "Consumer"}, "XLP ETF"},
	{"XLY", "Consumer Discretionary Select Sector SPDR Fund", "ETFs & Indexes", usa, []string{"ETF", "Sector", "Consumer"}, "XLY ETF"},

	// Big Tech (USA)
	{"AAPL", "Apple Inc.", "Big Tech", usa, []string{"Mega-cap"}, "Apple stock"},
	{"MSFT", "Microsoft Corporation", "Big Tech", usa, []string{"Mega-cap"}, "Microsoft stock"},
	{"GOOGL", "Alphabet Inc. (Class A)", "Big Tech", usa, []string{"Mega-cap"}, "Alphabet GOOGL stock"},
	{"AMZN", "Amazon.com, Inc.", "Big Tech", usa, []string{"Mega-cap"}, "Amazon stock"},
	{"META", "Meta Platforms, Inc.", "Big Tech", usa, []string{"Mega-cap"}, "Meta stock"},
	{"TSLA", "Tesla, Inc.", "Big Tech", usa, []string{"Auto/Tech"}, "Tesla stock"},
	{"NFLX", "Netflix, Inc.", "Big Tech", usa, []string{"Streaming"}, "Netflix stock"},
	{"ORCL", "Oracle Corporation", "Big Tech", usa, []string{"Software"}, "Oracle stock"},
	{"ADBE", "Adobe Inc.", "Big Tech", usa, []string{"Software"}, "Adobe stock"},
	{"CRM", "Salesforce, Inc.", "Big Tech", usa, []string{"Software"}, "Salesforce stock"},
	{"NOW", "ServiceNow, Inc.", "Big Tech", usa, []string{"Software"}, "ServiceNow stock"},
	{"INTU", "Intuit Inc.", "Big Tech", usa, []string{"Software"}, "Intuit stock"},

	// Semiconductors (USA)
	{"NVDA", "NVIDIA Corporation", "Semiconductors", usa, []string{"AI"}, "NVIDIA stock"},
	{"AMD", "Advanced Micro Devices, Inc.", "Semiconductors", usa, []string{"CPU/GPU"}, "AMD stock"},
	{"INTC", "Intel Corporation", "Semiconductors", usa, []string{"CPU"}, "Intel stock"},
	{"TSM", "Taiwan Semiconductor Manufacturing Company", "Semiconductors", usa, []string{"Foundry"}, "TSM stock"},
	{"AVGO", "Broadcom Inc.", "Semiconductors", usa, []string{"Infra"}, "Broadcom stock"},
	{"QCOM", "Qualcomm Incorporated", "Semiconductors", usa, []string{"Mobile"}, "Qualcomm stock"},
	{"ASML", "ASML Holding N.V.", "Semiconductors", usa, []string{"Lithography"}, "ASML stock"},
	{"MU", "Micron Technology, Inc.", "Semiconductors", usa, []string{"Memory"}, "Micron stock"},
	{"AMAT", "Applied Materials, Inc.", "Semiconductors", usa, []string{"Equipment"}, "Applied Materials stock"},
	{"LRCX", "Lam Research Corporation", "Semiconductors", usa, []string{"Equipment"}, "Lam Research stock"},
	{"KLAC", "KLA Corporation", "Semiconductors", usa, []string{"Equipment"}, "KLA stock"},
	{"MRVL", "Marvell Technology, Inc.", "Semiconductors", usa, []string{"Networking"}, "Marvell stock"},

	// Financials (USA)
	{"JPM", "JPMorgan Chase & Co.", "Financials", usa, []string{"Bank"}, "JPM stock"},
	{"BAC", "Bank of America Corporation", "Financials", usa, []string{"Bank"}, "BAC stock"},
	{"WFC", "Wells Fargo & Company", "Financials", usa, []string{"Bank"}, "WFC stock"},
	{"GS", "Goldman Sachs Group, Inc.", "Financials", usa, []string{"Investment Bank"}, "Goldman Sachs stock"},
	{"MS", "Morgan Stanley", "Financials", usa, []string{"Investment Bank"}, "Morgan Stanley stock"},
	{"V", "Visa Inc.", "Financials", usa, []string{"Payments"}, "Visa stock"},
	{"MA", "Mastercard Incorporated", "Financials", usa, []string{"Payments"}, "Mastercard stock"},
	{"AXP", "American Express Company", "Financials", usa, []string{"Payments"}, "American Express stock"},
	{"BLK", "BlackRock, Inc.", "Financials", usa, []string{"Asset Mgmt"}, "BlackRock stock"},
	{"SCHW", "Charles Schwab Corporation", "Financials", usa, []string{"Broker"}, "Charles Schwab stock"},
	{"C", "Citigroup Inc.", "Financials", usa, []string{"Bank"}, "Citigroup stock"},
	{"BRK-B", "Berkshire Hathaway Inc. (Class B)", "Financials", usa, []string{"Conglomerate", "Mega-cap"}, "Berkshire Hathaway stock"},

	// Consumer (USA)
	{"WMT", "Walmart Inc.", "Consumer", usa, []string{"Retail"}, "Walmart stock"},
	{"COST", "Costco Wholesale Corporation", "Consumer", usa, []string{"Retail"}, "Costco stock"},
	{"HD", "The Home Depot, Inc.", "Consumer", usa, []string{"Retail"}, "Home Depot stock"},
	{"NKE", "NIKE, Inc.", "Consumer", usa, []string{"Apparel"}, "Nike stock"},
	{"MCD", "McDonald's Corporation", "Consumer", usa, []string{"Restaurants"}, "McDonalds stock"},
	{"SBUX", "Starbucks Corporation", "Consumer", usa, []string{"Restaurants"}, "Starbucks stock"},
	{"DIS", "The Walt Disney Company", "Consumer", usa, []string{"Media"}, "Disney stock"},
	{"TGT", "Target Corporation", "Consumer", usa, []string{"Retail"}, "Target stock"},
	{"LOW", "Lowe's Companies, Inc.", "Consumer", usa, []string{"Retail"}, "Lowes stock"},
	{"KO", "The Coca-Cola Company", "Consumer", usa, []string{"Beverages"}, "Coca Cola stock"},
	{"PEP", "PepsiCo, Inc.", "Consumer", usa, []string{"Beverages"}, "Pepsi stock"},
	{"PG", "Procter & Gamble Company", "Consumer", usa, []string{"Staples"}, "Procter Gamble stock"},

	// Healthcare (USA)
	{"JNJ", "Johnson & Johnson", "Healthcare", usa, []string{"Pharma"}, "Johnson and Johnson stock"},
	{"PFE", "Pfizer Inc.", "Healthcare", usa, []string{"Pharma"}, "Pfizer stock"},
	{"MRK", "Merck & Co., Inc.", "Healthcare", usa, []string{"Pharma"}, "Merck stock"},
	{"LLY", "Eli Lilly and Company", "Healthcare", usa, []string{"Pharma"}, "Eli Lilly stock"},
	{"UNH", "UnitedHealth Group Incorporated", "Healthcare", usa, []string{"Insurance"}, "UnitedHealth stock"},
	{"ABBV", "AbbVie Inc.", "Healthcare", usa, []string{"Pharma"}, "AbbVie stock"},
	{"TMO", "Thermo Fisher Scientific Inc.", "Healthcare", usa, []string{"Tools"}, "Thermo Fisher stock"},
	{"DHR", "Danaher Corporation", "Healthcare", usa, []string{"Tools"}, "Danaher stock"},
	{"ISRG", "Intuitive Surgical, Inc.", "Healthcare", usa, []string{"MedTech"}, "Intuitive Surgical stock"},
	{"MDT", "Medtronic plc", "Healthcare", usa, []string{"MedTech"}, "Medtronic stock"},

	// Energy (USA)
	{"XOM", "Exxon Mobil Corporation", "Energy", usa, []string{"Oil & Gas"}, "Exxon stock"},
	{"CVX", "Chevron Corporation", "Energy", usa, []string{"Oil & Gas"}, "Chevron stock"},
	{"COP", "ConocoPhillips", "Energy", usa, []string{"Oil & Gas"}, "ConocoPhillips stock"},
	{"SLB", "Schlumberger Limited", "Energy", usa, []string{"Services"}, "Schlumberger stock"},
	{"EOG", "EOG Resources, Inc.", "Energy", usa, []string{"E&P"}, "EOG Resources stock"},
	{"OXY", "Occidental Petroleum Corporation", "Energy", usa, []string{"Oil & Gas"}, "Occidental stock"},

	// Industrials (USA)
	{"CAT", "Caterpillar Inc.", "Industrials", usa, []string{"Machinery"}, "Caterpillar stock"},
	{"DE", "Deere & Company", "Industrials", usa, []string{"Machinery"}, "Deere stock"},
	{"BA", "The Boeing Company", "Industrials", usa, []string{"Aerospace"}, "Boeing stock"},
	{"GE", "GE Aerospace", "Industrials", usa, []string{"Aerospace"}, "GE Aerospace stock"},
	{"HON", "Honeywell International Inc.", "Industrials", usa, []string{"Conglomerate"}, "Honeywell stock"},
	{"UPS", "United Parcel Service, Inc.", "Industrials", usa, []string{"Logistics"}, "UPS stock"},
	{"FDX", "FedEx Corporation", "Industrials", usa, []string{"Logistics"}, "FedEx stock"},
	{"LMT", "Lockheed Martin Corporation", "Industrials", usa, []string{"Defense"}, "Lockheed Martin stock"},
	{"NOC", "Northrop Grumman Corporation", "Industrials", usa, []string{"Defense"}, "Northrop Grumman stock"},
	{"RTX", "RTX Corporation", "Industrials", usa, []string{"Defense"}, "RTX stock"},

	// Index / ETFs (India)
	{"^NSEI", "NIFTY 50 Index", "ETFs & Indexes", india, []string{"Index"}, "NIFTY 50 index"},
	{"^NSEBANK", "NIFTY BANK Index", "ETFs & Indexes", india, []string{"Index"}, "NIFTY BANK index"},
	{"NIFTYBEES.NS", "Nippon India ETF Nifty 50 BeES", "ETFs & Indexes", india, []string{"ETF", "Index"}, "NIFTYBEES ETF"},
	{"BANKBEES.NS", "Nippon India ETF Bank BeES", "ETFs & Indexes", india, []string{"ETF", "Index", "Bank"}, "BANKBEES ETF"},
	{"JUNIORBEES.NS", "Nippon India ETF Nifty Next 50 Junior BeES", "ETFs & Indexes", india, []string{"ETF", "Index"}, "JUNIORBEES ETF"},

	// Conglomerates (India)
	{"RELIANCE.NS", "Reliance Industries", "Energy", india, []string{"Mega-cap", "Oil & Gas", "Retail"}, "Reliance Industries stock"},
	{"TMCV.NS", "Tata Motors", "Industrials", india, []string{"Auto"}, "Tata Motors stock"},
	{"TATASTEEL.NS", "Tata Steel", "Industrials", india, []string{"Materials"}, "Tata Steel stock"},
	{"TCS.NS", "Tata Consultancy Services", "Big Tech", india, []string{"IT", "Mega-cap"}, "TCS stock"},
	{"INFY.NS", "Infosys", "Big Tech", india, []string{"IT"}, "Infosys stock"},
	{"WIPRO.NS", "Wipro", "Big Tech", india, []string{"IT"}, "Wipro stock"},
	{"HCLTECH.NS", "HCL Technologies", "Big Tech", india, []string{"IT"}, "HCLTech stock"},
	{"TECHM.NS", "Tech Mahindra", "Big Tech", india, []string{"IT"}, "Tech Mahindra stock"},

	// Financials (India)
	{"HDFCBANK.NS", "HDFC Bank", "Financials", india, []string{"Bank", "Mega-cap"}, "HDFC Bank stock"},
	{"ICICIBANK.NS", "ICICI Bank", "Financials", india, []string{"Bank"}, "ICICI Bank stock"},
	{"SBIN.NS", "State Bank of India", "Financials", india, []string{"Bank"}, "SBI stock"},
	{"AXISBANK.NS", "Axis Bank", "Financials", india, []string{"Bank"}, "Axis Bank stock"},
	{"KOTAKBANK.NS", "Kotak Mahindra Bank", "Financials", india, []string{"Bank"}, "Kotak Bank stock"},
	{"INDUSINDBK.NS", "IndusInd Bank", "Financials", india, []string{"Bank"}, "IndusInd Bank stock"},
	{"BAJFINANCE.NS", "Bajaj Finance", "Financials", india, []string{"NBFC"}, "Bajaj Finance stock"},
	{"BAJAJFINSV.NS", "Bajaj Finserv", "Financials", india, []string{"NBFC"}, "Bajaj Finserv stock"},
	{"HDFCLIFE.NS", "HDFC Life Insurance", "Financials", india, []string{"Insurance"}, "HDFC Life stock"},
	{"SBILIFE.NS", "SBI Life Insurance", "Financials", india, []string{"Insurance"}, "SBI Life stock"},
	{"LICI.NS", "Life Insurance Corporation (LIC)", "Financials", india, []string{"Insurance"}, "LIC stock India"},

	// Consumer (India)
	{"ITC.NS", "ITC", "Consumer", india, []string{"FMCG"}, "ITC stock"},
	{"HINDUNILVR.NS", "Hindustan Unilever", "Consumer", india, []string{"FMCG"}, "HUL stock"},
	{"NESTLEIND.NS", "Nestle India", "Consumer", india, []string{"FMCG"}, "Nestle India stock"},
	{"BRITANNIA.NS", "Britannia Industries", "Consumer", india, []string{"FMCG"}, "Britannia stock"},
	{"TATACONSUM.NS", "Tata Consumer Products", "Consumer", india, []string{"FMCG"}, "Tata Consumer stock"},
	{"ASIANPAINT.NS", "Asian Paints", "Consumer", india, []string{"Home"}, "Asian Paints stock"},
	{"MARICO.NS", "Marico", "Consumer", india, []string{"FMCG"}, "Marico stock"},
	{"DABUR.NS", "Dabur India", "Consumer", india, []string{"FMCG"}, "Dabur stock"},
	{"TITAN.NS", "Titan Company", "Consumer", india, []string{"Retail"}, "Titan stock"},
	{"DMART.NS", "Avenue Supermarts (DMart)", "Consumer", india, []string{"Retail"}, "DMart stock"},
	{"BHARTIARTL.NS", "Bharti Airtel", "Consumer", india, []string{"Telecom"}, "Bharti Airtel stock"},

	// Healthcare / Pharma (India)
	{"SUNPHARMA.NS", "Sun Pharmaceutical", "Healthcare", india, []string{"Pharma"}, "Sun Pharma stock"},
	{"DRREDDY.NS", "Dr. Reddy's Laboratories", "Healthcare", india, []string{"Pharma"}, "Dr Reddy stock"},
	{"CIPLA.NS", "Cipla", "Healthcare", india, []string{"Pharma"}, "Cipla stock"},
	{"DIVISLAB.NS", "Divi's Laboratories", "Healthcare", india, []string{"Pharma"}, "Divis Labs stock"},
	{"APOLLOHOSP.NS", "Apollo Hospitals", "Healthcare", india, []string{"Hospitals"}, "Apollo Hospitals stock"},
	{"MAXHEALTH.NS", "Max Healthcare", "Healthcare", india, []string{"Hospitals"}, "Max Healthcare stock"},

	// Industrials / Infra (India)
	{"LT.NS", "Larsen & Toubro", "Industrials", india, []string{"Infra", "Mega-cap"}, "Larsen and Toubro stock"},
	{"ULTRACEMCO.NS", "UltraTech Cement", "Industrials", india, []string{"Cement"}, "UltraTech Cement stock"},
	{"GRASIM.NS", "Grasim Industries", "Industrials", india, []string{"Materials"}, "Grasim stock"},
	{"ADANIPORTS.NS", "Adani Ports & SEZ", "Industrials", india, []string{"Logistics"}, "Adani Ports stock"},
	{"ADANIENT.NS", "Adani Enterprises", "Industrials", india, []string{"Conglomerate"}, "Adani Enterprises stock"},
	{"SIEMENS.NS", "Siemens India", "Industrials", india, []string{"Electrical"}, "Siemens India stock"},
	{"ABB.NS", "ABB India", "Industrials", india, []string{"Electrical"}, "ABB India stock"},

	// Auto (India)
	{"MARUTI.NS", "Maruti Suzuki", "Industrials", india, []string{"Auto"}, "Maruti Suzuki stock"},
	{"M&M.NS", "Mahindra & Mahindra", "Industrials", india, []string{"Auto"}, "Mahindra and Mahindra stock"},
	{"EICHERMOT.NS", "Eicher Motors", "Industrials", india, []string{"Auto", "2W"}, "Eicher Motors stock"},
	{"BAJAJ-AUTO.NS", "Bajaj Auto", "Industrials", india, []string{"Auto", "2W"}, "Bajaj Auto stock"},
	{"HEROMOTOCO.NS", "Hero MotoCorp", "Industrials", india, []string{"Auto", "2W"}, "Hero MotoCorp stock"},

	// Energy (India)
	{"ONGC.NS", "Oil and Natural Gas Corporation (ONGC)", "Energy", india, []string{"Oil & Gas"}, "ONGC stock"},
	{"IOC.NS", "Indian Oil Corporation", "Energy", india, []string{"Oil & Gas"}, "Indian Oil stock"},
	{"BPCL.NS", "Bharat Petroleum (BPCL)", "Energy", india, []string{"Oil & Gas"}, "BPCL stock"},
	{"POWERGRID.NS", "Power Grid Corporation", "Energy", india, []string{"Utilities"}, "PowerGrid stock"},
	{"NTPC.NS", "NTPC", "Energy", india, []string{"Utilities"}, "NTPC stock"},
	{"TATAPOWER.NS", "Tata Power", "Energy", india, []string{"Utilities"}, "Tata Power stock"},

	// Materials / Metals (India)
	{"HINDALCO.NS", "Hindalco Industries", "Industrials", india, []string{"Materials"}, "Hindalco stock"},
	{"JSWSTEEL.NS", "JSW Steel", "Industrials", india, []string{"Materials"}, "JSW Steel stock"},
	{"COALINDIA.NS", "Coal India", "Energy", india, []string{"Commodities"}, "Coal India stock"},

	// Misc large caps (India)
	{"IRCTC.NS", "IRCTC", "Consumer", india, []string{"Travel"}, "IRCTC stock"},
	{"HAL.NS", "Hindustan Aeronautics (HAL)", "Industrials", india, []string{"Defense"}, "HAL stock India"},
	{"BEL.NS", "Bharat Electronics (BEL)", "Industrials", india, []string{"Defense"}, "BEL stock India"},
}
