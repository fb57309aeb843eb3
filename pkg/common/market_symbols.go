package common

const (
	MARKET_FOREX       = "forex"
	MARKET_METALS      = "metals"
	MARKET_CRYPTO      = "crypto"
	MARKET_INDICES     = "indices"
	MARKET_STOCKS      = "stocks"
	MARKET_COMMODITIES = "commodities"
)

type MarketSymbol struct {
	Symbol   string `json:"symbol"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

func GetMarketCategories() []string {
	return []string{
		MARKET_FOREX,
		MARKET_METALS,
		MARKET_CRYPTO,
		MARKET_INDICES,
		MARKET_STOCKS,
		MARKET_COMMODITIES,
	}
}

var marketSymbols = map[string][][2]string{
	MARKET_FOREX: {
		{"EUR/USD", "Euro / US Dollar"},
		{"GBP/USD", "British Pound / US Dollar"},
		{"USD/JPY", "US Dollar / Japanese Yen"},
		{"USD/CHF", "US Dollar / Swiss Franc"},
		{"USD/CAD", "US Dollar / Canadian Dollar"},
		{"AUD/USD", "Australian Dollar / US Dollar"},
		{"NZD/USD", "New Zealand Dollar / US Dollar"},
		{"EUR/GBP", "Euro / British Pound"},
		{"EUR/JPY", "Euro / Japanese Yen"},
		{"GBP/JPY", "British Pound / Japanese Yen"},
		{"AUD/JPY", "Australian Dollar / Japanese Yen"},
		{"NZD/JPY", "New Zealand Dollar / Japanese Yen"},
		{"CHF/JPY", "Swiss Franc / Japanese Yen"},
		{"EUR/AUD", "Euro / Australian Dollar"},
		{"EUR/CAD", "Euro / Canadian Dollar"},
		{"EUR/CHF", "Euro / Swiss Franc"},
	},
	MARKET_METALS: {
		{"XAU/USD", "Gold / US Dollar"},
		{"XAG/USD", "Silver / US Dollar"},
		{"XPT/USD", "Platinum / US Dollar"},
		{"XPD/USD", "Palladium / US Dollar"},
		{"COPPER", "Copper Futures"},
		{"ALUMINUM", "Aluminum Futures"},
	},
	MARKET_CRYPTO: {
		{"BTC/USD", "Bitcoin / US Dollar"},
		{"ETH/USD", "Ethereum / US Dollar"},
		{"XRP/USD", "Ripple / US Dollar"},
		{"LTC/USD", "Litecoin / US Dollar"},
		{"BCH/USD", "Bitcoin Cash / US Dollar"},
		{"ADA/USD", "Cardano / US Dollar"},
		{"DOT/USD", "Polkadot / US Dollar"},
		{"LINK/USD", "Chainlink / US Dollar"},
		{"BNB/USD", "Binance Coin / US Dollar"},
		{"SOL/USD", "Solana / US Dollar"},
	},
	MARKET_INDICES: {
		{"US30", "Dow Jones Industrial Average"},
		{"SPX500", "S&P 500"},
		{"NAS100", "Nasdaq 100"},
		{"UK100", "FTSE 100"},
		{"GER40", "DAX 40"},
		{"FRA40", "CAC 40"},
		{"JPN225", "Nikkei 225"},
		{"AUS200", "ASX 200"},
		{"HK50", "Hang Seng"},
	},
	MARKET_STOCKS: {
		{"AAPL", "Apple Inc."},
		{"MSFT", "Microsoft Corporation"},
		{"AMZN", "Amazon.com Inc."},
		{"GOOGL", "Alphabet Inc."},
		{"META", "Meta Platforms Inc."},
		{"TSLA", "Tesla Inc."},
		{"NVDA", "NVIDIA Corporation"},
		{"JPM", "JPMorgan Chase & Co."},
		{"V", "Visa Inc."},
		{"WMT", "Walmart Inc."},
	},
	MARKET_COMMODITIES: {
		{"CL", "Crude Oil Futures"},
		{"NG", "Natural Gas Futures"},
		{"HO", "Heating Oil Futures"},
		{"RB", "RBOB Gasoline Futures"},
		{"ZC", "Corn Futures"},
		{"ZW", "Wheat Futures"},
		{"ZS", "Soybean Futures"},
		{"KC", "Coffee Futures"},
		{"SB", "Sugar Futures"},
	},
}

// GetMarketSymbols lists the catalog for one category, or every category in
// catalog order when category is empty. Unknown categories yield nothing.
func GetMarketSymbols(category string) []MarketSymbol {
	categories := GetMarketCategories()
	if category != "" {
		categories = []string{category}
	}

	out := []MarketSymbol{}
	for _, c := range categories {
		for _, s := range marketSymbols[c] {
			out = append(out, MarketSymbol{Symbol: s[0], Category: c, Name: s[1]})
		}
	}
	return out
}
