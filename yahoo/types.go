package yahoo

// chartResponse from GET /v8/finance/chart/{symbol}
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

// chartError is the API's in-envelope failure, delivered with a 2xx or a
// 404 alike.
type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// chartResult is one symbol's series. Bars with no trade come through as
// JSON nulls, hence the pointer elements.
type chartResult struct {
	Meta struct {
		Currency           string  `json:"currency"`
		Symbol             string  `json:"symbol"`
		ExchangeName       string  `json:"exchangeName"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
		Adjclose []struct {
			Adjclose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

// adjcloses returns the adjusted close series, falling back to the raw
// closes when the API omits it.
func (r *chartResult) adjcloses() []*float64 {
	if len(r.Indicators.Adjclose) > 0 && len(r.Indicators.Adjclose[0].Adjclose) > 0 {
		return r.Indicators.Adjclose[0].Adjclose
	}
	if len(r.Indicators.Quote) > 0 {
		return r.Indicators.Quote[0].Close
	}
	return nil
}
