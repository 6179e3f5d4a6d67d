// Package yahoo provides a client for the Yahoo Finance chart API.
//
// Endpoint:
//   - https://query1.finance.yahoo.com/v8/finance/chart/{symbol}
//
// The client fetches daily adjusted closes and live quotes. It is
// unauthenticated, rate limited client side, and retries transient
// failures with exponential backoff.
package yahoo
