// Package api provides a read-only client for the Kalshi trade API.
//
// Endpoints used:
//   - GET /markets                       (discovery, filtered by series)
//   - GET /markets/{ticker}              (open interest and metadata)
//   - GET /markets/{ticker}/orderbook    (raw YES/NO ledgers)
//
// Market data requires no authentication. Production base URL:
// https://api.elections.kalshi.com/trade-api/v2
package api
