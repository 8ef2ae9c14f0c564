package tracker

import (
	"fmt"
	"strings"
)

// parseEventTicker splits an NFL game event ticker into its away and
// home team codes. Tickers look like KXNFLGAME-26JAN10GBCHI: a series
// prefix, then a 7-character date, then the two team codes with the
// away team first. Team codes are 2 or 3 characters, so the combined
// length disambiguates the split everywhere except 5, where away codes
// are 2 characters far more often than 3.
func parseEventTicker(eventTicker string) (away, home string, err error) {
	parts := strings.Split(eventTicker, "-")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("event ticker %q: want exactly one dash", eventTicker)
	}

	suffix := parts[1]
	if len(suffix) < 11 { // 7 date chars plus at least 2+2 team chars
		return "", "", fmt.Errorf("event ticker %q: suffix too short", eventTicker)
	}

	teams := suffix[7:]
	switch len(teams) {
	case 4:
		return teams[:2], teams[2:], nil
	case 5:
		return teams[:2], teams[2:], nil
	case 6:
		return teams[:3], teams[3:], nil
	default:
		return teams[:len(teams)/2], teams[len(teams)/2:], nil
	}
}

// marketTeam extracts the team code from a market ticker, which appends
// the side's team as a final dash-separated segment.
func marketTeam(marketTicker string) string {
	if i := strings.LastIndex(marketTicker, "-"); i >= 0 {
		return marketTicker[i+1:]
	}
	return ""
}
