// Package ban escalates repeated rate limit violations into temporary bans.
package ban

import (
	"context"
	"sort"
	"time"

	"github.com/rogerio-castellano/catalog-tracker/internal/obs"
)

// Guard counts strikes per client and bans clients that exceed the limit.
type Guard struct {
	store        Store
	maxStrikes   int64
	strikeWindow time.Duration
	banTTL       time.Duration
	now          func() time.Time
}

func NewGuard(store Store, maxStrikes int, strikeWindow, banTTL time.Duration) *Guard {
	return &Guard{
		store:        store,
		maxStrikes:   int64(maxStrikes),
		strikeWindow: strikeWindow,
		banTTL:       banTTL,
		now:          time.Now,
	}
}

// Banned reports whether target is currently banned.
func (g *Guard) Banned(ctx context.Context, target string) (bool, error) {
	return g.store.IsBanned(ctx, target)
}

// Strike records a violation by target on route and reports whether the
// violation turned into a ban.
func (g *Guard) Strike(ctx context.Context, target, route string) (bool, error) {
	strikes, err := g.store.IncrStrike(ctx, target, g.strikeWindow)
	if err != nil {
		return false, err
	}
	if g.maxStrikes <= 0 || strikes < g.maxStrikes {
		return false, nil
	}

	if err := g.store.SetBan(ctx, target, g.banTTL); err != nil {
		return false, err
	}
	obs.Logger.Warn("client_banned",
		"target", target,
		"route", route,
		"strikes", strikes,
		"ban_ttl", g.banTTL.String(),
	)
	entry := LogEntry{Target: target, Route: route, Strikes: strikes, Time: g.now()}
	if err := g.store.AppendLog(ctx, entry); err != nil {
		obs.Logger.Error("ban_log_append_failed", "error", err)
	}
	return true, nil
}

// Count is a key with the number of bans attributed to it.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Summary aggregates a batch of ban log entries.
type Summary struct {
	Total    int     `json:"total"`
	ByRoute  []Count `json:"by_route"`
	ByTarget []Count `json:"by_target"`
}

// Summarize groups entries by route and by target, most frequent first.
func Summarize(entries []LogEntry) Summary {
	routes := make(map[string]int)
	targets := make(map[string]int)
	for _, e := range entries {
		routes[e.Route]++
		targets[e.Target]++
	}
	return Summary{
		Total:    len(entries),
		ByRoute:  sortedCounts(routes),
		ByTarget: sortedCounts(targets),
	}
}

func sortedCounts(m map[string]int) []Count {
	counts := make([]Count, 0, len(m))
	for k, v := range m {
		counts = append(counts, Count{Key: k, Count: v})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})
	return counts
}

// FlushSummary drains the ban log and writes its summary to the log.
func (g *Guard) FlushSummary(ctx context.Context) (Summary, error) {
	entries, err := g.store.DrainLog(ctx)
	if err != nil {
		return Summary{}, err
	}
	s := Summarize(entries)
	if s.Total > 0 {
		obs.Logger.Info("ban_summary", "total", s.Total, "by_route", s.ByRoute, "by_target", s.ByTarget)
	}
	return s, nil
}

// StartSummaryLoop flushes the ban summary every interval until ctx is done.
func (g *Guard) StartSummaryLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := g.FlushSummary(ctx); err != nil {
				obs.Logger.Error("ban_summary_failed", "error", err)
			}
		}
	}
}
