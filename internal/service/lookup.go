package service

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/susrithamallela/foodvision/internal/normalize"
)

// MatchTier identifies which matching strategy produced a lookup result.
type MatchTier string

const (
	TierExact     MatchTier = "exact"
	TierSubstring MatchTier = "substring"
	TierFuzzy     MatchTier = "fuzzy"
	TierDefault   MatchTier = "default"
)

// LookupResult is returned by Lookup.
type LookupResult struct {
	CaloriesPer100g float64
	// MatchedName is the display name of the catalog entry that matched,
	// empty for the default tier.
	MatchedName string
	Tier        MatchTier
	Confidence  float64
}

// similarity returns a 0.0–1.0 confidence score between two strings using
// Levenshtein distance: 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// runeSeq splits a string into per-rune elements for the sequence matcher.
func runeSeq(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Lookup resolves a raw food label to calories per 100g. The label is
// normalized, then four tiers run in order, each terminal on success:
//
//  1. exact: first catalog entry with the same normalized name
//  2. substring: first entry whose normalized name contains, or is
//     contained in, the normalized label (loose on purpose: short names
//     match aggressively)
//  3. fuzzy: the entry closest by Ratcliff-Obershelp ratio, qualifying at
//     ratio >= the configured cutoff; ties keep the earliest entry
//  4. default: the configured fallback calories, which always succeeds
//
// Only the literally empty label yields ok == false; every non-empty label
// gets a numeric result. Lookup never mutates the table and is safe for
// concurrent use.
func (s *Service) Lookup(rawLabel string) (LookupResult, bool) {
	if rawLabel == "" {
		return LookupResult{}, false
	}
	normalized := normalize.Label(rawLabel)

	if e, ok := s.table.Exact(normalized); ok {
		return LookupResult{
			CaloriesPer100g: e.CaloriesPer100g,
			MatchedName:     e.Name,
			Tier:            TierExact,
			Confidence:      1.0,
		}, true
	}

	entries := s.table.Entries()
	for _, e := range entries {
		if strings.Contains(normalized, e.NormalizedName) || strings.Contains(e.NormalizedName, normalized) {
			return LookupResult{
				CaloriesPer100g: e.CaloriesPer100g,
				MatchedName:     e.Name,
				Tier:            TierSubstring,
				Confidence:      similarity(normalized, e.NormalizedName),
			}, true
		}
	}

	query := runeSeq(normalized)
	bestIdx := -1
	bestScore := 0.0
	for i, e := range entries {
		m := difflib.NewMatcher(runeSeq(e.NormalizedName), query)
		// Quick ratios are cheap upper bounds on Ratio.
		if m.RealQuickRatio() < s.fuzzyCutoff || m.QuickRatio() < s.fuzzyCutoff {
			continue
		}
		r := m.Ratio()
		if r < s.fuzzyCutoff || r <= bestScore {
			continue
		}
		bestIdx, bestScore = i, r
	}
	if bestIdx >= 0 {
		e := entries[bestIdx]
		return LookupResult{
			CaloriesPer100g: e.CaloriesPer100g,
			MatchedName:     e.Name,
			Tier:            TierFuzzy,
			Confidence:      bestScore,
		}, true
	}

	return LookupResult{
		CaloriesPer100g: s.defaultCalories,
		Tier:            TierDefault,
	}, true
}
