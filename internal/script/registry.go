package script

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type verbPhrase struct {
	canonical Verb
	alias     string
}

type Registry struct {
	commands map[Verb]CommandDef
	phrases  []verbPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[Verb]CommandDef),
	}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = Verb(normaliseLine(string(c.Canonical)))
	if c.Canonical == "" {
		return
	}
	r.commands[c.Canonical] = c

	r.phrases = append(r.phrases, verbPhrase{canonical: c.Canonical, alias: string(c.Canonical)})
	for _, a := range c.Aliases {
		n := normaliseLine(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, verbPhrase{canonical: c.Canonical, alias: n})
	}
}

func (r *Registry) command(v Verb) (CommandDef, bool) {
	cmd, ok := r.commands[v]
	return cmd, ok
}

type verbCandidate struct {
	Canonical Verb
	Alias     string
	Score     float64
	Source    string
}

// matchVerb ranks every known verb against token: exact, alias, prefix, then
// edit distance. It returns the best candidate and the runner-up for a
// different verb, if any.
func (r *Registry) matchVerb(token string) (verbCandidate, *verbCandidate) {
	if token == "" {
		return verbCandidate{}, nil
	}
	cands := make([]verbCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if token == phrase.alias {
			score := 1.0
			source := "exact"
			if phrase.alias != string(phrase.canonical) {
				score = 0.97
				source = "alias"
			}
			cands = append(cands, verbCandidate{Canonical: phrase.canonical, Alias: phrase.alias, Score: score, Source: source})
			continue
		}

		if len(token) >= 2 && strings.HasPrefix(phrase.alias, token) {
			cands = append(cands, verbCandidate{Canonical: phrase.canonical, Alias: phrase.alias, Score: 0.9, Source: "prefix"})
			continue
		}

		if len(token) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(token, phrase.alias)
		if dist > levenshteinLimit(len(phrase.alias)) {
			continue
		}
		score := 0.72 - (0.08 * float64(dist))
		if phrase.alias != string(phrase.canonical) {
			score += 0.03
		}
		cands = append(cands, verbCandidate{Canonical: phrase.canonical, Alias: phrase.alias, Score: score, Source: "lev"})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Canonical < cands[j].Canonical
		}
		return cands[i].Score > cands[j].Score
	})

	if len(cands) == 0 {
		return verbCandidate{}, nil
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Canonical != best.Canonical {
			alt := c
			return best, &alt
		}
	}
	return best, nil
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// closestVerb returns the known alias nearest to token by edit distance,
// ignoring any limit. Used only for error hints.
func (r *Registry) closestVerb(token string) string {
	best := ""
	bestDist := -1
	for _, phrase := range r.phrases {
		d := levenshtein.ComputeDistance(token, phrase.alias)
		if bestDist < 0 || d < bestDist {
			best, bestDist = phrase.alias, d
		}
	}
	if bestDist < 0 || bestDist > len(token) {
		return ""
	}
	return best
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: VerbWalk, Aliases: []string{"move", "go"}, MinArgs: 2, MaxArgs: 2},
		{Canonical: VerbWait, Aliases: []string{"idle", "stand"}, MinArgs: 1, MaxArgs: 1},
		{Canonical: VerbStatus, Aliases: []string{"report"}, MinArgs: 0, MaxArgs: 0},
		{Canonical: VerbTick, MinArgs: 1, MaxArgs: 1},
		{Canonical: VerbExpect, Aliases: []string{"assert"}, MinArgs: 2, MaxArgs: 2},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
