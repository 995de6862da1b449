package service

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
)

// SelectWords turns a session descriptor and the word corpus into the
// concrete ordered word list for that session.
//
// Eligible words are split into a priority partition (any priority keyword
// occurs in the word) and a regular partition. Priority words come first,
// shortest Hangul form first; regular words follow, most frequent first.
// The result is truncated to the descriptor's target count.
//
// The function is deterministic and never mutates its inputs.
func SelectWords(d entities.SessionDescriptor, words []entities.Word) []entities.Word {
	var priority, regular []entities.Word

	for _, w := range words {
		if !eligible(d, w) {
			continue
		}
		if isPriorityWord(d.PriorityKeywords, w) {
			priority = append(priority, w)
		} else {
			regular = append(regular, w)
		}
	}

	sortPriority(priority)
	sortRegular(regular)

	out := append(priority, regular...)
	if len(out) > d.TargetWordCount {
		out = out[:d.TargetWordCount]
	}
	return out
}

func eligible(d entities.SessionDescriptor, w entities.Word) bool {
	return matchesTopic(d.Topics, w.Topic) &&
		d.Difficulty.Matches(w.Difficulty) &&
		matchesWordType(d.WordTypes, w.PartOfSpeech)
}

// matchesTopic accepts an exact match or a substring containment. The loose
// rule tolerates topic-naming drift between corpus and catalog (e.g. a word
// tagged "Food & Drink" matches a session asking for "Food").
func matchesTopic(topics []string, wordTopic string) bool {
	for _, t := range topics {
		if wordTopic == t || strings.Contains(wordTopic, t) {
			return true
		}
	}
	return false
}

func matchesWordType(wordTypes []string, pos string) bool {
	if len(wordTypes) == 0 {
		return true
	}
	for _, t := range wordTypes {
		if pos == t {
			return true
		}
	}
	return false
}

// isPriorityWord reports whether any keyword occurs in the word's Hangul
// form, or case-insensitively in its translation or romanization.
func isPriorityWord(keywords []string, w entities.Word) bool {
	for _, kw := range keywords {
		if strings.Contains(w.Korean, kw) {
			return true
		}
		lower := strings.ToLower(kw)
		if strings.Contains(strings.ToLower(w.Translation), lower) ||
			strings.Contains(strings.ToLower(w.Romanization), lower) {
			return true
		}
	}
	return false
}

// sortPriority orders priority words by ascending Hangul length (shorter =
// more basic), breaking ties lexicographically.
func sortPriority(words []entities.Word) {
	sort.SliceStable(words, func(i, j int) bool {
		li := utf8.RuneCountInString(words[i].Korean)
		lj := utf8.RuneCountInString(words[j].Korean)
		if li != lj {
			return li < lj
		}
		return words[i].Korean < words[j].Korean
	})
}

// sortRegular orders regular words by descending frequency when both sides
// carry a comparable tier, falling back to lexicographic Hangul order.
func sortRegular(words []entities.Word) {
	sort.SliceStable(words, func(i, j int) bool {
		ri, iok := words[i].Frequency.Rank()
		rj, jok := words[j].Frequency.Rank()
		if iok && jok && ri != rj {
			return ri > rj
		}
		return words[i].Korean < words[j].Korean
	})
}
