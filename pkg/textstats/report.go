package textstats

import "sort"

const (
	topWordsCount    = 5
	extremeNoteCount = 3
)

type WordCount struct {
	Word  string
	Count int
}

type Report struct {
	TotalWords        int
	AverageNoteLength float64
	MostCommonWords   []WordCount
	ShortestNotes     []string
	LongestNotes      []string
}

// BuildReport aggregates the full corpus in one pass. No caching: callers
// get a fresh scan every time, matching the read-only analytics contract.
func BuildReport(contents []string) Report {
	report := Report{
		MostCommonWords: []WordCount{},
		ShortestNotes:   []string{},
		LongestNotes:    []string{},
	}

	if len(contents) == 0 {
		return report
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, content := range contents {
		words := Tokenize(content)
		report.TotalWords += len(words)

		for _, word := range words {
			if _, ok := counts[word]; !ok {
				firstSeen[word] = len(firstSeen)
			}
			counts[word]++
		}
	}

	report.AverageNoteLength = float64(report.TotalWords) / float64(len(contents))
	report.MostCommonWords = topWords(counts, firstSeen, topWordsCount)

	// Character length, not token count. Stable sort keeps retrieval order
	// for equal lengths.
	sorted := make([]string, len(contents))
	copy(sorted, contents)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) < len(sorted[j])
	})

	shortest := extremeNoteCount
	if shortest > len(sorted) {
		shortest = len(sorted)
	}
	report.ShortestNotes = append(report.ShortestNotes, sorted[:shortest]...)
	report.LongestNotes = append(report.LongestNotes, sorted[len(sorted)-shortest:]...)

	return report
}

func topWords(counts map[string]int, firstSeen map[string]int, limit int) []WordCount {
	words := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		words = append(words, WordCount{Word: word, Count: count})
	}

	// Ties resolve to the word encountered first during aggregation.
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return firstSeen[words[i].Word] < firstSeen[words[j].Word]
	})

	if len(words) > limit {
		words = words[:limit]
	}
	return words
}
