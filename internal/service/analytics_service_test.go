package service

import (
	"context"
	"testing"

	"notesai-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAnalyticsEmptyCorpus(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAnalyticsService(factory)

	res, err := svc.ComputeAnalytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, res.TotalWords)
	assert.Equal(t, float64(0), res.AverageNoteLength)
	assert.Empty(t, res.MostCommonWords)
	assert.Empty(t, res.ShortestNotes)
	assert.Empty(t, res.LongestNotes)
}

func TestComputeAnalyticsAggregatesCorpus(t *testing.T) {
	factory := newFakeFactory()
	noteSvc := newTestNoteService(factory, newStubSummarizer())
	svc := NewAnalyticsService(factory)

	contents := []string{
		"This is the first note.",
		"This is the second note.",
		"Short note.",
	}
	for _, content := range contents {
		_, err := noteSvc.Create(context.Background(), &dto.CreateNoteRequest{
			Title:   "Note",
			Content: content,
		})
		require.NoError(t, err)
	}

	res, err := svc.ComputeAnalytics(context.Background())
	require.NoError(t, err)

	// 5 + 5 + 2 alphabetic tokens
	assert.Equal(t, 12, res.TotalWords)
	assert.Equal(t, float64(4), res.AverageNoteLength)

	require.Len(t, res.MostCommonWords, 5)
	assert.Equal(t, dto.WordCount{Word: "note", Count: 3}, res.MostCommonWords[0])
	// Count-2 ties keep first-encountered order
	assert.Equal(t, dto.WordCount{Word: "This", Count: 2}, res.MostCommonWords[1])
	assert.Equal(t, dto.WordCount{Word: "is", Count: 2}, res.MostCommonWords[2])
	assert.Equal(t, dto.WordCount{Word: "the", Count: 2}, res.MostCommonWords[3])
	assert.Equal(t, dto.WordCount{Word: "first", Count: 1}, res.MostCommonWords[4])

	assert.Equal(t, []string{
		"Short note.",
		"This is the first note.",
		"This is the second note.",
	}, res.ShortestNotes)
	assert.Equal(t, []string{
		"Short note.",
		"This is the first note.",
		"This is the second note.",
	}, res.LongestNotes)
}
