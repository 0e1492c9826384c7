package dto

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type AnalyticsResponse struct {
	TotalWords        int         `json:"total_words"`
	AverageNoteLength float64     `json:"average_note_length"`
	MostCommonWords   []WordCount `json:"most_common_words"`
	ShortestNotes     []string    `json:"shortest_notes"`
	LongestNotes      []string    `json:"longest_notes"`
}
