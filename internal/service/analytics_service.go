package service

import (
	"context"

	"notesai-be/internal/apperror"
	"notesai-be/internal/dto"
	"notesai-be/internal/repository/unitofwork"
	"notesai-be/pkg/textstats"
)

type IAnalyticsService interface {
	ComputeAnalytics(ctx context.Context) (*dto.AnalyticsResponse, error)
}

// analyticsService derives the report from stored content on every call.
// Nothing is cached or maintained incrementally.
type analyticsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAnalyticsService(uowFactory unitofwork.RepositoryFactory) IAnalyticsService {
	return &analyticsService{
		uowFactory: uowFactory,
	}
}

func (s *analyticsService) ComputeAnalytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx)
	if err != nil {
		return nil, apperror.StoreFailure("load notes for analytics", err)
	}

	contents := make([]string, len(notes))
	for i, note := range notes {
		contents[i] = note.Content
	}

	report := textstats.BuildReport(contents)

	mostCommon := make([]dto.WordCount, len(report.MostCommonWords))
	for i, wc := range report.MostCommonWords {
		mostCommon[i] = dto.WordCount{Word: wc.Word, Count: wc.Count}
	}

	return &dto.AnalyticsResponse{
		TotalWords:        report.TotalWords,
		AverageNoteLength: report.AverageNoteLength,
		MostCommonWords:   mostCommon,
		ShortestNotes:     report.ShortestNotes,
		LongestNotes:      report.LongestNotes,
	}, nil
}
