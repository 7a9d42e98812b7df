package app

import (
	"context"
)

type OccurrenceUseCase interface {
	MarkOccurrence(ctx context.Context, input MarkOccurrenceInput) (OccurrenceOutput, error)
	ListOccurrences(ctx context.Context, input ListOccurrencesInput) (OccurrencesOutput, error)
	DailySummary(ctx context.Context, input DailySummaryInput) (DailySummaryOutput, error)
}
