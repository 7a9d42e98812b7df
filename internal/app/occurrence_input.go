package app

import "time"

type MarkOccurrenceInput struct {
	ID      string
	OwnerID string
	Outcome string
}

type ListOccurrencesInput struct {
	OwnerID string
	From    *time.Time
	To      *time.Time
	Status  string
}

type DailySummaryInput struct {
	OwnerID string
	Date    time.Time
}
