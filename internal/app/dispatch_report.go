package app

import "time"

const (
	OutcomeNotified           = "notified"
	OutcomeSkippedReferential = "skipped_referential"
	OutcomeAlreadyClaimed     = "already_claimed"
	OutcomeClaimFailed        = "claim_failed"
)

type ChannelResult struct {
	Channel string
	Status  string
	Reason  string
}

type OccurrenceReport struct {
	OccurrenceID  string
	ScheduleID    string
	OwnerID       string
	ScheduledTime time.Time
	Outcome       string
	Reason        string
	Channels      []ChannelResult
}

// DispatchReport summarizes one tick of the dispatch loop.
type DispatchReport struct {
	StartedAt   time.Time
	FinishedAt  time.Time
	Eligible    int
	Notified    int
	Skipped     int
	Failed      int
	Occurrences []OccurrenceReport
}

func (r *DispatchReport) tally() {
	for _, o := range r.Occurrences {
		switch o.Outcome {
		case OutcomeNotified:
			r.Notified++
		case OutcomeSkippedReferential, OutcomeAlreadyClaimed:
			r.Skipped++
		case OutcomeClaimFailed:
			r.Failed++
		}
	}
}
