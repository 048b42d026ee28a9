package services

import (
	"sort"
	"time"

	"airside-ops/transferdesk/internal/board"
	"airside-ops/transferdesk/internal/models/dtos"
	"airside-ops/transferdesk/internal/models/entities"
	"airside-ops/transferdesk/internal/risk"
	"airside-ops/transferdesk/internal/stats"
	"airside-ops/transferdesk/internal/status"
)

// ReportService builds the read-only snapshot consumed by the external PDF
// renderer: today's incoming flights grouped by terminal, each with its
// sorted links and resolved outgoing flights. No rendering happens here.
type ReportService struct {
	Board     *board.Board
	Threshold time.Duration
}

func NewReportService(b *board.Board, threshold time.Duration) *ReportService {
	if threshold <= 0 {
		threshold = risk.DefaultThreshold
	}
	return &ReportService{Board: b, Threshold: threshold}
}

// BuildDayReport assembles the report snapshot for one operational day.
func (svc *ReportService) BuildDayReport(day, now time.Time) *dtos.DayReport {
	incoming := stats.TodaysIncoming(svc.Board.Incoming(), day)
	outgoingByID := make(map[string]entities.OutgoingFlight)
	for _, f := range svc.Board.Outgoing() {
		outgoingByID[f.ID] = f
	}

	groups := make(map[string][]dtos.ReportFlight)
	for i := range incoming {
		f := incoming[i]
		row := dtos.ReportFlight{
			Incoming:    f,
			Status:      string(status.ForIncoming(&f, now)),
			DisplayTime: status.DisplayTime(entities.IncomingRef(&f)),
		}
		for _, l := range f.Links {
			out, ok := outgoingByID[l.OutgoingID]
			if !ok {
				continue
			}
			row.Transfers = append(row.Transfers, dtos.ReportTransfer{
				Outgoing:    out,
				BagCount:    l.BagCount,
				MAGTransfer: l.MAGTransfer,
				AtRisk:      risk.IsAtRisk(&f, &out, svc.Threshold),
			})
		}
		groups[f.Terminal] = append(groups[f.Terminal], row)
	}

	terminals := make([]string, 0, len(groups))
	for terminal := range groups {
		terminals = append(terminals, terminal)
	}
	sort.Strings(terminals)

	report := &dtos.DayReport{
		Day:         day.Format("2006-01-02"),
		GeneratedAt: now,
		Stats:       stats.ForDay(incoming, day, now),
	}
	for _, terminal := range terminals {
		flights := groups[terminal]
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Incoming.ScheduledTime.Before(flights[j].Incoming.ScheduledTime)
		})
		report.Terminals = append(report.Terminals, dtos.TerminalGroup{
			Terminal: terminal,
			Flights:  flights,
		})
	}
	return report
}
