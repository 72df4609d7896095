package repository

import (
	"time"

	"github.com/oggyb/pharma-match/internal/db"
	"github.com/oggyb/pharma-match/internal/matching"
)

// Timestamps are stored with millisecond precision so keyset cursors compare
// exactly on every driver.
func ms(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func toAttributes(t db.Target) matching.Attributes {
	a := matching.Attributes{
		ContractTypes:      []string(t.ContractTypes),
		Diploma:            t.Diploma,
		ExperienceYears:    t.ExperienceYears,
		RequiredDiploma:    t.RequiredDiploma,
		MinExperienceYears: t.MinExperienceYears,
		Specialties:        []string(t.Specialties),
		MobilityZones:      []string(t.MobilityZones),
	}
	if t.Lat != nil && t.Lon != nil {
		a.Location = &matching.Location{Lat: *t.Lat, Lon: *t.Lon}
	}
	for _, w := range t.Availability {
		a.Availability = append(a.Availability, matching.Window{Start: w.Start, End: w.End})
	}
	if t.WindowStart != nil && t.WindowEnd != nil {
		a.Window = &matching.Window{Start: *t.WindowStart, End: *t.WindowEnd}
	}
	return a
}

func toTarget(t db.Target) matching.Target {
	return matching.Target{
		ID:         t.ID,
		Kind:       matching.TargetKind(t.Kind),
		OwnerID:    t.OwnerID,
		Title:      t.Title,
		Status:     matching.TargetStatus(t.Status),
		ExpiresAt:  t.ExpiresAt,
		CreatedAt:  t.CreatedAt,
		Attributes: toAttributes(t),
	}
}

// FromTarget converts a domain target into its row. Used by seeding tools and tests.
func FromTarget(t matching.Target) db.Target {
	row := db.Target{
		ID:                 t.ID,
		Kind:               string(t.Kind),
		OwnerID:            t.OwnerID,
		Title:              t.Title,
		Status:             string(t.Status),
		ExpiresAt:          t.ExpiresAt,
		ContractTypes:      t.ContractTypes,
		Diploma:            t.Diploma,
		ExperienceYears:    t.ExperienceYears,
		RequiredDiploma:    t.RequiredDiploma,
		MinExperienceYears: t.MinExperienceYears,
		Specialties:        t.Specialties,
		MobilityZones:      t.MobilityZones,
		CreatedAt:          t.CreatedAt,
	}
	if row.Status == "" {
		row.Status = string(matching.TargetActive)
	}
	if t.Location != nil {
		lat, lon := t.Location.Lat, t.Location.Lon
		row.Lat, row.Lon = &lat, &lon
	}
	for _, w := range t.Availability {
		row.Availability = append(row.Availability, db.Window{Start: w.Start, End: w.End})
	}
	if t.Window != nil {
		start, end := t.Window.Start, t.Window.End
		row.WindowStart, row.WindowEnd = &start, &end
	}
	return row
}

func toSwipe(s db.SwipeAction) matching.SwipeAction {
	return matching.SwipeAction{
		ID:        s.ID,
		ActorID:   s.ActorID,
		Kind:      matching.TargetKind(s.TargetKind),
		TargetID:  s.TargetID,
		ContextID: s.ContextID,
		OwnerID:   s.OwnerID,
		Decision:  matching.Decision(s.Decision),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// fromSwipe leaves ID zero so the upsert conflicts on the pair key only.
func fromSwipe(s matching.SwipeAction) db.SwipeAction {
	return db.SwipeAction{
		ActorID:    s.ActorID,
		TargetKind: string(s.Kind),
		TargetID:   s.TargetID,
		ContextID:  s.ContextID,
		OwnerID:    s.OwnerID,
		Decision:   string(s.Decision),
		CreatedAt:  ms(s.CreatedAt),
		UpdatedAt:  ms(s.UpdatedAt),
	}
}

func toMatch(m db.Match) matching.Match {
	return matching.Match{
		ID:              m.ID,
		ActorA:          m.ActorA,
		ActorB:          m.ActorB,
		Kind:            matching.TargetKind(m.Kind),
		ContextTargetID: m.ContextTargetID,
		Score:           m.Score,
		Status:          matching.MatchStatus(m.Status),
		MatchedAt:       m.MatchedAt,
		ClosedAt:        m.ClosedAt,
	}
}

func fromMatch(m matching.Match) db.Match {
	return db.Match{
		ID:              m.ID,
		ActorA:          m.ActorA,
		ActorB:          m.ActorB,
		ContextTargetID: m.ContextTargetID,
		Kind:            string(m.Kind),
		Score:           m.Score,
		Status:          string(m.Status),
		MatchedAt:       ms(m.MatchedAt),
		ClosedAt:        m.ClosedAt,
	}
}

func toQuota(q db.Quota) matching.Quota {
	return matching.Quota{
		ActorID:     q.ActorID,
		Kind:        matching.ActionKind(q.Kind),
		PeriodKey:   q.PeriodKey,
		PeriodStart: q.PeriodStart,
		Used:        q.Used,
		Limit:       q.Limit,
	}
}
