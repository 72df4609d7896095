package db

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedOptions sizes the demo dataset.
type SeedOptions struct {
	Candidates         int
	Recruiters         int
	Animators          int
	Laboratories       int
	OffersPerRecruiter int
	MissionsPerLab     int
	Seed               int64
}

func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		Candidates:         12,
		Recruiters:         4,
		Animators:          8,
		Laboratories:       3,
		OffersPerRecruiter: 3,
		MissionsPerLab:     2,
		Seed:               time.Now().UnixNano(),
	}
}

type city struct {
	name     string
	lat, lon float64
	zone     string
}

var cities = []city{
	{"Paris", 48.8566, 2.3522, "75"},
	{"Lyon", 45.7640, 4.8357, "69"},
	{"Marseille", 43.2965, 5.3698, "13"},
	{"Toulouse", 43.6047, 1.4442, "31"},
	{"Lille", 50.6292, 3.0573, "59"},
	{"Nantes", 47.2184, -1.5536, "44"},
}

var (
	contractTypes = []string{"cdi", "cdd", "interim", "internship"}
	diplomas      = []string{"pharmacist", "preparer", "student"}
	specialties   = []string{"dermocosmetics", "orthopedics", "phytotherapy", "nutrition", "veterinary", "homeopathy"}
)

// tables lists the seeded tables, children first.
var tables = []string{"match_notifications", "matches", "quotas", "blocks", "swipes", "targets", "actors"}

// ResetData clears every table.
// Compatible with MySQL, Postgres and SQLite.
func ResetData(db *gorm.DB) error {
	for _, t := range tables {
		if err := db.Exec("DELETE FROM " + t).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", t, err)
		}
	}

	// Reset auto-increment sequences
	switch db.Dialector.Name() {
	case "mysql":
		for _, t := range []string{"actors", "targets", "swipes", "match_notifications"} {
			db.Exec("ALTER TABLE " + t + " AUTO_INCREMENT = 1")
		}
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence")
	}
	return nil
}

// SeedDemoData populates actors, their profiles, offers, missions and swipes.
// Every third swipe gets a reciprocal like, and the resulting mutual pairs
// receive a Match row.
func SeedDemoData(db *gorm.DB, opts SeedOptions) error {
	r := rand.New(rand.NewSource(opts.Seed))
	now := time.Now().UTC()

	pick := func(values []string, n int) []string {
		out := make([]string, 0, n)
		for _, i := range r.Perm(len(values))[:min(n, len(values))] {
			out = append(out, values[i])
		}
		return out
	}
	place := func() (*float64, *float64, string) {
		c := cities[r.Intn(len(cities))]
		lat := c.lat + (r.Float64()-0.5)*0.2
		lon := c.lon + (r.Float64()-0.5)*0.2
		return &lat, &lon, c.zone
	}
	tier := func() string {
		switch n := r.Intn(10); {
		case n < 7:
			return "free"
		case n < 9:
			return "premium"
		default:
			return "unlimited"
		}
	}

	var candidates, recruiters, animators, labs []Actor
	create := func(role string, n int, dst *[]Actor) error {
		for i := 1; i <= n; i++ {
			a := Actor{Role: role, Tier: tier(), DisplayName: fmt.Sprintf("%s%d", role, i)}
			if err := db.Create(&a).Error; err != nil {
				return fmt.Errorf("failed to seed %s: %w", role, err)
			}
			*dst = append(*dst, a)
		}
		return nil
	}
	if err := create("candidate", opts.Candidates, &candidates); err != nil {
		return err
	}
	if err := create("recruiter", opts.Recruiters, &recruiters); err != nil {
		return err
	}
	if err := create("animator", opts.Animators, &animators); err != nil {
		return err
	}
	if err := create("laboratory", opts.Laboratories, &labs); err != nil {
		return err
	}
	slog.Info("seeded actors", "candidates", len(candidates), "recruiters", len(recruiters), "animators", len(animators), "laboratories", len(labs))

	var targets []Target
	for _, c := range candidates {
		lat, lon, zone := place()
		targets = append(targets, Target{
			Kind: "candidate", OwnerID: c.ID, Title: c.DisplayName, Lat: lat, Lon: lon,
			ContractTypes:   pick(contractTypes, 1+r.Intn(2)),
			Diploma:         diplomas[r.Intn(len(diplomas))],
			ExperienceYears: r.Intn(12),
			MobilityZones:   []string{zone},
		})
	}
	for _, a := range animators {
		lat, lon, zone := place()
		start := now.Add(time.Duration(r.Intn(72)) * time.Hour)
		targets = append(targets, Target{
			Kind: "animator", OwnerID: a.ID, Title: a.DisplayName, Lat: lat, Lon: lon,
			Specialties:   pick(specialties, 1+r.Intn(3)),
			MobilityZones: []string{zone, cities[r.Intn(len(cities))].zone},
			Availability:  []Window{{Start: start, End: start.Add(time.Duration(5+r.Intn(20)) * 24 * time.Hour)}},
		})
	}
	for _, rec := range recruiters {
		for i := 1; i <= opts.OffersPerRecruiter; i++ {
			lat, lon, _ := place()
			expires := now.Add(time.Duration(15+r.Intn(60)) * 24 * time.Hour)
			targets = append(targets, Target{
				Kind: "offer", OwnerID: rec.ID, Title: fmt.Sprintf("%s offer %d", rec.DisplayName, i), Lat: lat, Lon: lon,
				ExpiresAt:          &expires,
				ContractTypes:      pick(contractTypes, 1),
				RequiredDiploma:    diplomas[r.Intn(2)],
				MinExperienceYears: r.Intn(6),
			})
		}
	}
	for _, lab := range labs {
		for i := 1; i <= opts.MissionsPerLab; i++ {
			lat, lon, zone := place()
			start := now.Add(time.Duration(24+r.Intn(240)) * time.Hour)
			end := start.Add(time.Duration(2+r.Intn(10)) * 24 * time.Hour)
			targets = append(targets, Target{
				Kind: "mission", OwnerID: lab.ID, Title: fmt.Sprintf("%s mission %d", lab.DisplayName, i), Lat: lat, Lon: lon,
				ExpiresAt:     &end,
				Specialties:   pick(specialties, 1+r.Intn(2)),
				MobilityZones: []string{zone},
				WindowStart:   &start,
				WindowEnd:     &end,
			})
		}
	}
	if len(targets) > 0 {
		if err := db.Create(&targets).Error; err != nil {
			return fmt.Errorf("failed to seed targets: %w", err)
		}
	}
	slog.Info("seeded targets", "count", len(targets))

	profiles := map[uint64]Target{}
	byKind := map[string][]Target{}
	for _, t := range targets {
		byKind[t.Kind] = append(byKind[t.Kind], t)
		if t.Kind == "candidate" || t.Kind == "animator" {
			profiles[t.OwnerID] = t
		}
	}

	upsert := func(s SwipeAction) error {
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "actor_id"}, {Name: "target_kind"}, {Name: "target_id"}, {Name: "context_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"decision", "updated_at"}),
		}).Create(&s).Error
	}

	// person swipes listing; every third like is returned by the listing owner
	counter, matches := 0, 0
	seedSide := func(persons []Actor, listingKind, profileKind string) error {
		listings := byKind[listingKind]
		if len(listings) == 0 {
			return nil
		}
		for _, p := range persons {
			for j := 0; j < 4; j++ {
				l := listings[r.Intn(len(listings))]
				decision := "dislike"
				if r.Intn(100) < 70 {
					decision = "like"
				}
				if counter%3 == 0 {
					decision = "like"
				}
				if err := upsert(SwipeAction{ActorID: p.ID, TargetKind: listingKind, TargetID: l.ID, ContextID: l.ID, OwnerID: l.OwnerID, Decision: decision}); err != nil {
					return fmt.Errorf("failed to seed swipe: %w", err)
				}
				if counter%3 == 0 {
					profile := profiles[p.ID]
					if err := upsert(SwipeAction{ActorID: l.OwnerID, TargetKind: profileKind, TargetID: profile.ID, ContextID: l.ID, OwnerID: p.ID, Decision: "like"}); err != nil {
						return fmt.Errorf("failed to seed reciprocal swipe: %w", err)
					}
					a, b := p.ID, l.OwnerID
					if a > b {
						a, b = b, a
					}
					m := Match{ID: uuid.NewString(), ActorA: a, ActorB: b, ContextTargetID: l.ID, Kind: listingKind, Score: 50 + r.Intn(51), Status: "active", MatchedAt: now}
					res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
					if res.Error != nil {
						return fmt.Errorf("failed to seed match: %w", res.Error)
					}
					matches += int(res.RowsAffected)
				}
				counter++
			}
		}
		return nil
	}
	if err := seedSide(candidates, "offer", "candidate"); err != nil {
		return err
	}
	if err := seedSide(animators, "mission", "animator"); err != nil {
		return err
	}
	slog.Info("seeded swipes", "count", counter, "matches", matches)
	return nil
}

// SeedMinimalTestData inserts a small deterministic dataset:
//   - actor 1 candidate (profile 101), actor 2 recruiter (offer 201),
//     actor 3 animator (profile 301), actor 4 laboratory (mission 401)
//   - candidate 1 liked offer 201; the recruiter has not answered yet
func SeedMinimalTestData(db *gorm.DB) error {
	if err := ResetData(db); err != nil {
		return err
	}

	actors := []Actor{
		{ID: 1, Role: "candidate", Tier: "free", DisplayName: "candidate1"},
		{ID: 2, Role: "recruiter", Tier: "premium", DisplayName: "recruiter1"},
		{ID: 3, Role: "animator", Tier: "free", DisplayName: "animator1"},
		{ID: 4, Role: "laboratory", Tier: "unlimited", DisplayName: "lab1"},
	}
	if err := db.Create(&actors).Error; err != nil {
		return err
	}

	paris := cities[0]
	lat, lon := paris.lat, paris.lon
	start := time.Now().UTC().Add(24 * time.Hour)
	end := start.Add(5 * 24 * time.Hour)
	targets := []Target{
		{ID: 101, Kind: "candidate", OwnerID: 1, Title: "candidate1", Lat: &lat, Lon: &lon, Diploma: "pharmacist", ExperienceYears: 4, ContractTypes: []string{"cdi"}},
		{ID: 201, Kind: "offer", OwnerID: 2, Title: "Pharmacist, Paris 11e", Lat: &lat, Lon: &lon, RequiredDiploma: "pharmacist", MinExperienceYears: 2, ContractTypes: []string{"cdi"}},
		{ID: 301, Kind: "animator", OwnerID: 3, Title: "animator1", Lat: &lat, Lon: &lon, Specialties: []string{"dermocosmetics"}, Availability: []Window{{Start: start, End: end}}},
		{ID: 401, Kind: "mission", OwnerID: 4, Title: "Dermo week", Lat: &lat, Lon: &lon, Specialties: []string{"dermocosmetics"}, WindowStart: &start, WindowEnd: &end},
	}
	if err := db.Create(&targets).Error; err != nil {
		return err
	}

	return db.Create(&SwipeAction{ActorID: 1, TargetKind: "offer", TargetID: 201, ContextID: 201, OwnerID: 2, Decision: "like"}).Error
}
