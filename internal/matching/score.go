package matching

import (
	"math"
	"sort"
	"strings"
	"time"
)

const (
	FactorDistance      = "distance"
	FactorContract      = "contract"
	FactorQualification = "qualification"
	FactorSpecialty     = "specialty"
	FactorMobility      = "mobility"
	FactorAvailability  = "availability"

	defaultMaxRadiusKM = 100.0
	earthRadiusKM      = 6371.0
)

// Weights are the relative importance of each factor. Only their ratios matter.
type Weights struct {
	Distance      float64
	Contract      float64
	Qualification float64
	Specialty     float64
	Mobility      float64
	Availability  float64
}

func DefaultWeights() Weights {
	return Weights{
		Distance:      30,
		Contract:      20,
		Qualification: 20,
		Specialty:     15,
		Mobility:      10,
		Availability:  15,
	}
}

// Factor is one explainable component of a score. Value is in [0,1].
type Factor struct {
	Name   string
	Weight float64
	Value  float64
}

// ScoreEngine computes a deterministic 0..100 compatibility score.
// It performs no I/O and reads no clock: "now" is always an argument.
type ScoreEngine struct {
	weights     Weights
	maxRadiusKM float64
}

func NewScoreEngine(w Weights, maxRadiusKM float64) *ScoreEngine {
	if maxRadiusKM <= 0 {
		maxRadiusKM = defaultMaxRadiusKM
	}
	w.Distance = math.Max(w.Distance, 0)
	w.Contract = math.Max(w.Contract, 0)
	w.Qualification = math.Max(w.Qualification, 0)
	w.Specialty = math.Max(w.Specialty, 0)
	w.Mobility = math.Max(w.Mobility, 0)
	w.Availability = math.Max(w.Availability, 0)
	return &ScoreEngine{weights: w, maxRadiusKM: maxRadiusKM}
}

// Score returns round(100 * Σ weight·value / Σ weight) over the applicable factors.
func (e *ScoreEngine) Score(requester Actor, target Target, now time.Time) int {
	return scoreOf(e.Breakdown(requester, target, now))
}

// Breakdown lists the applicable factors in a fixed order.
// Distance always applies; the others only when both sides carry the data.
func (e *ScoreEngine) Breakdown(requester Actor, target Target, now time.Time) []Factor {
	req := requester.Attributes
	person, listing := req, target.Attributes
	if target.Kind.IsProfile() {
		person, listing = target.Attributes, req
	}

	factors := []Factor{{
		Name:   FactorDistance,
		Weight: e.weights.Distance,
		Value:  e.distanceFactor(req.Location, target.Location),
	}}

	if len(person.ContractTypes) > 0 && len(listing.ContractTypes) > 0 {
		factors = append(factors, Factor{
			Name:   FactorContract,
			Weight: e.weights.Contract,
			Value:  coverage(person.ContractTypes, listing.ContractTypes),
		})
	}

	if v, ok := qualification(listing, person); ok {
		factors = append(factors, Factor{Name: FactorQualification, Weight: e.weights.Qualification, Value: v})
	}

	if len(listing.Specialties) > 0 && len(person.Specialties) > 0 {
		factors = append(factors, Factor{
			Name:   FactorSpecialty,
			Weight: e.weights.Specialty,
			Value:  coverage(listing.Specialties, person.Specialties),
		})
	}

	if len(listing.MobilityZones) > 0 && len(person.MobilityZones) > 0 {
		factors = append(factors, Factor{
			Name:   FactorMobility,
			Weight: e.weights.Mobility,
			Value:  coverage(listing.MobilityZones, person.MobilityZones),
		})
	}

	if listing.Window != nil {
		factors = append(factors, Factor{
			Name:   FactorAvailability,
			Weight: e.weights.Availability,
			Value:  availabilityCoverage(*listing.Window, person.Availability, now),
		})
	}

	return factors
}

func scoreOf(factors []Factor) int {
	var sum, weights float64
	for _, f := range factors {
		sum += f.Weight * clamp01(f.Value)
		weights += f.Weight
	}
	if weights == 0 {
		return 100
	}
	s := int(math.Round(100 * sum / weights))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// distanceFactor decays linearly from 1 at 0km to 0 at the max radius.
func (e *ScoreEngine) distanceFactor(a, b *Location) float64 {
	d, ok := DistanceKM(a, b)
	if !ok {
		return 1
	}
	if d >= e.maxRadiusKM {
		return 0
	}
	return 1 - d/e.maxRadiusKM
}

// DistanceKM is the great-circle distance; ok is false when a side has no location.
func DistanceKM(a, b *Location) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	return haversineKM(a.Lat, a.Lon, b.Lat, b.Lon), true
}

func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(v float64) float64 { return v * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

// coverage is |want ∩ have| / |want|, case-insensitive.
func coverage(want, have []string) float64 {
	wanted := normalizeSet(want)
	if len(wanted) == 0 {
		return 1
	}
	held := normalizeSet(have)
	hit := 0
	for v := range wanted {
		if _, ok := held[v]; ok {
			hit++
		}
	}
	return float64(hit) / float64(len(wanted))
}

func normalizeSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out[v] = struct{}{}
		}
	}
	return out
}

// qualification averages diploma (exact) and experience (ratio) satisfaction
// of the listing's requirements by the person.
func qualification(listing, person Attributes) (float64, bool) {
	var sum float64
	var parts int
	if d := strings.TrimSpace(listing.RequiredDiploma); d != "" {
		parts++
		if strings.EqualFold(d, strings.TrimSpace(person.Diploma)) {
			sum++
		}
	}
	if listing.MinExperienceYears > 0 {
		parts++
		sum += math.Min(1, float64(max(person.ExperienceYears, 0))/float64(listing.MinExperienceYears))
	}
	if parts == 0 {
		return 0, false
	}
	return sum / float64(parts), true
}

// availabilityCoverage is the share of the still-open part of want covered by
// the union of declared windows. A window already over scores 0.
func availabilityCoverage(want Window, declared []Window, now time.Time) float64 {
	if want.Start.Before(now) {
		want.Start = now
	}
	total := want.Duration()
	if total <= 0 {
		return 0
	}

	clipped := make([]Window, 0, len(declared))
	for _, w := range declared {
		if w.Start.Before(want.Start) {
			w.Start = want.Start
		}
		if w.End.After(want.End) {
			w.End = want.End
		}
		if w.Duration() > 0 {
			clipped = append(clipped, w)
		}
	}
	sort.Slice(clipped, func(i, j int) bool { return clipped[i].Start.Before(clipped[j].Start) })

	var covered time.Duration
	var cur *Window
	for i := range clipped {
		w := clipped[i]
		if cur == nil {
			cur = &w
			continue
		}
		if !w.Start.After(cur.End) {
			if w.End.After(cur.End) {
				cur.End = w.End
			}
			continue
		}
		covered += cur.Duration()
		cur = &w
	}
	if cur != nil {
		covered += cur.Duration()
	}
	return clamp01(float64(covered) / float64(total))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
