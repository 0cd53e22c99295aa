package calendar

// Season is one of the five liturgical seasons a day can fall in.
type Season string

const (
	SeasonAdvent    Season = "Advent"
	SeasonChristmas Season = "Christmas"
	SeasonLent      Season = "Lent"
	SeasonEaster    Season = "Easter"
	SeasonOrdinary  Season = "Ordinary Time"
)

// ValidSeasons returns every season in calendar order.
func ValidSeasons() []Season {
	return []Season{
		SeasonAdvent,
		SeasonChristmas,
		SeasonLent,
		SeasonEaster,
		SeasonOrdinary,
	}
}

// IsValid checks if a season is one of ValidSeasons.
func (s Season) IsValid() bool {
	for _, valid := range ValidSeasons() {
		if s == valid {
			return true
		}
	}
	return false
}

// Placement is the span of a season that contains a given date, together
// with the anchor set the span was measured from.
type Placement struct {
	Season  Season
	Anchors Anchors
	Start   Date // first day of the span
	End     Date // exclusive
}

// Contains reports whether d lies in the placement's span.
func (p Placement) Contains(d Date) bool {
	return d.within(p.Start, p.End)
}

// Classify determines the season span containing d.
//
// Spans are checked in order and the first match wins:
//
//	[AdventStart, Christmas)       Advent
//	[Christmas, next Epiphany)     Christmas
//	[AshWednesday, Easter)         Lent
//	[Easter, Pentecost)            Easter
//	anything else                  Ordinary Time
//
// The Christmas season crosses the turn of the year, so a date in early
// January is checked against the previous year's anchors first.
func Classify(d Date) Placement {
	current := AnchorsFor(d.Year)
	for _, a := range candidateAnchors(d, current) {
		for _, span := range seasonSpans(a) {
			if span.Contains(d) {
				return span
			}
		}
	}
	return ordinarySpan(d, current)
}

// candidateAnchors returns the anchor sets whose spans may contain d,
// earliest year first.
func candidateAnchors(d Date, current Anchors) []Anchors {
	if d.Before(current.Epiphany) {
		return []Anchors{AnchorsFor(d.Year - 1), current}
	}
	return []Anchors{current}
}

// seasonSpans lists the non-ordinary spans measured from a, in check order.
func seasonSpans(a Anchors) []Placement {
	return []Placement{
		{Season: SeasonAdvent, Anchors: a, Start: a.AdventStart, End: a.Christmas},
		{Season: SeasonChristmas, Anchors: a, Start: a.Christmas, End: a.ChristmasEnd()},
		{Season: SeasonLent, Anchors: a, Start: a.AshWednesday, End: a.Easter},
		{Season: SeasonEaster, Anchors: a, Start: a.Easter, End: a.Pentecost},
	}
}

// ordinarySpan returns the Ordinary Time span of a's year that contains d:
// either Epiphany up to Ash Wednesday or Pentecost up to Advent.
// d must not lie in any of a's other season spans.
func ordinarySpan(d Date, a Anchors) Placement {
	if d.Before(a.AshWednesday) {
		return Placement{Season: SeasonOrdinary, Anchors: a, Start: a.Epiphany, End: a.AshWednesday}
	}
	return Placement{Season: SeasonOrdinary, Anchors: a, Start: a.Pentecost, End: a.AdventStart}
}
