package cga

import "strconv"

// Score is an engine evaluation: either a centipawn value or a forced mate
// distance. Engine scores are relative to the side to move.
type Score struct {
	// Centipawns is the evaluation in centipawns.
	// Nil if the position has a forced mate.
	Centipawns *int

	// Mate is the number of moves until checkmate, negative when the
	// opponent delivers it. Nil if there is no forced mate.
	Mate *int
}

// CentipawnScore returns a centipawn-valued score.
func CentipawnScore(cp int) Score {
	return Score{Centipawns: &cp}
}

// MateScore returns a forced-mate score.
func MateScore(moves int) Score {
	return Score{Mate: &moves}
}

// IsMate returns true if the score is a forced checkmate.
func (s Score) IsMate() bool {
	return s.Mate != nil
}

// Pawns returns the centipawn component expressed in pawns.
// A score with no centipawn component counts as 0.
func (s Score) Pawns() float64 {
	if s.Centipawns == nil {
		return 0
	}
	return float64(*s.Centipawns) / 100
}

// Negated returns the score from the other side's perspective.
func (s Score) Negated() Score {
	var out Score
	if s.Centipawns != nil {
		cp := -*s.Centipawns
		out.Centipawns = &cp
	}
	if s.Mate != nil {
		m := -*s.Mate
		out.Mate = &m
	}
	return out
}

// Diff combines two consecutive half-move scores into a swing. Scores are
// side-to-move relative, so adding them yields the differential with White
// positive. Two centipawn scores sum their centipawns, two mate scores sum
// their mate distances, and a mixed pair keeps both components so consumers
// can prefer the mate. Diff is symmetric in its operands.
func Diff(a, b Score) Score {
	switch {
	case a.Mate != nil && b.Mate != nil:
		mate := *a.Mate + *b.Mate
		zero := 0
		return Score{Centipawns: &zero, Mate: &mate}
	case a.Mate != nil:
		cp := cpOrZero(b)
		mate := *a.Mate
		return Score{Centipawns: &cp, Mate: &mate}
	case b.Mate != nil:
		cp := cpOrZero(a)
		mate := *b.Mate
		return Score{Centipawns: &cp, Mate: &mate}
	default:
		cp := cpOrZero(a) + cpOrZero(b)
		return Score{Centipawns: &cp}
	}
}

func cpOrZero(s Score) int {
	if s.Centipawns == nil {
		return 0
	}
	return *s.Centipawns
}

// String returns a human-readable score string, preferring the mate
// component. Examples: "+1.25", "-0.50", "#3", "#-5"
func (s Score) String() string {
	if s.Mate != nil {
		return "#" + strconv.Itoa(*s.Mate)
	}
	if s.Centipawns == nil {
		return "?"
	}
	cp := *s.Centipawns
	sign := "+"
	if cp < 0 {
		sign = "-"
		cp = -cp
	}
	whole := cp / 100
	frac := cp % 100
	if frac < 10 {
		return sign + strconv.Itoa(whole) + ".0" + strconv.Itoa(frac)
	}
	return sign + strconv.Itoa(whole) + "." + strconv.Itoa(frac)
}
