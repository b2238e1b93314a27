package game

import "golang.org/x/exp/slices"

// mobilityWeight scales the mobility difference against the disk difference.
const mobilityWeight = 0.1

// EvaluateMaterialMobility is the disk difference plus a tenth of the
// mobility difference, from PlayerOne's perspective.
func EvaluateMaterialMobility(b Board) float64 {
	material := float64(b.Count(PlayerOne) - b.Count(PlayerTwo))
	mobility := float64(Mobility(b, PlayerOne) - Mobility(b, PlayerTwo))
	return material + mobilityWeight*mobility
}

// OrderByCaptures sorts moves by how many disks each flips, most first. Ties
// keep their input order and Pass counts as zero. moves is not modified.
func OrderByCaptures(moves []Move, player Player, b Board) []Move {
	type scored struct {
		move  Move
		flips int
	}
	ranked := make([]scored, len(moves))
	for i, m := range moves {
		ranked[i] = scored{move: m}
		if m != Pass {
			ranked[i].flips = len(b.flips(int(m), player))
		}
	}
	slices.SortStableFunc(ranked, func(a, c scored) int {
		return c.flips - a.flips
	})

	ordered := make([]Move, len(ranked))
	for i, r := range ranked {
		ordered[i] = r.move
	}
	return ordered
}

var (
	_ Evaluate = EvaluateMaterialMobility
	_ Order    = OrderByCaptures
)
