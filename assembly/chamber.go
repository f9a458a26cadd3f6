package assembly

// Chamber is the static enclosure whose interior bounds all motion. Full
// returns all three parts; the narrower levels keep the parts whose
// ObstructionClass is visible at that level. With the thesis preset's
// tagging, LessObstructive drops the door and NonObstructive keeps only the
// pole piece.
type Chamber struct {
	Walls     Part
	PolePiece Part
	Door      Part
}

// Full returns every chamber part, used for collision checks and the
// full-obstruction presentation level.
func (c Chamber) Full() []Part {
	return []Part{c.PolePiece, c.Walls, c.Door}
}

// LessObstructive returns the chamber parts visible at the less-obstructive
// presentation level, derived from each part's own ObstructionClass.
func (c Chamber) LessObstructive() []Part {
	return filterVisible(c.Full(), LessObstructive)
}

// NonObstructive returns the chamber parts visible at the non-obstructive
// presentation level, derived from each part's own ObstructionClass.
func (c Chamber) NonObstructive() []Part {
	return filterVisible(c.Full(), NonObstructive)
}

func filterVisible(parts []Part, level ObstructionClass) []Part {
	out := make([]Part, 0, len(parts))
	for _, p := range parts {
		if Visible(p.Class, level) {
			out = append(out, p)
		}
	}
	return out
}
