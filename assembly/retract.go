package assembly

import (
	"github.com/Jinderamarak/safe-stage/collision"
	"github.com/Jinderamarak/safe-stage/spatial"
)

// Retract is a 1-DOF insertable device decomposed into a fixed entry part
// and a moving arm that interpolates between a retracted and inserted
// pose (translation lerped, rotation slerped).
type Retract struct {
	Entry                Part
	Arm                  Part
	RetractedPosition    spatial.Vector3
	RetractedOrientation spatial.Quaternion
	InsertedPosition     spatial.Vector3
	InsertedOrientation  spatial.Quaternion
	Origin               spatial.Transform
}

// MoveTo computes the world placement of the retract's parts at the given
// insertion level: the entry stays fixed, the arm interpolates between the
// retracted and inserted pose via LerpTransform.
func (r Retract) MoveTo(state spatial.LinearState) []collision.Placed {
	retracted := spatial.NewTransform(r.RetractedPosition, r.RetractedOrientation)
	inserted := spatial.NewTransform(r.InsertedPosition, r.InsertedOrientation)
	armOffset := spatial.LerpTransform(retracted, inserted, state.T)
	armTransform := spatial.Compose(r.Origin, armOffset)
	entryTransform := spatial.Compose(r.Origin, r.Entry.Local)

	return []collision.Placed{
		r.Entry.PlacedAt(entryTransform),
		r.Arm.PlacedAt(spatial.Compose(armTransform, r.Arm.Local)),
	}
}
