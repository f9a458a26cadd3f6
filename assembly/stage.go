package assembly

import (
	"github.com/Jinderamarak/safe-stage/collision"
	"github.com/Jinderamarak/safe-stage/spatial"
)

// Stage is the 6-DOF mechanism that positions the specimen inside the
// chamber: a fixed base, a tilter rotating around a pivot, and an optional
// holder (carrying an optional sample) riding the tilter.
type Stage struct {
	Base          Part
	Tilter        Part
	RotationPivot spatial.Vector3
	StageOffset   spatial.Vector3
	Holder        *Holder
}

// MoveTo computes the world placement of every stage-owned part at the
// given pose, without mutating the stage. The base takes no rotation from
// the pose (only its own fixed Local transform) and translates with the
// pose only; the tilter rotates around
// RotationPivot by the pose's Y rotation; the holder (and its sample)
// additionally carries the pose's Z rotation, riding the tilter.
func (s Stage) MoveTo(pose spatial.SixAxis) []collision.Placed {
	offset := pose.Translation().Add(s.StageOffset)
	tilt := spatial.QuaternionFromEuler(0, pose.RY, 0)
	rotation := spatial.QuaternionFromEuler(0, 0, pose.RZ)

	baseWorld := spatial.NewTransform(offset, spatial.IdentityQuaternion())
	tilterWorld := pivotTransform(tilt, s.RotationPivot, offset)

	placed := []collision.Placed{
		s.Base.PlacedAt(spatial.Compose(baseWorld, s.Base.Local)),
		s.Tilter.PlacedAt(spatial.Compose(tilterWorld, s.Tilter.Local)),
	}

	if s.Holder != nil {
		holderRotation := spatial.MulQuaternion(tilt, rotation)
		holderWorld := pivotTransform(holderRotation, s.RotationPivot, offset)
		placed = append(placed, s.Holder.placedAll(holderWorld)...)
	}
	return placed
}

// pivotTransform builds the world transform for a rotation applied around
// a fixed pivot point and then offset by translation: equivalent to
// rotating the part about pivot, then translating the whole assembly by
// offset.
func pivotTransform(rotation spatial.Quaternion, pivot, offset spatial.Vector3) spatial.Transform {
	toPivot := spatial.NewTransform(pivot.Mul(-1), spatial.IdentityQuaternion())
	rotate := spatial.NewTransform(spatial.Vector3{}, rotation)
	fromPivotAndOffset := spatial.NewTransform(pivot.Add(offset), spatial.IdentityQuaternion())
	return spatial.Compose(fromPivotAndOffset, spatial.Compose(rotate, toPivot))
}

// Holder clamps the specimen onto the stage and optionally carries a
// sample mesh rasterised from a height map.
type Holder struct {
	Part   Part
	Sample *Part
}

func (h *Holder) placedAll(world spatial.Transform) []collision.Placed {
	holderWorld := spatial.Compose(world, h.Part.Local)
	placed := []collision.Placed{h.Part.PlacedAt(holderWorld)}
	if h.Sample != nil {
		// The sample rides the holder, not the tilter directly, per the
		// stage <- holder <- sample composition.
		placed = append(placed, h.Sample.PlacedAt(spatial.Compose(holderWorld, h.Sample.Local)))
	}
	return placed
}
