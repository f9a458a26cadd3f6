package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeMatchesSequentialApply(t *testing.T) {
	a := NewTransform(Vector3{X: 1, Y: 2, Z: 3}, QuaternionFromEuler(0, 0, math.Pi/2))
	b := NewTransform(Vector3{X: 0, Y: 1, Z: 0}, QuaternionFromEuler(math.Pi/4, 0, 0))
	p := Vector3{X: 2, Y: 0, Z: 1}

	composed := Compose(a, b).Apply(p)
	sequential := a.Apply(b.Apply(p))

	assert.True(t, AlmostEqual(composed, sequential), "Compose(a,b).Apply(p) must equal a.Apply(b.Apply(p))")
}

func TestIdentityIsNeutral(t *testing.T) {
	tr := NewTransform(Vector3{X: 3, Y: -1, Z: 5}, QuaternionFromEuler(0.1, 0.2, 0.3))
	p := Vector3{X: 1, Y: 1, Z: 1}

	assert.True(t, AlmostEqual(Compose(Identity(), tr).Apply(p), tr.Apply(p)))
	assert.True(t, AlmostEqual(Compose(tr, Identity()).Apply(p), tr.Apply(p)))
}

func TestInverseUndoesTransform(t *testing.T) {
	tr := NewTransform(Vector3{X: 4, Y: -2, Z: 1}, QuaternionFromEuler(0.3, -0.4, 1.1))
	p := Vector3{X: -2, Y: 3, Z: 0.5}

	roundTrip := tr.Inverse().Apply(tr.Apply(p))
	assert.True(t, AlmostEqual(roundTrip, p))
}

func TestQuaternionFromEulerIdentity(t *testing.T) {
	q := QuaternionFromEuler(0, 0, 0)
	assert.True(t, IsNormalized(q))
	assert.InDelta(t, 1.0, q.Real, 1e-12)
}

func TestAABBOverlapIsBoundaryInclusive(t *testing.T) {
	a := NewAABB(Vector3{X: 0, Y: 0, Z: 0}, Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABB(Vector3{X: 1, Y: 0, Z: 0}, Vector3{X: 2, Y: 1, Z: 1})
	assert.True(t, a.Overlaps(b), "touching faces must count as overlapping")
}

func TestTransformAABBTranslationOnly(t *testing.T) {
	box := NewAABB(Vector3{X: -1, Y: -1, Z: -1}, Vector3{X: 1, Y: 1, Z: 1})
	tr := NewTransform(Vector3{X: 5, Y: 0, Z: 0}, IdentityQuaternion())
	out := TransformAABB(box, tr)
	assert.True(t, AlmostEqual(out.Min, Vector3{X: 4, Y: -1, Z: -1}))
	assert.True(t, AlmostEqual(out.Max, Vector3{X: 6, Y: 1, Z: 1}))
}
