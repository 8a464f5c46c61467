package core

// XyzE is a CIE XYZ tristimulus value under the equal-energy
// illuminant (whitepoint E), the color representation used
// internally throughout rendering. It is an alias of
// Vec3 rather than a distinct type: every Vec3 arithmetic helper
// (Add, Multiply, MultiplyVec, Clamp, ...) applies equally to colors.
type XyzE = Vec3
