// Package vecmath provides the small amount of vector algebra the camera
// model and the projection engine need.
//
// Vectors are [mgl64.Vec3] and [mgl64.Vec2] values, so every operation
// returns a new value and never mutates its operands.
//
//   - [Inner3], [Inner2]: inner products
//   - [Cross]: 3D cross product
//   - [Normalize]: unit vector (undefined for the zero vector)
//   - [Rotate]: Rodrigues' rotation about an arbitrary axis
package vecmath
