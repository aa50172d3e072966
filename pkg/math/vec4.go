package math

// Vec4 is a 4-component vector. Surface vertices are stored with w = 1 and
// normals with w = 0, matching the layout uploaded to the GPU.
type Vec4 [4]float32

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Mul returns the component-wise product.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}
