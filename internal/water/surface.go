package water

import "github.com/Faultbox/buoyancy/pkg/math"

// Surface is a grid of wave vertices sampled from a WaveField.
// Vertices are laid out row by row along X, then Z.
type Surface struct {
	Vertices []float32 // Flat array: x,y,z for each vertex
	Cols     int       // Vertices per row (along X)
	Rows     int       // Number of rows (along Z)
}

// DefaultPadding extends the surface beyond the area of interest.
const DefaultPadding = 5.0

// BuildSurface samples field over [minX,maxX]x[minZ,maxZ] with segX by segZ
// segments. segX is raised to at least 1; segZ of 0 yields a single row at minZ.
func BuildSurface(field *WaveField, minX, maxX, minZ, maxZ float32, segX, segZ int) *Surface {
	if segX < 1 {
		segX = 1
	}
	if segZ < 0 {
		segZ = 0
	}
	cols, rows := segX+1, segZ+1

	s := &Surface{
		Vertices: make([]float32, 0, cols*rows*3),
		Cols:     cols,
		Rows:     rows,
	}
	stepX := (maxX - minX) / float32(segX)
	var stepZ float32
	if segZ > 0 {
		stepZ = (maxZ - minZ) / float32(segZ)
	}
	for r := 0; r < rows; r++ {
		z := minZ + stepZ*float32(r)
		for c := 0; c < cols; c++ {
			x := minX + stepX*float32(c)
			s.Vertices = append(s.Vertices, x, 0, z)
		}
	}
	s.Update(field)
	return s
}

// BuildSurfaceWithPadding builds a surface with padding around the bounds.
func BuildSurfaceWithPadding(field *WaveField, minX, maxX, minZ, maxZ, padding float32, segX, segZ int) *Surface {
	return BuildSurface(field, minX-padding, maxX+padding, minZ-padding, maxZ+padding, segX, segZ)
}

// Update re-samples every vertex height from the field's current phase.
func (s *Surface) Update(field *WaveField) {
	for i := 0; i+2 < len(s.Vertices); i += 3 {
		s.Vertices[i+1] = field.HeightAt(s.vertex(i))
	}
}

// Height returns the sampled height of the vertex at column c, row r.
func (s *Surface) Height(c, r int) float32 {
	return s.Vertices[(r*s.Cols+c)*3+1]
}

// X returns the X coordinate of column c.
func (s *Surface) X(c int) float32 {
	return s.Vertices[c*3]
}

func (s *Surface) vertex(i int) math.Vec3 {
	return math.Vec3{X: s.Vertices[i], Y: s.Vertices[i+1], Z: s.Vertices[i+2]}
}
