package mvp

// vertex layout, interleaved
const (
	PositionSize   = 3 // x,y,z
	ColorSize      = 3 // r,g,b
	TexCoordSize   = 2 // u,v
	VertexSize     = 8 // PositionSize + ColorSize + TexCoordSize
	FloatSize      = 4 // a float32 is 4 bytes
	IndexSize      = 4 // a uint32 is 4 bytes
	PositionOffset = 0 // position begins at the start of a vertex
	ColorOffset    = 3 // color begins after position
	TexCoordOffset = 6 // texture coordinate begins after color

	CubeVertexCount = 24 // 6 faces, 4 vertices each
	CubeIndexCount  = 36 // 6 faces, 2 triangles each
)

// Stride is the byte distance between two consecutive vertices.
func Stride() int32 {
	return VertexSize * FloatSize
}

// AttribOffset converts a float offset inside a vertex to bytes.
func AttribOffset(floats int) int {
	return floats * FloatSize
}

// unit cube centered on the origin, one quad per face
//
//    v7----- v6
//   /|      /|
//  v3------v2|
//  | |     | |
//  | v4----|-v5
//  |/      |/
//  v0------v1
//
// each face repeats its corners so it gets its own colors and uv
var CubeVertices = []float32{
	// front
	-0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 1.0, 1.0, 1.0, 0.0, 1.0,

	// back
	-0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 1.0, 1.0, 1.0, 0.0, 1.0,

	// right
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 1.0, 1.0, 0.0, 1.0,

	// left
	-0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 1.0, 1.0, 1.0, 0.0, 1.0,

	// bottom
	-0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, -0.5, 0.5, 1.0, 1.0, 1.0, 0.0, 1.0,

	// top
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0, 1.0, 0.0, 1.0,
}

// CubeIndices draws every face as two triangles sharing the diagonal i..i+2.
var CubeIndices = makeCubeIndices()

func makeCubeIndices() []uint32 {
	indices := make([]uint32, 0, CubeIndexCount)
	for face := uint32(0); face < CubeVertexCount/4; face++ {
		i := face * 4
		indices = append(indices,
			i, i+1, i+2, // first triangle
			i+2, i+3, i, // second triangle
		)
	}
	return indices
}

// Vertex returns the position, color and texture coordinate of vertex n.
func Vertex(n int) (pos, color [3]float32, uv [2]float32) {
	v := CubeVertices[n*VertexSize : (n+1)*VertexSize]
	copy(pos[:], v[PositionOffset:PositionOffset+PositionSize])
	copy(color[:], v[ColorOffset:ColorOffset+ColorSize])
	copy(uv[:], v[TexCoordOffset:TexCoordOffset+TexCoordSize])
	return pos, color, uv
}
