// Package mvp holds the GL-free half of the cube demo: mesh data, the
// model-view-projection matrices, texture decoding and configuration.
package mvp

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Local Space -> (model) -> World Space -> (view) -> View Space -> (projection) -> Clip Space
//
// mgl32 matrices are column-major and act on column vectors, so a chain
// reads right to left: Projection * View * Model * vertex. They can be handed
// to gl.UniformMatrix4fv as-is with transpose = false.
//
// https://learnopengl.com/Getting-started/Coordinate-Systems
type Pipeline struct {
	Scale       mgl32.Mat4 // object size in pixels
	Translation mgl32.Mat4 // object position in world space
	View        mgl32.Mat4 // world to camera
	Projection  mgl32.Mat4 // camera to clip
	Spin        float64    // radians per second around X and Y
}

// NewPipeline builds the fixed matrices for a window of cfg.Width x cfg.Height
// pixels where one world unit is one pixel.
func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{
		Scale:       mgl32.Scale3D(200, 200, 200),
		Translation: mgl32.Translate3D(400, 200, -3),
		// moving the world +200 on x is the same as moving the camera -200
		View:       mgl32.Translate3D(200, 0, 0),
		Projection: mgl32.Ortho(0, float32(cfg.Width), 0, float32(cfg.Height), cfg.Near, cfg.Far),
		Spin:       cfg.Spin,
	}
}

// Angle is the rotation angle in radians at time t seconds.
func (p *Pipeline) Angle(t float64) float32 {
	return float32(p.Spin * t)
}

// Rotation rotates around X first, then around Y, by the same angle.
// Both turns are clockwise seen from the positive end of their axis.
func (p *Pipeline) Rotation(t float64) mgl32.Mat4 {
	a := -p.Angle(t)
	return mgl32.HomogRotate3DY(a).Mul4(mgl32.HomogRotate3DX(a))
}

// Model scales, then rotates, then translates.
func (p *Pipeline) Model(t float64) mgl32.Mat4 {
	return p.Translation.Mul4(p.Rotation(t)).Mul4(p.Scale)
}

// MVP is the full local to clip transform.
func (p *Pipeline) MVP(t float64) mgl32.Mat4 {
	return p.Projection.Mul4(p.View).Mul4(p.Model(t))
}

// World maps a local point to world space.
func (p *Pipeline) World(t float64, v mgl32.Vec3) mgl32.Vec3 {
	return transformPoint(p.Model(t), v)
}

// Clip maps a local point to normalized device coordinates.
func (p *Pipeline) Clip(t float64, v mgl32.Vec3) mgl32.Vec3 {
	return transformPoint(p.MVP(t), v)
}

func transformPoint(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	h := m.Mul4x1(v.Vec4(1))
	if h.W() == 0 {
		return h.Vec3()
	}
	return h.Vec3().Mul(1 / h.W())
}
