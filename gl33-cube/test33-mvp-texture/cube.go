package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-gl/example/internal/mvp"
)

var (
	program  uint32
	vao      uint32
	vbo      uint32
	ibo      uint32
	texture  uint32
	modelLoc int32
	pipeline *mvp.Pipeline
)

// generic vertex attribute locations, fixed by layout(location = n) in the shader
const (
	attribPosition = 0
	attribColor    = 1
	attribTexCoord = 2
)

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	cfg := mvp.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalln("invalid configuration:", err)
	}

	// initalize glfw
	err := glfw.Init()
	if err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	// use OpenGL v3.3 core
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// create window handle
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.SetPos(cfg.PosX, cfg.PosY)
	window.SetSizeCallback(windowResize)
	window.SetKeyCallback(keyPressed)
	window.MakeContextCurrent()

	// initialize OpenGL
	err = gl.Init()
	if err != nil {
		log.Fatalln("failed to initialize OpenGL:", err)
	}
	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	// pre-gameloop setup
	if err := setup(cfg); err != nil {
		log.Fatalln(err)
	}
	defer teardown()

	// run gameloop
	for !window.ShouldClose() {

		// draw into buffer
		if err := draw(glfw.GetTime()); err != nil {
			log.Fatalln("failed to draw frame:", err)
		}

		// render buffer to screen
		window.SwapBuffers()

		// glfw events?
		glfw.PollEvents()

	}

}

// projection keeps the initial window size in world units, only the viewport follows the window
func windowResize(w *glfw.Window, width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func keyPressed(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

func setup(cfg mvp.Config) error {

	// cleared background color
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], cfg.ClearColor[3])

	// hide faces behind other faces
	gl.Enable(gl.DEPTH_TEST)

	// respect texture alpha
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	// create shader program
	var err error
	program, err = newProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	gl.UseProgram(program)

	// prepare vao/vbo/ibo buffers
	setupBuffers()

	// download and upload the texture
	if err := setupTexture(cfg); err != nil {
		return err
	}

	// model/view/projection uniforms
	setupCamera(cfg)

	if err := glError(); err != nil {
		return fmt.Errorf("failed to set up scene: %w", err)
	}
	return nil

}

// https://www.songho.ca/opengl/gl_vbo.html#create
func setupBuffers() {

	// core profile needs a vertex array object to hold the attribute state
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	// create VBOs
	gl.GenBuffers(1, &vbo) // for vertex buffer
	gl.GenBuffers(1, &ibo) // for index buffer

	// copy vertex data to VBO
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mvp.CubeVertices)*mvp.FloatSize, gl.Ptr(mvp.CubeVertices), gl.STATIC_DRAW)

	// copy index data to VBO, the binding is recorded in the VAO
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mvp.CubeIndices)*mvp.IndexSize, gl.Ptr(mvp.CubeIndices), gl.STATIC_DRAW)

	// position, color and uv are interleaved in one buffer
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointer(attribPosition, mvp.PositionSize, gl.FLOAT, false, mvp.Stride(), gl.PtrOffset(mvp.AttribOffset(mvp.PositionOffset))) // PtrOffset = 0

	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointer(attribColor, mvp.ColorSize, gl.FLOAT, false, mvp.Stride(), gl.PtrOffset(mvp.AttribOffset(mvp.ColorOffset))) // PtrOffset = 12

	gl.EnableVertexAttribArray(attribTexCoord)
	gl.VertexAttribPointer(attribTexCoord, mvp.TexCoordSize, gl.FLOAT, false, mvp.Stride(), gl.PtrOffset(mvp.AttribOffset(mvp.TexCoordOffset))) // PtrOffset = 24

}

func setupTexture(cfg mvp.Config) error {

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()

	img, err := mvp.OpenImage(ctx, http.DefaultClient, cfg.TextureURL)
	if err != nil {
		return fmt.Errorf("failed to load texture: %w", err)
	}
	log.Printf("texture %s: %dx%d", cfg.TextureURL, img.Rect.Dx(), img.Rect.Dy())

	texture = newTexture(img)

	// sampler reads texture unit 0
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.Uniform1i(uniformLocation("s_texture"), 0)

	return nil

}

// Local Space -> (model) -> World Space -> (view) -> View Space -> (projection) -> Clip Space
//
// view and projection never change, so they are uploaded once here;
// the model matrix is uploaded every frame by draw()
//
// https://learnopengl.com/Getting-started/Coordinate-Systems
func setupCamera(cfg mvp.Config) {

	pipeline = mvp.NewPipeline(cfg)

	// CREATE (CAMERA) VIEW MATRIX
	view := pipeline.View
	gl.UniformMatrix4fv(uniformLocation("view"), 1, false, &view[0])

	// CREATE (ORTHOGRAPHIC) PROJECTION MATRIX
	// one world unit is one pixel of the initial window
	projection := pipeline.Projection
	gl.UniformMatrix4fv(uniformLocation("projection"), 1, false, &projection[0])

	// (OBJECT) MODEL MATRIX, see draw()
	modelLoc = uniformLocation("model")

}

func draw(t float64) error {

	// clear screen
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// rotate around x and y, then place the cube
	model := pipeline.Model(t)
	gl.UniformMatrix4fv(modelLoc, 1, false, &model[0])

	// draw cube
	gl.BindVertexArray(vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(mvp.CubeIndices)), gl.UNSIGNED_INT, gl.PtrOffset(0))

	// check for accumulated OpenGL errors
	return glError()

}

func teardown() {
	gl.DeleteTextures(1, &texture)
	gl.DeleteBuffers(1, &ibo)
	gl.DeleteBuffers(1, &vbo)
	gl.DeleteVertexArrays(1, &vao)
	gl.DeleteProgram(program)
}
