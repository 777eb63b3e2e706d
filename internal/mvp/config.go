package mvp

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// DefaultTextureURL is the image wrapped around every cube face.
const DefaultTextureURL = "https://cdn.jsdelivr.net/gh/sheng962464/PicGo/img/20210310113410.jpg"

// Config holds everything the demo lets you change from the command line.
type Config struct {
	Width        int
	Height       int
	Title        string
	PosX         int
	PosY         int
	TextureURL   string // http(s) URL or local file path
	FetchTimeout time.Duration
	Spin         float64
	ClearColor   [4]float32
	Near         float32
	Far          float32
}

func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		Title:        "Hello World",
		PosX:         2480,
		PosY:         240,
		TextureURL:   DefaultTextureURL,
		FetchTimeout: 30 * time.Second,
		Spin:         0.5,
		ClearColor:   [4]float32{0.3, 0.5, 0.5, 1},
		Near:         -1000,
		Far:          1000,
	}
}

// RegisterFlags binds the command line flags to c, using the current values
// of c as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.PosX, "x", c.PosX, "window x position on screen")
	fs.IntVar(&c.PosY, "y", c.PosY, "window y position on screen")
	fs.StringVar(&c.TextureURL, "texture", c.TextureURL, "texture image URL or file path")
	fs.DurationVar(&c.FetchTimeout, "timeout", c.FetchTimeout, "texture download timeout")
	fs.Float64Var(&c.Spin, "spin", c.Spin, "rotation speed in radians per second")
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.TextureURL == "" {
		return errors.New("texture source is empty")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("invalid fetch timeout %v", c.FetchTimeout)
	}
	if c.Near == c.Far {
		return fmt.Errorf("near and far planes are equal (%v)", c.Near)
	}
	return nil
}
