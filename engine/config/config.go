// Package config loads the TOML settings shared by the sample programs. Every field is
// optional: anything a file leaves out, or sets to its zero value, takes the default.
//
//	[window]
//	title = "GPU-Driven Particles"
//	width = 1920
//
//	[camera]
//	position = [0.0, 10.0, 40.0]
//	move_speed = 50.0
//
//	[shaders]
//	hot_reload = false
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid wraps every validation failure returned by Load and Parse.
var ErrInvalid = errors.New("invalid config")

// Config holds the resolved sample settings.
type Config struct {
	Window      Window
	Camera      Camera
	Shaders     Shaders
	Particles   Particles
	Screenshots Screenshots
}

// Window configures the GLFW window.
type Window struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Camera configures the starting pose, the projection and the fly controller.
type Camera struct {
	Position         mgl32.Vec3
	Pitch            float32
	Yaw              float32
	FOV              float32
	Near             float32
	Far              float32
	MoveSpeed        float32
	MouseSensitivity float32
}

// Shaders configures where shader sources are read from and whether they are
// recompiled when they change on disk.
type Shaders struct {
	Directory string
	HotReload bool
}

// Particles configures the initial particle ball.
type Particles struct {
	Count  int
	Radius float32
	Seed   uint64
}

// Screenshots configures where screenshots are written.
type Screenshots struct {
	Directory string
	Name      string
}

// file mirrors Config as it appears on disk. Pointers mark fields whose zero value is
// a meaningful setting.
type file struct {
	Window struct {
		Title  string `toml:"title"`
		Width  int    `toml:"width"`
		Height int    `toml:"height"`
		VSync  *bool  `toml:"vsync"`
	} `toml:"window"`
	Camera struct {
		Position         *[3]float32 `toml:"position"`
		Pitch            float32     `toml:"pitch"`
		Yaw              *float32    `toml:"yaw"`
		FOV              float32     `toml:"fov"`
		Near             float32     `toml:"near"`
		Far              float32     `toml:"far"`
		MoveSpeed        float32     `toml:"move_speed"`
		MouseSensitivity float32     `toml:"mouse_sensitivity"`
	} `toml:"camera"`
	Shaders struct {
		Directory string `toml:"directory"`
		HotReload *bool  `toml:"hot_reload"`
	} `toml:"shaders"`
	Particles struct {
		Count  int     `toml:"count"`
		Radius float32 `toml:"radius"`
		Seed   uint64  `toml:"seed"`
	} `toml:"particles"`
	Screenshots struct {
		Directory string `toml:"directory"`
		Name      string `toml:"name"`
	} `toml:"screenshots"`
}

// Default returns the settings the samples use without a config file: a 1280x720
// window, the camera 25 units back on +Z looking down -Z, and 2,000,000 particles in
// a ball of radius 200. The window title is left empty for each sample to fill in.
//
// Returns:
//   - Config: the default settings
func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: Camera{
			Position:         mgl32.Vec3{0, 0, 25},
			Yaw:              -90,
			FOV:              75,
			Near:             0.01,
			Far:              1000,
			MoveSpeed:        100,
			MouseSensitivity: 0.1,
		},
		Shaders: Shaders{
			Directory: "examples/assets/shaders",
			HotReload: true,
		},
		Particles: Particles{
			Count:  2_000_000,
			Radius: 200,
			Seed:   1,
		},
		Screenshots: Screenshots{
			Directory: "screenshots",
			Name:      "result",
		},
	}
}

// Load reads the TOML file at path. A path that does not exist yields the defaults.
//
// Parameters:
//   - path: the config file
//
// Returns:
//   - Config: the resolved settings
//   - error: an error if the file cannot be read, has unknown keys or fails validation
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML settings and fills in defaults. Unknown keys are rejected so
// typos do not silently fall back to a default.
//
// Parameters:
//   - data: the TOML document
//
// Returns:
//   - Config: the resolved settings
//   - error: an error if the document is malformed, has unknown keys or fails validation
func Parse(data []byte) (Config, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return Config{}, err
	}

	cfg := f.resolve(Default())
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolve overlays the file's non-zero settings on def.
func (f *file) resolve(def Config) Config {
	cfg := Config{
		Window: Window{
			Title:  common.Coalesce(f.Window.Title, def.Window.Title),
			Width:  common.Coalesce(f.Window.Width, def.Window.Width),
			Height: common.Coalesce(f.Window.Height, def.Window.Height),
			VSync:  valueOr(f.Window.VSync, def.Window.VSync),
		},
		Camera: Camera{
			Position:         def.Camera.Position,
			Pitch:            f.Camera.Pitch,
			Yaw:              valueOr(f.Camera.Yaw, def.Camera.Yaw),
			FOV:              common.Coalesce(f.Camera.FOV, def.Camera.FOV),
			Near:             common.Coalesce(f.Camera.Near, def.Camera.Near),
			Far:              common.Coalesce(f.Camera.Far, def.Camera.Far),
			MoveSpeed:        common.Coalesce(f.Camera.MoveSpeed, def.Camera.MoveSpeed),
			MouseSensitivity: common.Coalesce(f.Camera.MouseSensitivity, def.Camera.MouseSensitivity),
		},
		Shaders: Shaders{
			Directory: common.Coalesce(f.Shaders.Directory, def.Shaders.Directory),
			HotReload: valueOr(f.Shaders.HotReload, def.Shaders.HotReload),
		},
		Particles: Particles{
			Count:  common.Coalesce(f.Particles.Count, def.Particles.Count),
			Radius: common.Coalesce(f.Particles.Radius, def.Particles.Radius),
			Seed:   common.Coalesce(f.Particles.Seed, def.Particles.Seed),
		},
		Screenshots: Screenshots{
			Directory: common.Coalesce(f.Screenshots.Directory, def.Screenshots.Directory),
			Name:      common.Coalesce(f.Screenshots.Name, def.Screenshots.Name),
		},
	}
	if f.Camera.Position != nil {
		cfg.Camera.Position = mgl32.Vec3(*f.Camera.Position)
	}
	return cfg
}

// Validate reports settings no sample can run with.
//
// Returns:
//   - error: an error wrapping ErrInvalid naming the first bad field
func (c Config) Validate() error {
	switch {
	case c.Window.Width < 0 || c.Window.Height < 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %g must be in (0, 180)", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far:
		return fmt.Errorf("%w: camera near %g must be positive and below far %g", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.MoveSpeed < 0 || c.Camera.MouseSensitivity < 0:
		return fmt.Errorf("%w: camera speeds must not be negative", ErrInvalid)
	case c.Particles.Count < 0 || c.Particles.Radius < 0:
		return fmt.Errorf("%w: particle count and radius must not be negative", ErrInvalid)
	}
	return nil
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
