package system

import (
	"math"

	"go-artillery/internal/component"
	"go-artillery/internal/entity"
	"go-artillery/internal/input"
	"go-artillery/internal/types"
	"go-artillery/internal/utils"
)

// CameraSystem двигает видимую область по уровню: скольжение к точке,
// следование за объектом или прокрутка стрелками.
type CameraSystem struct {
	ecs *entity.ECS

	Position component.Position
	MinBound component.Position
	MaxBound component.Position

	viewW, viewH float64
	scrollSpeed  float64

	mode      component.CameraMode
	following types.EntityID
	goal      component.Position
	original  component.Position // distance to goal when the slide began
	speed     float64
	smooth    bool
}

// NewCameraSystem creates an idle camera over a level of the given size.
func NewCameraSystem(ecs *entity.ECS, levelW, levelH, viewW, viewH, scrollSpeed float64) *CameraSystem {
	return &CameraSystem{
		ecs:         ecs,
		MaxBound:    component.Position{X: math.Max(0, levelW-viewW), Y: math.Max(0, levelH-viewH)},
		viewW:       viewW,
		viewH:       viewH,
		scrollSpeed: scrollSpeed,
		speed:       scrollSpeed,
	}
}

func (c *CameraSystem) Mode() component.CameraMode {
	return c.mode
}

// Sliding reports whether a slide is still in progress.
func (c *CameraSystem) Sliding() bool {
	return c.mode == component.CameraSliding
}

// Move shifts the camera by a velocity in pixels per second.
func (c *CameraSystem) Move(vx, vy, dt float64) {
	c.Position.X += vx * dt
	c.Position.Y += vy * dt
	c.clamp()
}

// Warp jumps straight to a position.
func (c *CameraSystem) Warp(x, y float64) {
	c.Position.X = x
	c.Position.Y = y
	c.clamp()
}

// SlideTo starts a slide towards (x, y). A smooth slide slows down as it
// approaches the goal. Ignored unless the camera is idle; speed <= 0
// uses the configured scroll speed.
func (c *CameraSystem) SlideTo(x, y float64, smooth bool, speed float64) {
	if c.mode != component.CameraIdle {
		return
	}
	c.goal = component.Position{
		X: utils.Clamp(x, c.MinBound.X, c.MaxBound.X),
		Y: utils.Clamp(y, c.MinBound.Y, c.MaxBound.Y),
	}
	c.speed = speed
	if c.speed <= 0 {
		c.speed = c.scrollSpeed
	}
	c.smooth = smooth
	c.mode = component.CameraSliding
	c.original = component.Position{
		X: math.Abs(c.goal.X - c.Position.X),
		Y: math.Abs(c.goal.Y - c.Position.Y),
	}
}

// Follow keeps id centred on screen. Ignored unless the camera is idle.
func (c *CameraSystem) Follow(id types.EntityID) {
	if c.mode != component.CameraIdle {
		return
	}
	c.mode = component.CameraFollowing
	c.following = id
}

// StopFollowing returns the camera to idle.
func (c *CameraSystem) StopFollowing() {
	if c.mode == component.CameraIdle {
		return
	}
	c.mode = component.CameraIdle
	c.following = types.NoEntity
}

// Update advances the slide or follow. While idle and not aiming the
// arrow keys scroll the view.
func (c *CameraSystem) Update(dt float64, keys input.KeyState, aiming bool) {
	switch c.mode {
	case component.CameraSliding:
		c.updateSlide(dt)
	case component.CameraFollowing:
		body, ok := c.ecs.Bodies[c.following]
		if !ok {
			c.StopFollowing()
			return
		}
		c.Warp(body.Pos.X-c.viewW/2, body.Pos.Y-c.viewH/2)
	default:
		if aiming || keys == nil {
			return
		}
		if keys.Pressed(input.KeyRight) {
			c.Move(c.scrollSpeed, 0, dt)
		}
		if keys.Pressed(input.KeyLeft) {
			c.Move(-c.scrollSpeed, 0, dt)
		}
	}
}

func (c *CameraSystem) updateSlide(dt float64) {
	dx := c.goal.X - c.Position.X
	dy := c.goal.Y - c.Position.Y
	distX, distY := math.Abs(dx), math.Abs(dy)

	if distX <= c.speed/1000 && distY <= c.speed/1000 {
		c.Warp(c.goal.X, c.goal.Y)
		c.mode = component.CameraIdle
		return
	}

	length := math.Hypot(dx, dy)
	dirX, dirY := dx/length, dy/length

	scaleX, scaleY := c.speed, c.speed
	if c.smooth {
		if c.original.X != 0 {
			scaleX *= 3 * (distX/c.original.X + 0.05)
		}
		if c.original.Y != 0 {
			scaleY *= 3 * (distY/c.original.Y + 0.05)
		}
	}

	// never step past the goal
	stepX := math.Min(math.Abs(dirX*scaleX*dt), distX) * utils.Sign(dx)
	stepY := math.Min(math.Abs(dirY*scaleY*dt), distY) * utils.Sign(dy)
	c.Warp(c.Position.X+stepX, c.Position.Y+stepY)
}

func (c *CameraSystem) clamp() {
	c.Position.X = utils.Clamp(c.Position.X, c.MinBound.X, c.MaxBound.X)
	c.Position.Y = utils.Clamp(c.Position.Y, c.MinBound.Y, c.MaxBound.Y)
}
