// Package display shows a rendered framebuffer in an SDL2 window.
package display

import (
	"fmt"
	"runtime"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/veandco/go-sdl2/sdl"
)

// Poll interval for the event loop
const pollDelayMs uint32 = 1000 / 30

func init() {
	// SDL video calls must stay on the main thread
	runtime.LockOSThread()
}

// Show opens a window the size of fb, draws it once and blocks until the window is
// closed or Escape is pressed.
func Show(fb *renderer.Framebuffer, title string) error {
	window, surface, err := startWindow(title, fb.Width, fb.Height)
	if err != nil {
		return err
	}
	defer stopWindow(window)

	if err := blit(surface, fb); err != nil {
		return err
	}
	if err := window.UpdateSurface(); err != nil {
		return fmt.Errorf("update window surface: %w", err)
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if isQuit(event) {
				return nil
			}
		}
		sdl.Delay(pollDelayMs)
	}
}

// startWindow initializes SDL2 and creates a window with its surface
func startWindow(title string, width, height int) (*sdl.Window, *sdl.Surface, error) {
	complete := false

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, nil, fmt.Errorf("init SDL: %w", err)
	}
	defer func() {
		if !complete {
			sdl.Quit()
		}
	}()

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, nil, fmt.Errorf("create window: %w", err)
	}
	defer func() {
		if !complete {
			window.Destroy()
		}
	}()

	surface, err := window.GetSurface()
	if err != nil {
		return nil, nil, fmt.Errorf("get window surface: %w", err)
	}

	complete = true
	return window, surface, nil
}

func stopWindow(window *sdl.Window) {
	window.Destroy()
	sdl.Quit()
}

// blit copies every framebuffer pixel to the surface, converting with the same
// clamp-and-truncate rule used for PNG output
func blit(surface *sdl.Surface, fb *renderer.Framebuffer) error {
	if err := surface.Lock(); err != nil {
		return fmt.Errorf("lock surface: %w", err)
	}
	defer surface.Unlock()

	for row := 0; row < fb.Height; row++ {
		for col := 0; col < fb.Width; col++ {
			surface.Set(col, row, renderer.Vec3ToColor(fb.At(col, row)))
		}
	}
	return nil
}

// isQuit reports whether event closes the window
func isQuit(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.KeyboardEvent:
		return e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE
	}
	return false
}
