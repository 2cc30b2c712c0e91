package scene

import "errors"

var (
	// ErrUnknownScene indicates a scene name that is not registered
	ErrUnknownScene = errors.New("scene: unknown scene")
	// ErrLayout indicates a maze plus margins that does not fit the screen
	ErrLayout = errors.New("scene: maze does not fit the screen")
	// ErrMissing indicates a stage built without a maze or screen
	ErrMissing = errors.New("scene: maze and screen are required")
)
