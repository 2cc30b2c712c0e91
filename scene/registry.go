package scene

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Func plays one scene on a stage
type Func func(ctx context.Context, s *Stage) error

type entry struct {
	play     Func
	animated bool
}

var registry = map[string]entry{
	"components": {Components, false},
	"wave":       {Wave, true},
	"trace":      {Trace, true},
	"intro":      {Intro, true},
	"bounce":     {Bounce, true},
}

// Lookup returns the scene registered under name
func Lookup(name string) (Func, error) {
	e, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return e.play, nil
}

// Animated reports whether the named scene pauses between frames
func Animated(name string) bool {
	return registry[strings.ToLower(name)].animated
}

// Names returns the registered scene names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
