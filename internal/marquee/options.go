package marquee

import (
	"math"
	"strconv"
	"strings"
)

// Attribute keys read from a wrap element.
const (
	RoleAttr         = "mq"
	RoleWrap         = "wrap"
	RoleTemplate     = "list"
	AttrSpeed        = "mq-speed"
	AttrDirection    = "mq-direction"
	AttrPauseOnHover = "mq-pause-on-hover"
	AttrGap          = "mq-gap"
	AttrFullscreen   = "mq-fullscreen"
)

// DefaultSpeed is the distance advanced per frame when no valid speed is declared.
const DefaultSpeed = 0.5

// Direction is the sign of the per-frame advance.
type Direction int

const (
	// Forward moves content toward the start edge.
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Sign returns -1 for forward motion and +1 for backward motion.
func (d Direction) Sign() float64 {
	if d == Backward {
		return 1
	}
	return -1
}

// Options are the per-wrap settings resolved from its attributes.
type Options struct {
	Speed        float64
	Direction    Direction
	PauseOnHover bool
	Gap          float64

	// Fullscreen sizes the duplication against the whole host surface
	// instead of the wrap's own row.
	Fullscreen bool
}

// Attributes exposes attribute lookup on a host element.
type Attributes interface {
	Attr(key string) (string, bool)
}

// ResolveOptions reads the wrap's attributes and fills in defaults for
// anything absent or malformed. It never fails.
func ResolveOptions(attrs Attributes) Options {
	opts := Options{Speed: DefaultSpeed, Direction: Forward}
	if attrs == nil {
		return opts
	}

	if v, ok := attrs.Attr(AttrSpeed); ok {
		if s, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && s > 0 && !math.IsInf(s, 0) {
			opts.Speed = s
		}
	}

	if v, ok := attrs.Attr(AttrDirection); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "backward", "right":
			opts.Direction = Backward
		}
	}

	if v, ok := attrs.Attr(AttrPauseOnHover); ok {
		opts.PauseOnHover = strings.EqualFold(v, "true")
	}

	if v, ok := attrs.Attr(AttrGap); ok {
		if g, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && g >= 0 && !math.IsInf(g, 0) {
			opts.Gap = g
		}
	}

	// presence is enough, as with a boolean HTML attribute
	_, opts.Fullscreen = attrs.Attr(AttrFullscreen)

	return opts
}

// AttrMap is a plain map implementation of Attributes.
type AttrMap map[string]string

func (m AttrMap) Attr(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
