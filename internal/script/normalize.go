package script

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// normaliseLine lowercases raw and collapses separators to single spaces.
// Dots survive so durations like 1.5s stay intact.
func normaliseLine(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\r' || r == '_' || r == ',' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

const (
	// MinStep is the smallest fixed step a script may set with tick.
	MinStep = 0.001
	// MaxDuration caps every parsed duration, in seconds.
	MaxDuration = 600.0
)

// parseSeconds accepts Go duration strings ("1.5s", "500ms") or a bare
// number of seconds, in [0, MaxDuration].
func parseSeconds(token string) (float64, bool) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		d, derr := time.ParseDuration(token)
		if derr != nil {
			return 0, false
		}
		v = d.Seconds()
	}
	if v < 0 || v > MaxDuration || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// mapDirection returns a unit joystick direction (x right, y up).
func mapDirection(token string) (float64, float64, bool) {
	const d = math.Sqrt2 / 2
	switch token {
	case "n", "north", "up":
		return 0, 1, true
	case "s", "south", "down":
		return 0, -1, true
	case "e", "east", "right":
		return 1, 0, true
	case "w", "west", "left":
		return -1, 0, true
	case "ne", "northeast":
		return d, d, true
	case "nw", "northwest":
		return -d, d, true
	case "se", "southeast":
		return d, -d, true
	case "sw", "southwest":
		return -d, -d, true
	default:
		return 0, 0, false
	}
}

func expectField(token string) (string, bool) {
	switch token {
	case "logs", "log":
		return "logs", true
	case "money", "balance":
		return "money", true
	case "anim", "animation":
		return "anim", true
	case "tree", "rubbing":
		return "tree", true
	default:
		return "", false
	}
}
