package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hubastard/aether/engine/colors"
	"gopkg.in/yaml.v3"
)

// Color accepts "#rrggbb", "#rrggbbaa" or a list of 3 or 4 channels in [0,1].
type Color colors.Color

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		v, err := parseHex(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*c = Color(v)
		return nil
	case yaml.SequenceNode:
		var ch []float32
		if err := n.Decode(&ch); err != nil {
			return err
		}
		if len(ch) != 3 && len(ch) != 4 {
			return fmt.Errorf("line %d: colour needs 3 or 4 channels, got %d", n.Line, len(ch))
		}
		v := colors.Color{0, 0, 0, 1}
		copy(v[:], ch)
		*c = Color(v.Clamp())
		return nil
	}
	return fmt.Errorf("line %d: colour must be a hex string or a list", n.Line)
}

func (c Color) MarshalYAML() (any, error) {
	argb := colors.Color(c).ARGB()
	return fmt.Sprintf("#%08x", argb<<8|argb>>24), nil
}

func parseHex(s string) (colors.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return colors.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return colors.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	// rrggbbaa -> aarrggbb
	argb := uint32(v>>8) | uint32(v&0xff)<<24
	return colors.FromARGB(argb), nil
}
