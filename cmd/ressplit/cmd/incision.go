package cmd

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ressplit/core"
)

// parseIncision maps the CLI/JSON incision names onto core.Incision.
func parseIncision(s string) (core.Incision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uncertain":
		return core.Uncertain, nil
	case "impossible":
		return core.Impossible, nil
	case "most_likely", "most-likely":
		return core.MostLikely, nil
	case "must_be", "must-be":
		return core.MustBe, nil
	default:
		return 0, fmt.Errorf("ressplit: unrecognized incision %q (want impossible, uncertain, most_likely, must_be)", s)
	}
}

// incisionName is parseIncision's inverse, used when rendering output.
func incisionName(i core.Incision) string {
	switch i {
	case core.Impossible:
		return "impossible"
	case core.Uncertain:
		return "uncertain"
	case core.MostLikely:
		return "most_likely"
	case core.MustBe:
		return "must_be"
	default:
		return "uncertain"
	}
}
