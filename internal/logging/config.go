package logging

import (
	"fmt"
	"os"
	"strings"
)

const envVar = "LOGLEVEL"

var defaultLevel = Info

// Tag-specific overrides, in the order given. A directive may use a '*'
// suffix to match a tag prefix.
var tagLevels []tagLevel

type tagLevel struct {
	tag   string
	level Level
}

func init() {
	// LOGLEVEL is a comma-separated list of "tag=level" directives. A bare
	// level with no tag sets the default.
	for _, d := range strings.Split(os.Getenv(envVar), ",") {
		if d == "" {
			continue
		}
		parts := strings.SplitN(d, "=", 2)
		level, err := ParseLevel(parts[len(parts)-1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid %s directive %q: %s\n", envVar, d, err)
			continue
		}
		if len(parts) == 1 {
			defaultLevel = level
			DefaultLogger.Level = level
		} else {
			tagLevels = append(tagLevels, tagLevel{parts[0], level})
		}
	}
}

func levelForTag(tag string, fallback Level) Level {
	for _, tl := range tagLevels {
		if tl.tag == tag {
			return tl.level
		}
		if strings.HasSuffix(tl.tag, "*") && strings.HasPrefix(tag, strings.TrimSuffix(tl.tag, "*")) {
			return tl.level
		}
	}
	return fallback
}
