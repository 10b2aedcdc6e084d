package gmt

import (
	"fmt"
	"sort"
	"strings"
)

// Options holds module options keyed by the engine's flag letters, e.g.
// Options{"R": "0/10/0/10", "A": true, "E": 300}. Values serialize as:
//
//   - bool: true emits the bare flag ("-A"), false omits it
//   - nil: emits the bare flag
//   - []string: repeats the flag once per element
//   - anything else: appended to the flag verbatim ("-E300")
type Options map[string]any

// String serializes the options into the engine's flag syntax, with
// flags in sorted order so the result is deterministic.
func (o Options) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := o[k].(type) {
		case bool:
			if v {
				parts = append(parts, "-"+k)
			}
		case nil:
			parts = append(parts, "-"+k)
		case []string:
			for _, item := range v {
				parts = append(parts, "-"+k+item)
			}
		default:
			parts = append(parts, fmt.Sprintf("-%s%v", k, v))
		}
	}
	return strings.Join(parts, " ")
}

// clone returns a shallow copy so defaults can be applied without
// mutating the caller's map.
func (o Options) clone() Options {
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}
