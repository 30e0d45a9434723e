package sorting

import (
	"fmt"
	"strings"
)

// FormatList renders descs as "1. name asc, 2. age desc"
func FormatList(descs *Descriptions) string {
	if descs == nil || descs.Len() == 0 {
		return "none"
	}
	parts := make([]string, 0, descs.Len())
	for i, d := range descs.All() {
		parts = append(parts, fmt.Sprintf("%d. %s %s", i+1, d.Column, d.Direction))
	}
	return strings.Join(parts, ", ")
}
