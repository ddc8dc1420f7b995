// file: internals/features/school/service/guard.go
package service

import (
	"fmt"
	"strings"
)

// dependentPart renders one blocked-delete category, e.g. "2 lesson(s)".
// Zero counts are dropped so the message only lists what actually blocks.
// The noun carries its own plural marker ("lesson(s)", "supervised
// class(es)").
func dependentPart(parts []string, n int64, noun string) []string {
	if n <= 0 {
		return parts
	}
	return append(parts, fmt.Sprintf("%d %s", n, noun))
}

// blockedDeleteMessage aggregates every dependent category into one
// explanation, e.g. "Cannot delete this subject: it is still referenced
// by 1 teacher(s), 2 lesson(s)."
func blockedDeleteMessage(entity string, parts []string) string {
	return fmt.Sprintf("Cannot delete this %s: it is still referenced by %s.",
		entity, strings.Join(parts, ", "))
}
