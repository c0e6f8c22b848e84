package postgres

import (
	"fmt"
	"strings"
)

// whereBuilder accumulates AND conditions with numbered placeholders.
type whereBuilder struct {
	conditions []string
	args       []interface{}
}

// add appends a condition; each %s in cond is replaced by the next placeholder for arg.
func (w *whereBuilder) add(cond string, arg interface{}) {
	w.args = append(w.args, arg)
	w.conditions = append(w.conditions, strings.ReplaceAll(cond, "%s", fmt.Sprintf("$%d", len(w.args))))
}

// addIf appends cond only for a non-empty value.
func (w *whereBuilder) addIf(cond, value string) {
	if value != "" {
		w.add(cond, value)
	}
}

func (w *whereBuilder) clause() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conditions, " AND ")
}

// next returns the placeholder for the argument appended after the current ones.
func (w *whereBuilder) next(offset int) string {
	return fmt.Sprintf("$%d", len(w.args)+offset)
}

// likePattern escapes LIKE wildcards and wraps the term in %.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(term)) + "%"
}
