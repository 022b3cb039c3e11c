package misc

import (
	"strings"
)

const StandardTimestamp = `20060102`

func TrimEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func DoesIntersect(opts []string, tg []string) bool {
	for _, o := range opts {
		for _, t := range tg {
			if t == o {
				return true
			}
		}
	}

	return false
}

func LowerSlice(s []string) []string {
	for i, v := range s {
		s[i] = strings.ToLower(v)
	}
	return s
}
