package vars

import "strings"

func DerefOrZero[T any](ptr *T) (ret T) {
	if ptr != nil {
		ret = *ptr
	}
	return
}

// FirstNonZero picks the first set value in flag, config, default order.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}

func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}
