package http

import "strings"

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, fe := range list {
		if fe.Field == field && strings.Contains(fe.Message, substr) {
			return true
		}
	}
	return false
}
