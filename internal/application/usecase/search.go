package usecase

import "strings"

// matchesSearch replica el filtro de las pantallas de administración: subcadena
// sin distinguir mayúsculas sobre los campos indicados. Término vacío acepta todo.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
