package exporter

import (
	"strconv"

	"generationscli/pkg/contracts/domain"
)

// formatAge renders an age cell, or "-" for a party without members
func formatAge(r domain.AgeRange, age int) string {
	if !r.HasMembers() {
		return "-"
	}
	return strconv.Itoa(age)
}
