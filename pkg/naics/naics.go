// Package naics contiene utilidades puras para códigos de clasificación
// industrial jerárquicos (patrón NAICS, 2 a 6 dígitos).
//
// Estructura del código:
//   - 2 dígitos: Sector            (ej. "23" = Construcción)
//   - 3 dígitos: Subsector         (ej. "238" = Specialty Trade Contractors)
//   - 4 dígitos: Grupo industrial  (ej. "2381")
//   - 5 dígitos: Industria NAICS   (ej. "23816")
//   - 6 dígitos: Industria nacional (ej. "238160" = Roofing Contractors)
package naics

import "strings"

// Level identifica el nivel jerárquico de un código.
type Level string

const (
	LevelSector           Level = "sector"
	LevelSubsector        Level = "subsector"
	LevelIndustryGroup    Level = "industry-group"
	LevelNAICSIndustry    Level = "naics-industry"
	LevelNationalIndustry Level = "national-industry"
)

// Normalize elimina todo carácter no numérico del código.
// No valida longitud: eso es responsabilidad de IsValid.
func Normalize(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Hierarchy devuelve la jerarquía completa de un código, del más general
// al más específico. Ej: "238160" -> ["23", "238", "2381", "23816", "238160"].
// Un código de 2 dígitos produce una sola entrada; uno inválido (menos de
// 2 dígitos tras normalizar) produce una lista vacía.
func Hierarchy(code string) []string {
	c := Normalize(code)
	hierarchy := make([]string, 0, 5)
	for n := 2; n <= 6; n++ {
		if len(c) >= n {
			hierarchy = append(hierarchy, c[:n])
		}
	}
	return hierarchy
}

// GetLevel devuelve el nivel jerárquico según la longitud normalizada.
// Cualquier longitud fuera de [2,6] degrada a LevelSector (comportamiento
// permisivo heredado; usar IsValid si se necesita rechazar el código).
func GetLevel(code string) Level {
	switch len(Normalize(code)) {
	case 2:
		return LevelSector
	case 3:
		return LevelSubsector
	case 4:
		return LevelIndustryGroup
	case 5:
		return LevelNAICSIndustry
	case 6:
		return LevelNationalIndustry
	default:
		return LevelSector
	}
}

// Sector devuelve el prefijo de 2 dígitos de cualquier código.
// Si el código normalizado tiene menos de 2 dígitos devuelve lo que haya.
func Sector(code string) string {
	c := Normalize(code)
	if len(c) > 2 {
		return c[:2]
	}
	return c
}

// Subsector devuelve el prefijo de 3 dígitos, o cadena vacía si el código
// no alcanza ese nivel.
func Subsector(code string) string {
	c := Normalize(code)
	if len(c) < 3 {
		return ""
	}
	return c[:3]
}

// IsInSector informa si el código pertenece al sector indicado.
func IsInSector(code, sectorCode string) bool {
	return Sector(code) == sectorCode
}

// IsValid informa si el código normalizado tiene entre 2 y 6 dígitos.
func IsValid(code string) bool {
	n := len(Normalize(code))
	return n >= 2 && n <= 6
}

// Format devuelve el código con guiones para presentación:
// "23" -> "23", "2381" -> "23-81", "238160" -> "23-81-60".
func Format(code string) string {
	c := Normalize(code)
	if len(c) <= 2 {
		return c
	}
	if len(c) <= 4 {
		return c[:2] + "-" + c[2:]
	}
	return c[:2] + "-" + c[2:4] + "-" + c[4:]
}
