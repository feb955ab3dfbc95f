package naics

import "sort"

// =============================================================================
// Catálogo de sectores NAICS de 2 dígitos (nombres oficiales en inglés).
// Manufactura y comercio ocupan varios códigos de 2 dígitos; el nombre se
// repite a propósito.
// =============================================================================

// UnknownSectorName es el centinela para códigos fuera del catálogo.
// Se devuelve en lugar de fallar (comportamiento permisivo heredado).
const UnknownSectorName = "Unknown Sector"

var sectorNames = map[string]string{
	"11": "Agriculture, Forestry, Fishing and Hunting",
	"21": "Mining, Quarrying, and Oil and Gas Extraction",
	"22": "Utilities",
	"23": "Construction",
	"31": "Manufacturing",
	"32": "Manufacturing",
	"33": "Manufacturing",
	"42": "Wholesale Trade",
	"44": "Retail Trade",
	"45": "Retail Trade",
	"48": "Transportation and Warehousing",
	"49": "Transportation and Warehousing",
	"51": "Information",
	"52": "Finance and Insurance",
	"53": "Real Estate and Rental and Leasing",
	"54": "Professional, Scientific, and Technical Services",
	"55": "Management of Companies and Enterprises",
	"56": "Administrative and Support and Waste Management",
	"61": "Educational Services",
	"62": "Health Care and Social Assistance",
	"71": "Arts, Entertainment, and Recreation",
	"72": "Accommodation and Food Services",
	"81": "Other Services (except Public Administration)",
	"92": "Public Administration",
}

// SectorName devuelve el nombre del sector para un código de 2 dígitos.
// Códigos desconocidos devuelven UnknownSectorName.
func SectorName(sectorCode string) string {
	if name, ok := sectorNames[sectorCode]; ok {
		return name
	}
	return UnknownSectorName
}

// AllSectorCodes devuelve todos los códigos de sector del catálogo,
// ordenados ascendentemente para salida estable.
func AllSectorCodes() []string {
	codes := make([]string, 0, len(sectorNames))
	for code := range sectorNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
