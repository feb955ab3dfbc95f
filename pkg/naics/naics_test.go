package naics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-core/pkg/naics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de las utilidades de clasificación industrial jerárquica.
//
// El código de referencia en toda la suite es "238160" (Roofing Contractors):
// sector 23, subsector 238, grupo 2381, industria 23816, industria nacional
// 238160.
// ──────────────────────────────────────────────────────────────────────────────

func TestHierarchy_CodigoCompleto(t *testing.T) {
	h := naics.Hierarchy("238160")

	require.Len(t, h, 5, "un código de 6 dígitos produce los 5 niveles")
	assert.Equal(t, []string{"23", "238", "2381", "23816", "238160"}, h)
}

func TestHierarchy_LongitudesParciales(t *testing.T) {
	assert.Equal(t, []string{"23"}, naics.Hierarchy("23"))
	assert.Equal(t, []string{"23", "238"}, naics.Hierarchy("238"))
	assert.Equal(t, []string{"23", "238", "2381"}, naics.Hierarchy("2381"))
	assert.Empty(t, naics.Hierarchy("2"), "menos de 2 dígitos no tiene jerarquía")
	assert.Empty(t, naics.Hierarchy(""), "código vacío no tiene jerarquía")
}

func TestHierarchy_NormalizaAntes(t *testing.T) {
	// Guiones y espacios se eliminan antes de derivar la jerarquía.
	assert.Equal(t, []string{"23", "238", "2381", "23816", "238160"},
		naics.Hierarchy("23-81-60"))
}

func TestGetLevel_PorLongitud(t *testing.T) {
	assert.Equal(t, naics.LevelSector, naics.GetLevel("23"))
	assert.Equal(t, naics.LevelSubsector, naics.GetLevel("238"))
	assert.Equal(t, naics.LevelIndustryGroup, naics.GetLevel("2381"))
	assert.Equal(t, naics.LevelNAICSIndustry, naics.GetLevel("23816"))
	assert.Equal(t, naics.LevelNationalIndustry, naics.GetLevel("238160"))
}

func TestGetLevel_FueraDeRangoDegradaASector(t *testing.T) {
	// Comportamiento permisivo: longitudes inválidas no explotan, degradan.
	assert.Equal(t, naics.LevelSector, naics.GetLevel(""))
	assert.Equal(t, naics.LevelSector, naics.GetLevel("2"))
	assert.Equal(t, naics.LevelSector, naics.GetLevel("2381600"))
}

func TestSectorYSubsector(t *testing.T) {
	assert.Equal(t, "23", naics.Sector("238160"))
	assert.Equal(t, "23", naics.Sector("23"))
	assert.Equal(t, "2", naics.Sector("2"), "con menos de 2 dígitos devuelve lo que haya")

	assert.Equal(t, "238", naics.Subsector("238160"))
	assert.Equal(t, "", naics.Subsector("23"), "un sector no tiene subsector")
}

func TestIsInSector(t *testing.T) {
	assert.True(t, naics.IsInSector("238160", "23"))
	assert.False(t, naics.IsInSector("238160", "54"))
}

func TestIsValid(t *testing.T) {
	assert.True(t, naics.IsValid("23"))
	assert.True(t, naics.IsValid("238160"))
	assert.True(t, naics.IsValid("23-81-60"), "la validación normaliza primero")

	assert.False(t, naics.IsValid(""))
	assert.False(t, naics.IsValid("2"))
	assert.False(t, naics.IsValid("2381600"))
	assert.False(t, naics.IsValid("abc"), "sin dígitos no hay código")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "238160", naics.Normalize("23-81-60"))
	assert.Equal(t, "238160", naics.Normalize(" 238 160 "))
	assert.Equal(t, "", naics.Normalize("sector"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "23", naics.Format("23"))
	assert.Equal(t, "23-8", naics.Format("238"))
	assert.Equal(t, "23-81", naics.Format("2381"))
	assert.Equal(t, "23-81-60", naics.Format("238160"))
}

func TestSectorName_Conocidos(t *testing.T) {
	assert.Equal(t, "Construction", naics.SectorName("23"))
	assert.Equal(t, "Professional, Scientific, and Technical Services", naics.SectorName("54"))
}

func TestSectorName_DesconocidoDevuelveCentinela(t *testing.T) {
	assert.Equal(t, naics.UnknownSectorName, naics.SectorName("99"))
	assert.Equal(t, naics.UnknownSectorName, naics.SectorName(""))
}

func TestAllSectorCodes_OrdenadosYCompletos(t *testing.T) {
	codes := naics.AllSectorCodes()

	require.Len(t, codes, 24, "el catálogo tiene 24 códigos de sector (manufactura y comercio ocupan varios)")
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1], codes[i], "los códigos salen ordenados")
	}
	assert.Contains(t, codes, "23")
	assert.Contains(t, codes, "92")
	assert.Equal(t, naics.SectorName("31"), naics.SectorName("33"),
		"los tres códigos de manufactura comparten nombre")
}
