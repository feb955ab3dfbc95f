package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-core/internal/domain/catalog"
	"github.com/jhoicas/crm-core/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del catálogo de plantillas de industria y la tabla sector→plantilla.
// El catálogo es data de referencia portada del producto: estos tests vigilan
// que nadie la altere sin querer.
// ──────────────────────────────────────────────────────────────────────────────

func TestTemplateForSector_MapeosConocidos(t *testing.T) {
	assert.Equal(t, entity.TemplateProjectBased, catalog.TemplateForSector("23"), "construcción")
	assert.Equal(t, entity.TemplateInventoryBased, catalog.TemplateForSector("31"), "manufactura")
	assert.Equal(t, entity.TemplateServiceBased, catalog.TemplateForSector("62"), "salud")
	assert.Equal(t, entity.TemplateHospitalityBased, catalog.TemplateForSector("72"), "alojamiento")
	assert.Equal(t, entity.TemplateCaseBased, catalog.TemplateForSector("92"), "administración pública")
}

func TestTemplateForSector_DesconocidoCaeEnSalesFocused(t *testing.T) {
	assert.Equal(t, entity.TemplateSalesFocused, catalog.TemplateForSector("99"))
	assert.Equal(t, entity.TemplateSalesFocused, catalog.TemplateForSector(""))
}

func TestDefinition_OchoPlantillasCompletas(t *testing.T) {
	defs := catalog.All()
	require.Len(t, defs, 8)

	seen := make(map[entity.IndustryTemplate]bool)
	for _, def := range defs {
		assert.False(t, seen[def.Template], "plantilla duplicada: %s", def.Template)
		seen[def.Template] = true

		assert.NotEmpty(t, def.Name, "%s sin nombre", def.Template)
		assert.NotEmpty(t, def.Description, "%s sin descripción", def.Template)
		assert.NotEmpty(t, def.DefaultPipelines, "%s sin pipelines", def.Template)
		assert.NotEmpty(t, def.DefaultFields, "%s sin campos", def.Template)
		assert.NotEmpty(t, def.DefaultActivityTypes, "%s sin tipos de actividad", def.Template)
		assert.NotEmpty(t, def.DefaultModules, "%s sin módulos", def.Template)
	}
}

// Cada pipeline por defecto debe tener exactamente una etapa inicial y al
// menos una final; es el invariante que el frontend de onboarding asume.
func TestDefinition_PipelinesBienFormados(t *testing.T) {
	for _, def := range catalog.All() {
		for _, p := range def.DefaultPipelines {
			initial, final := 0, 0
			for _, s := range p.Stages {
				if s.IsInitial {
					initial++
				}
				if s.IsFinal {
					final++
				}
				if s.Probability != nil {
					prob := *s.Probability
					assert.GreaterOrEqual(t, prob, 0, "%s/%s/%s", def.Template, p.Name, s.Name)
					assert.LessOrEqual(t, prob, 100, "%s/%s/%s", def.Template, p.Name, s.Name)
				}
			}
			assert.Equal(t, 1, initial, "%s/%s debe tener una sola etapa inicial", def.Template, p.Name)
			assert.GreaterOrEqual(t, final, 1, "%s/%s debe tener al menos una etapa final", def.Template, p.Name)
		}
	}
}

func TestDefinition_ProjectBased(t *testing.T) {
	def, ok := catalog.Definition(entity.TemplateProjectBased)
	require.True(t, ok)

	require.NotEmpty(t, def.DefaultPipelines)
	assert.Equal(t, "Project Sales Pipeline", def.DefaultPipelines[0].Name)
	assert.Contains(t, def.Sectors, "23")
	assert.Contains(t, def.DefaultModules, "job_costing")
}

func TestDefinition_Desconocida(t *testing.T) {
	_, ok := catalog.Definition(entity.IndustryTemplate("NO_EXISTE"))
	assert.False(t, ok)
}

func TestHumanizeModuleKey(t *testing.T) {
	assert.Equal(t, "Job Costing", catalog.HumanizeModuleKey("job_costing"))
	assert.Equal(t, "Crew Scheduling", catalog.HumanizeModuleKey("crew_scheduling"))
	assert.Equal(t, "Events", catalog.HumanizeModuleKey("events"))
}

func TestDefaultModuleConfigurations(t *testing.T) {
	def, ok := catalog.Definition(entity.TemplateProjectBased)
	require.True(t, ok)

	mods := catalog.DefaultModuleConfigurations(def)
	require.Len(t, mods, len(def.DefaultModules))

	for i, m := range mods {
		assert.Equal(t, def.DefaultModules[i], m.ModuleKey, "conserva el orden del catálogo")
		assert.True(t, m.IsEnabled, "los módulos por defecto nacen habilitados")
		assert.False(t, m.IsRequired)
		assert.NotEmpty(t, m.Name)
	}
}
