package configuration_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-core/internal/application/configuration"
	"github.com/jhoicas/crm-core/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la fachada con estado del motor: registro de overrides y resolución.
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistry_ResuelveConOverridesRegistrados(t *testing.T) {
	reg := configuration.NewRegistry()
	reg.RegisterSectorConfig("23", entity.IndustryConfiguration{
		Settings: map[string]any{"units": "imperial"},
	})
	reg.RegisterIndustryConfig("238160", entity.IndustryConfiguration{
		CustomFields: []entity.CustomFieldConfiguration{
			{FieldKey: "roof_type", Label: "Roof Type", FieldType: entity.FieldSelect, EntityType: entity.EntityOpportunity},
		},
	})

	merged := reg.GetConfiguration("238160")

	assert.Equal(t, entity.TemplateProjectBased, merged.Template)
	assert.Equal(t, "imperial", merged.Settings["units"])

	keys := make([]string, 0, len(merged.CustomFields))
	for _, f := range merged.CustomFields {
		keys = append(keys, f.FieldKey)
	}
	assert.Contains(t, keys, "roof_type")
}

func TestRegistry_UltimoRegistroGana(t *testing.T) {
	reg := configuration.NewRegistry()
	reg.RegisterSectorConfig("23", entity.IndustryConfiguration{
		Settings: map[string]any{"units": "imperial"},
	})
	reg.RegisterSectorConfig("23", entity.IndustryConfiguration{
		Settings: map[string]any{"units": "metric"},
	})

	merged := reg.GetConfiguration("23")
	assert.Equal(t, "metric", merged.Settings["units"], "registrar de nuevo reemplaza el override anterior")
}

func TestRegistry_SinOverridesDevuelveLaPlantilla(t *testing.T) {
	reg := configuration.NewRegistry()

	merged := reg.GetConfiguration("62")
	assert.Equal(t, entity.TemplateServiceBased, merged.Template)
	require.NotEmpty(t, merged.Pipelines)
	assert.Equal(t, "Service Pipeline", merged.Pipelines[0].Name)
}

func TestRegistry_GetTemplateConfiguration(t *testing.T) {
	reg := configuration.NewRegistry()
	reg.RegisterSectorConfig("23", entity.IndustryConfiguration{
		Settings: map[string]any{"units": "imperial"},
	})

	merged := reg.GetTemplateConfiguration(entity.TemplateProjectBased)

	assert.Equal(t, entity.TemplateProjectBased, merged.Template)
	assert.NotEmpty(t, merged.Pipelines)
	assert.Empty(t, merged.Settings, "los defaults crudos no pasan por overrides")
	assert.Empty(t, merged.NAICSHierarchy)
}

func TestRegistry_GetTemplateConfiguration_Desconocida(t *testing.T) {
	reg := configuration.NewRegistry()

	merged := reg.GetTemplateConfiguration(entity.IndustryTemplate("NO_EXISTE"))
	assert.NotNil(t, merged.Pipelines)
	assert.Empty(t, merged.Pipelines, "plantilla desconocida produce colecciones vacías, no pánico")
}

func TestRegistry_ListadosDeDescubrimiento(t *testing.T) {
	reg := configuration.NewRegistry()

	templates := reg.GetAvailableTemplates()
	assert.Len(t, templates, 8)

	sectors := reg.GetAllSectors()
	assert.Len(t, sectors, 24)
	for _, s := range sectors {
		assert.NotEmpty(t, s.Name, "sector %s sin nombre", s.Code)
		assert.NotEmpty(t, s.Template, "sector %s sin plantilla", s.Code)
	}
}

func TestRegistry_DefaultsPorPlantilla(t *testing.T) {
	reg := configuration.NewRegistry()

	assert.NotEmpty(t, reg.GetDefaultPipelines(entity.TemplateProjectBased))
	assert.NotEmpty(t, reg.GetDefaultCustomFields(entity.TemplateProjectBased))
	assert.NotEmpty(t, reg.GetDefaultActivityTypes(entity.TemplateProjectBased))
	assert.Contains(t, reg.GetDefaultModules(entity.TemplateProjectBased), "job_costing")

	unknown := entity.IndustryTemplate("NO_EXISTE")
	assert.Empty(t, reg.GetDefaultPipelines(unknown))
	assert.Empty(t, reg.GetDefaultModules(unknown))
}

// Registrar y resolver en paralelo no debe dispararse con -race: el registro
// protege sus mapas y la resolución trabaja sobre una copia.
func TestRegistry_AccesoConcurrente(t *testing.T) {
	reg := configuration.NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.RegisterSectorConfig("23", entity.IndustryConfiguration{
				Settings: map[string]any{"units": "imperial"},
			})
		}()
		go func() {
			defer wg.Done()
			_ = reg.GetConfiguration("238160")
		}()
	}
	wg.Wait()
}
