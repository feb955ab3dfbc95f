// Package configuration implementa el motor de resolución de configuración:
// combina la plantilla base de industria con los overrides registrados por
// sector/subsector/industria, en orden de prioridad, y produce la
// configuración fusionada de un tenant.
//
// Orden de fusión (prioridad ascendente; la más específica gana):
//  1. Plantilla de industria  (prioridad 10)
//  2. Sector, 2 dígitos       (prioridad 20)
//  3. Subsector, 3 dígitos    (prioridad 30)
//  4. Industria, 4-6 dígitos  (prioridad 40, 50, 60)
package configuration

import (
	"sort"

	"github.com/jhoicas/crm-core/internal/domain/catalog"
	"github.com/jhoicas/crm-core/internal/domain/entity"
	"github.com/jhoicas/crm-core/pkg/naics"
)

// Prioridades asignadas por BuildForNAICS. La plantilla siempre queda debajo
// de cualquier override registrado.
const (
	priorityTemplate      = 10
	priorityHierarchyBase = 20
	priorityHierarchyStep = 10
)

// Merge combina N configuraciones parciales en una sola. El orden de
// aplicación es la prioridad ascendente de cada origen; el sort es estable,
// así que entre orígenes de igual prioridad gana el último aplicado, que es
// el último en el orden de entrada (contrato heredado: primero-registrado
// queda debajo).
//
// Template, NAICSCode y NAICSHierarchy del resultado no se infieren de las
// parciales: los fija el llamador después de fusionar.
func Merge(configs []entity.LoadedConfiguration) entity.MergedConfiguration {
	sorted := make([]entity.LoadedConfiguration, len(configs))
	copy(sorted, configs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Source.Priority < sorted[j].Source.Priority
	})

	result := emptyMerged()
	for _, lc := range sorted {
		result = mergeOne(result, lc.Config)
	}
	return result
}

func emptyMerged() entity.MergedConfiguration {
	return entity.MergedConfiguration{
		Template:          entity.TemplateSalesFocused,
		NAICSHierarchy:    []string{},
		Pipelines:         []entity.PipelineConfiguration{},
		CustomFields:      []entity.CustomFieldConfiguration{},
		ActivityTypes:     []entity.ActivityTypeConfiguration{},
		DocumentTemplates: []entity.DocumentTemplateConfiguration{},
		Integrations:      []entity.IntegrationConfiguration{},
		Modules:           []entity.ModuleConfiguration{},
		Settings:          map[string]any{},
	}
}

// mergeOne pliega una configuración parcial dentro del acumulador. Cada
// colección se fusiona por su campo clave; elementos nuevos se agregan al
// final conservando el orden de llegada.
func mergeOne(result entity.MergedConfiguration, cfg entity.IndustryConfiguration) entity.MergedConfiguration {
	result.Pipelines = mergeByKey(result.Pipelines, cfg.Pipelines,
		func(p entity.PipelineConfiguration) string { return p.Name }, mergePipeline)
	result.CustomFields = mergeByKey(result.CustomFields, cfg.CustomFields,
		func(f entity.CustomFieldConfiguration) string { return f.FieldKey }, mergeCustomField)
	result.ActivityTypes = mergeByKey(result.ActivityTypes, cfg.ActivityTypes,
		func(a entity.ActivityTypeConfiguration) string { return a.ActivityKey }, mergeActivityType)
	result.DocumentTemplates = mergeByKey(result.DocumentTemplates, cfg.DocumentTemplates,
		func(d entity.DocumentTemplateConfiguration) string { return d.TemplateKey }, mergeDocumentTemplate)
	result.Integrations = mergeByKey(result.Integrations, cfg.Integrations,
		func(i entity.IntegrationConfiguration) string { return i.IntegrationKey }, mergeIntegration)
	result.Modules = mergeByKey(result.Modules, cfg.Modules,
		func(m entity.ModuleConfiguration) string { return m.ModuleKey }, mergeModuleConfiguration)
	result.Settings = mergeMaps(result.Settings, cfg.Settings)
	return result
}

// BuildForNAICS arma y fusiona la cadena de configuraciones para un código de
// clasificación. Con código vacío devuelve la plantilla SALES_FOCUSED sin
// jerarquía. overridesByCode une los overrides de sector e industria, ambos
// indexados por código exacto.
func BuildForNAICS(naicsCode string, overridesByCode map[string]entity.IndustryConfiguration) entity.MergedConfiguration {
	configs := make([]entity.LoadedConfiguration, 0, 6)

	template := entity.TemplateSalesFocused
	if naicsCode != "" {
		template = catalog.TemplateForSector(naics.Sector(naicsCode))
	}

	if def, ok := catalog.Definition(template); ok {
		configs = append(configs, entity.LoadedConfiguration{
			Source: entity.ConfigurationSource{Kind: entity.SourceTemplate, Priority: priorityTemplate},
			Config: entity.IndustryConfiguration{
				Pipelines:     def.DefaultPipelines,
				CustomFields:  def.DefaultFields,
				ActivityTypes: def.DefaultActivityTypes,
				Modules:       catalog.DefaultModuleConfigurations(def),
			},
		})
	}

	var hierarchy []string
	if naicsCode != "" {
		hierarchy = naics.Hierarchy(naicsCode)
		for index, code := range hierarchy {
			override, ok := overridesByCode[code]
			if !ok {
				continue
			}
			kind := entity.SourceIndustry
			switch index {
			case 0:
				kind = entity.SourceSector
			case 1:
				kind = entity.SourceSubsector
			}
			configs = append(configs, entity.LoadedConfiguration{
				Source: entity.ConfigurationSource{
					Kind:     kind,
					Code:     code,
					Priority: priorityHierarchyBase + index*priorityHierarchyStep,
				},
				Config: override,
			})
		}
	}

	merged := Merge(configs)
	merged.Template = template
	merged.NAICSCode = naicsCode
	if hierarchy != nil {
		merged.NAICSHierarchy = hierarchy
	}
	return merged
}

// PipelinePreview, FieldPreview, ModulePreview y ActivityPreview son los
// resúmenes condensados que consume el wizard de onboarding.
type PipelinePreview struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	StageCount int    `json:"stageCount"`
}

type FieldPreview struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type ModulePreview struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type ActivityPreview struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ConfigurationPreview resume los defaults de una plantilla.
type ConfigurationPreview struct {
	Pipelines     []PipelinePreview `json:"pipelines"`
	Fields        []FieldPreview    `json:"fields"`
	Modules       []ModulePreview   `json:"modules"`
	ActivityTypes []ActivityPreview `json:"activityTypes"`
}

// Preview devuelve el resumen de defaults de una plantilla para el wizard de
// onboarding. El código NAICS se acepta por compatibilidad de firma pero NO
// aplica overrides: el preview refleja solo los defaults de la plantilla,
// para que sea barato y estable durante el onboarding.
func Preview(template entity.IndustryTemplate, naicsCode string) ConfigurationPreview {
	_ = naicsCode

	preview := ConfigurationPreview{
		Pipelines:     []PipelinePreview{},
		Fields:        []FieldPreview{},
		Modules:       []ModulePreview{},
		ActivityTypes: []ActivityPreview{},
	}

	def, ok := catalog.Definition(template)
	if !ok {
		return preview
	}

	for _, p := range def.DefaultPipelines {
		preview.Pipelines = append(preview.Pipelines, PipelinePreview{
			Name:       p.Name,
			Type:       string(p.PipelineType),
			StageCount: len(p.Stages),
		})
	}
	for _, f := range def.DefaultFields {
		preview.Fields = append(preview.Fields, FieldPreview{
			Key:   f.FieldKey,
			Label: f.Label,
			Type:  string(f.FieldType),
		})
	}
	for _, key := range def.DefaultModules {
		preview.Modules = append(preview.Modules, ModulePreview{
			Key:  key,
			Name: catalog.HumanizeModuleKey(key),
		})
	}
	for _, a := range def.DefaultActivityTypes {
		preview.ActivityTypes = append(preview.ActivityTypes, ActivityPreview{
			Key:  a.ActivityKey,
			Name: a.Name,
		})
	}
	return preview
}
