package configuration

import (
	"sync"

	"github.com/jhoicas/crm-core/internal/domain/catalog"
	"github.com/jhoicas/crm-core/internal/domain/entity"
	"github.com/jhoicas/crm-core/pkg/naics"
)

// Registry es la fachada con estado del motor: guarda los overrides por
// sector (2 dígitos) e industria (3-6 dígitos) y expone la configuración
// resuelta para una clasificación o plantilla.
//
// No es un singleton: se construye con NewRegistry y se inyecta donde se
// necesite (aislamiento en tests, múltiples instancias por despliegue).
type Registry struct {
	mu              sync.RWMutex
	sectorConfigs   map[string]entity.IndustryConfiguration
	industryConfigs map[string]entity.IndustryConfiguration
}

// NewRegistry construye un registro vacío.
func NewRegistry() *Registry {
	return &Registry{
		sectorConfigs:   make(map[string]entity.IndustryConfiguration),
		industryConfigs: make(map[string]entity.IndustryConfiguration),
	}
}

// RegisterSectorConfig registra (o reemplaza) el override de un sector de 2
// dígitos. No valida el formato del código: eso le corresponde al llamador
// vía IsValidNAICS antes de registrar.
func (r *Registry) RegisterSectorConfig(sectorCode string, cfg entity.IndustryConfiguration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sectorConfigs[sectorCode] = cfg
}

// RegisterIndustryConfig registra (o reemplaza) el override de un código de
// industria de 3-6 dígitos. Último registro gana.
func (r *Registry) RegisterIndustryConfig(naicsCode string, cfg entity.IndustryConfiguration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.industryConfigs[naicsCode] = cfg
}

// GetConfiguration devuelve la configuración fusionada para un código NAICS.
// Con código vacío devuelve la plantilla SALES_FOCUSED sin jerarquía.
func (r *Registry) GetConfiguration(naicsCode string) entity.MergedConfiguration {
	r.mu.RLock()
	overrides := make(map[string]entity.IndustryConfiguration, len(r.sectorConfigs)+len(r.industryConfigs))
	for code, cfg := range r.sectorConfigs {
		overrides[code] = cfg
	}
	for code, cfg := range r.industryConfigs {
		overrides[code] = cfg
	}
	r.mu.RUnlock()

	return BuildForNAICS(naicsCode, overrides)
}

// GetTemplateConfiguration devuelve los defaults crudos de una plantilla
// envueltos como MergedConfiguration, sin pasar por overrides ni jerarquía.
// Se usa cuando el tenant aún no tiene clasificación. Una plantilla
// desconocida produce colecciones vacías, no error.
func (r *Registry) GetTemplateConfiguration(template entity.IndustryTemplate) entity.MergedConfiguration {
	merged := emptyMerged()
	merged.Template = template

	def, ok := catalog.Definition(template)
	if !ok {
		return merged
	}

	merged.Pipelines = def.DefaultPipelines
	merged.CustomFields = def.DefaultFields
	merged.ActivityTypes = def.DefaultActivityTypes
	merged.Modules = catalog.DefaultModuleConfigurations(def)
	return merged
}

// PreviewConfiguration devuelve el resumen de onboarding para una plantilla.
func (r *Registry) PreviewConfiguration(template entity.IndustryTemplate, naicsCode string) ConfigurationPreview {
	return Preview(template, naicsCode)
}

// GetNAICSHierarchy expone la jerarquía de un código.
func (r *Registry) GetNAICSHierarchy(naicsCode string) []string {
	return naics.Hierarchy(naicsCode)
}

// GetTemplateForSector expone la plantilla por defecto de un sector.
func (r *Registry) GetTemplateForSector(sectorCode string) entity.IndustryTemplate {
	return catalog.TemplateForSector(sectorCode)
}

// TemplateSummary describe una plantilla disponible para el onboarding.
type TemplateSummary struct {
	Template    entity.IndustryTemplate `json:"template"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Sectors     []string                `json:"sectors"`
}

// GetAvailableTemplates lista las 8 plantillas con su metadata de selección.
func (r *Registry) GetAvailableTemplates() []TemplateSummary {
	defs := catalog.All()
	summaries := make([]TemplateSummary, 0, len(defs))
	for _, def := range defs {
		summaries = append(summaries, TemplateSummary{
			Template:    def.Template,
			Name:        def.Name,
			Description: def.Description,
			Sectors:     def.Sectors,
		})
	}
	return summaries
}

// SectorSummary describe un sector NAICS para listados de descubrimiento.
type SectorSummary struct {
	Code     string                  `json:"code"`
	Name     string                  `json:"name"`
	Template entity.IndustryTemplate `json:"template"`
}

// GetAllSectors lista todos los sectores del catálogo con su plantilla.
func (r *Registry) GetAllSectors() []SectorSummary {
	codes := naics.AllSectorCodes()
	sectors := make([]SectorSummary, 0, len(codes))
	for _, code := range codes {
		sectors = append(sectors, SectorSummary{
			Code:     code,
			Name:     naics.SectorName(code),
			Template: catalog.TemplateForSector(code),
		})
	}
	return sectors
}

// IsValidNAICS valida el formato de un código de clasificación.
func (r *Registry) IsValidNAICS(naicsCode string) bool {
	return naics.IsValid(naicsCode)
}

// GetSectorName devuelve el nombre de un sector de 2 dígitos.
func (r *Registry) GetSectorName(sectorCode string) string {
	return naics.SectorName(sectorCode)
}

// GetDefaultPipelines devuelve los pipelines por defecto de una plantilla,
// sin filtrar. Plantilla desconocida: lista vacía.
func (r *Registry) GetDefaultPipelines(template entity.IndustryTemplate) []entity.PipelineConfiguration {
	if def, ok := catalog.Definition(template); ok {
		return def.DefaultPipelines
	}
	return []entity.PipelineConfiguration{}
}

// GetDefaultCustomFields devuelve los campos por defecto de una plantilla.
func (r *Registry) GetDefaultCustomFields(template entity.IndustryTemplate) []entity.CustomFieldConfiguration {
	if def, ok := catalog.Definition(template); ok {
		return def.DefaultFields
	}
	return []entity.CustomFieldConfiguration{}
}

// GetDefaultActivityTypes devuelve los tipos de actividad por defecto.
func (r *Registry) GetDefaultActivityTypes(template entity.IndustryTemplate) []entity.ActivityTypeConfiguration {
	if def, ok := catalog.Definition(template); ok {
		return def.DefaultActivityTypes
	}
	return []entity.ActivityTypeConfiguration{}
}

// GetDefaultModules devuelve las claves de módulo por defecto.
func (r *Registry) GetDefaultModules(template entity.IndustryTemplate) []string {
	if def, ok := catalog.Definition(template); ok {
		return def.DefaultModules
	}
	return []string{}
}
