// Package catalog contiene las 8 plantillas base de industria y la tabla
// sector→plantilla. Es data de referencia de solo lectura, inicializada una
// vez al arrancar el proceso; portada tal cual del catálogo de producto
// (cambiarla rompe la paridad de configuración de tenants existentes).
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/crm-core/internal/domain/entity"
)

// =============================================================================
// Tabla sector NAICS (2 dígitos) → plantilla de industria.
// Sectores no mapeados caen en SALES_FOCUSED (default documentado).
// =============================================================================

var sectorTemplateMap = map[string]entity.IndustryTemplate{
	"11": entity.TemplateInventoryBased,   // Agricultura
	"21": entity.TemplateAssetBased,       // Minería
	"22": entity.TemplateAssetBased,       // Servicios públicos
	"23": entity.TemplateProjectBased,     // Construcción
	"31": entity.TemplateInventoryBased,   // Manufactura
	"32": entity.TemplateInventoryBased,   // Manufactura
	"33": entity.TemplateInventoryBased,   // Manufactura
	"42": entity.TemplateSalesFocused,     // Comercio mayorista
	"44": entity.TemplateInventoryBased,   // Comercio minorista
	"45": entity.TemplateInventoryBased,   // Comercio minorista
	"48": entity.TemplateAssetBased,       // Transporte
	"49": entity.TemplateAssetBased,       // Almacenamiento
	"51": entity.TemplateProjectBased,     // Información
	"52": entity.TemplateSalesFocused,     // Finanzas y seguros
	"53": entity.TemplateSalesFocused,     // Bienes raíces
	"54": entity.TemplateProjectBased,     // Servicios profesionales
	"55": entity.TemplateCaseBased,        // Gestión de compañías
	"56": entity.TemplateServiceBased,     // Administrativo y soporte
	"61": entity.TemplateMembershipBased,  // Educación
	"62": entity.TemplateServiceBased,     // Salud
	"71": entity.TemplateMembershipBased,  // Arte y entretenimiento
	"72": entity.TemplateHospitalityBased, // Alojamiento y comida
	"81": entity.TemplateServiceBased,     // Otros servicios
	"92": entity.TemplateCaseBased,        // Administración pública
}

// TemplateForSector devuelve la plantilla por defecto para un sector de 2
// dígitos. Sectores desconocidos devuelven SALES_FOCUSED.
func TemplateForSector(sectorCode string) entity.IndustryTemplate {
	if tpl, ok := sectorTemplateMap[sectorCode]; ok {
		return tpl
	}
	return entity.TemplateSalesFocused
}

// Definition devuelve la definición de una plantilla y si existe.
func Definition(template entity.IndustryTemplate) (entity.TemplateDefinition, bool) {
	def, ok := templateDefinitions[template]
	return def, ok
}

// All devuelve las 8 definiciones en orden estable (por identificador).
func All() []entity.TemplateDefinition {
	order := []entity.IndustryTemplate{
		entity.TemplateProjectBased,
		entity.TemplateSalesFocused,
		entity.TemplateServiceBased,
		entity.TemplateInventoryBased,
		entity.TemplateAssetBased,
		entity.TemplateMembershipBased,
		entity.TemplateHospitalityBased,
		entity.TemplateCaseBased,
	}
	defs := make([]entity.TemplateDefinition, 0, len(order))
	for _, tpl := range order {
		defs = append(defs, templateDefinitions[tpl])
	}
	return defs
}

var titleCaser = cases.Title(language.English)

// HumanizeModuleKey convierte una clave de módulo en nombre legible:
// "job_costing" -> "Job Costing".
func HumanizeModuleKey(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// DefaultModuleConfigurations materializa las claves de módulo por defecto de
// una plantilla como referencias de módulo habilitadas.
func DefaultModuleConfigurations(def entity.TemplateDefinition) []entity.ModuleConfiguration {
	mods := make([]entity.ModuleConfiguration, 0, len(def.DefaultModules))
	for _, key := range def.DefaultModules {
		mods = append(mods, entity.ModuleConfiguration{
			ModuleKey:  key,
			Name:       HumanizeModuleKey(key),
			IsEnabled:  true,
			IsRequired: false,
		})
	}
	return mods
}
