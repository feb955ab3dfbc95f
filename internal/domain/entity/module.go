package entity

import "time"

// Tipos del sistema de módulos: un módulo es una capacidad enchufable y
// declarativa (rutas, navegación, permisos, settings) con requisitos de
// clasificación y restricciones de dependencia/conflicto.

// NAICSRequirements restringe la disponibilidad de un módulo por clasificación.
// Listas vacías significan "disponible para todos".
type NAICSRequirements struct {
	Sectors    []string // sectores de 2 dígitos requeridos
	Industries []string // prefijos de industria específicos
	Templates  []string // plantillas de industria requeridas
}

// ModuleRoute describe una ruta expuesta por un módulo. Handler es el nombre
// declarativo del manejador; el transporte HTTP lo resuelve un colaborador
// externo, no este motor.
type ModuleRoute struct {
	Path        string
	Method      string // GET, POST, PUT, PATCH, DELETE
	Handler     string
	Middleware  []string
	Permissions []string
}

// ModuleNavItem es una entrada de navegación aportada por un módulo.
type ModuleNavItem struct {
	Label    string
	Icon     string
	Path     string
	Order    int
	Children []ModuleNavItem
}

// EntityTab es una pestaña que un módulo agrega a una entidad CRM.
type EntityTab struct {
	EntityType CRMEntityType
	Label      string
	Path       string
	Order      int
}

// ModuleNavigation agrupa las entradas de navegación de un módulo.
type ModuleNavigation struct {
	MainNav     *ModuleNavItem
	SettingsNav *ModuleNavItem
	EntityTabs  []EntityTab
}

// ModulePermission declara un permiso aportado por un módulo.
type ModulePermission struct {
	Key          string
	Name         string
	Description  string
	DefaultRoles []string
}

// ModuleSettingDefinition declara un setting configurable de un módulo.
type ModuleSettingDefinition struct {
	Key          string
	Label        string
	Description  string
	Type         string // text, number, boolean, select, multiselect
	DefaultValue any
	Options      []SettingOption
	Validation   *SettingValidation
}

// SettingOption es una opción de un setting select/multiselect.
type SettingOption struct {
	Value string
	Label string
}

// SettingValidation define restricciones de un setting.
type SettingValidation struct {
	Required bool
	Min      *int
	Max      *int
}

// ModuleDefinition es el paquete declarativo de un módulo. Inmutable tras
// registrarse en el registro de módulos.
type ModuleDefinition struct {
	Key         string
	Name        string
	Description string
	Version     string
	Author      string

	NAICSRequirements *NAICSRequirements

	Requires  []string // módulos que deben estar activos antes
	Conflicts []string // módulos que NO pueden estar activos

	RouteBase string
	Routes    []ModuleRoute

	Navigation *ModuleNavigation

	Permissions []ModulePermission
	Settings    []ModuleSettingDefinition
}

// ModuleContext es el contexto que recibe un módulo en sus hooks de ciclo de
// vida. Lo arma por completo el llamador; este motor no valida su contenido.
type ModuleContext struct {
	TenantID     string
	UserID       string
	UserRole     string
	ModuleConfig map[string]any
	Permissions  []string
}

// ModuleRegistryEntry envuelve una definición registrada con su metadata.
type ModuleRegistryEntry struct {
	Definition ModuleDefinition
	IsActive   bool
	LoadedAt   time.Time
}

// ActivationResult es el resultado por-módulo de una activación/desactivación.
// Las violaciones de reglas de negocio se reportan aquí, nunca como error.
type ActivationResult struct {
	Success   bool     `json:"success"`
	ModuleKey string   `json:"moduleKey"`
	Message   string   `json:"message,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// Tipos de evento emitidos por el registro de módulos.
const (
	EventModuleActivated   = "module:activated"
	EventModuleDeactivated = "module:deactivated"
	EventModuleConfigured  = "module:configured"
	EventModuleError       = "module:error"
)

// ModuleEvent es el payload entregado sincrónicamente a los listeners.
type ModuleEvent struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	ModuleKey string         `json:"moduleKey"`
	TenantID  string         `json:"tenantId"`
	UserID    string         `json:"userId,omitempty"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}
