package entity

// Tipos de configuración de industria. Son valores serializables (JSON para
// la salida del motor, YAML para overrides cargados desde disco); los campos
// opcionales del modelo original se representan con punteros para distinguir
// "no definido" de un cero explícito al hacer merge.

// ConfigurationSourceKind identifica el origen de una configuración parcial.
type ConfigurationSourceKind string

const (
	SourceUniversal ConfigurationSourceKind = "universal"
	SourceTemplate  ConfigurationSourceKind = "template"
	SourceSector    ConfigurationSourceKind = "sector"
	SourceSubsector ConfigurationSourceKind = "subsector"
	SourceIndustry  ConfigurationSourceKind = "industry"
)

// ConfigurationSource describe de dónde viene una configuración parcial.
// Priority es la única clave de ordenamiento del merge: a mayor prioridad,
// más tarde se aplica y por tanto gana sobre las anteriores.
type ConfigurationSource struct {
	Kind     ConfigurationSourceKind `json:"type"`
	Code     string                  `json:"code,omitempty"`
	Priority int                     `json:"priority"`
}

// IndustryConfiguration es una configuración parcial: cualquier colección
// puede venir vacía o ausente. La producen las plantillas base y los
// overrides registrados por sector/industria.
type IndustryConfiguration struct {
	Pipelines         []PipelineConfiguration         `json:"pipelines,omitempty" yaml:"pipelines"`
	CustomFields      []CustomFieldConfiguration      `json:"customFields,omitempty" yaml:"customFields"`
	ActivityTypes     []ActivityTypeConfiguration     `json:"activityTypes,omitempty" yaml:"activityTypes"`
	DocumentTemplates []DocumentTemplateConfiguration `json:"documentTemplates,omitempty" yaml:"documentTemplates"`
	Integrations      []IntegrationConfiguration      `json:"integrations,omitempty" yaml:"integrations"`
	Modules           []ModuleConfiguration           `json:"modules,omitempty" yaml:"modules"`
	Settings          map[string]any                  `json:"settings,omitempty" yaml:"settings"`
}

// LoadedConfiguration empareja una configuración parcial con su origen.
type LoadedConfiguration struct {
	Source ConfigurationSource
	Config IndustryConfiguration
}

// MergedConfiguration es el resultado de la resolución: la configuración
// completa de un tenant tras combinar plantilla y overrides. Se construye
// fresca en cada resolución y se trata como valor, nunca se persiste.
type MergedConfiguration struct {
	Template       IndustryTemplate `json:"template"`
	NAICSCode      string           `json:"naicsCode,omitempty"`
	NAICSHierarchy []string         `json:"naicsHierarchy"`

	Pipelines         []PipelineConfiguration         `json:"pipelines"`
	CustomFields      []CustomFieldConfiguration      `json:"customFields"`
	ActivityTypes     []ActivityTypeConfiguration     `json:"activityTypes"`
	DocumentTemplates []DocumentTemplateConfiguration `json:"documentTemplates"`
	Integrations      []IntegrationConfiguration      `json:"integrations"`
	Modules           []ModuleConfiguration           `json:"modules"`

	Settings map[string]any `json:"settings"`
}

// PipelineConfiguration define un pipeline con su secuencia de etapas.
// El orden significativo es SortOrder de cada etapa, no la posición en el slice.
type PipelineConfiguration struct {
	Name         string               `json:"name" yaml:"name"`
	Description  *string              `json:"description,omitempty" yaml:"description"`
	PipelineType PipelineType         `json:"pipelineType" yaml:"pipelineType"`
	IsDefault    bool                 `json:"isDefault" yaml:"isDefault"`
	Stages       []StageConfiguration `json:"stages" yaml:"stages"`
}

// StageConfiguration define una etapa de pipeline.
type StageConfiguration struct {
	Name           string         `json:"name" yaml:"name"`
	Description    *string        `json:"description,omitempty" yaml:"description"`
	SortOrder      int            `json:"sortOrder" yaml:"sortOrder"`
	Color          *string        `json:"color,omitempty" yaml:"color"`
	Probability    *int           `json:"probability,omitempty" yaml:"probability"` // 0-100
	IsInitial      bool           `json:"isInitial" yaml:"isInitial"`
	IsFinal        bool           `json:"isFinal" yaml:"isFinal"`
	IsWon          bool           `json:"isWon" yaml:"isWon"`
	IsLost         bool           `json:"isLost" yaml:"isLost"`
	AutoActions    map[string]any `json:"autoActions,omitempty" yaml:"autoActions"`
	RequiredFields []string       `json:"requiredFields" yaml:"requiredFields"`
}

// CustomFieldConfiguration define un campo personalizado sobre una entidad CRM.
type CustomFieldConfiguration struct {
	FieldKey     string                     `json:"fieldKey" yaml:"fieldKey"`
	Label        string                     `json:"label" yaml:"label"`
	Description  *string                    `json:"description,omitempty" yaml:"description"`
	FieldType    CustomFieldType            `json:"fieldType" yaml:"fieldType"`
	EntityType   CRMEntityType              `json:"entityType" yaml:"entityType"`
	IsRequired   bool                       `json:"isRequired" yaml:"isRequired"`
	IsSearchable bool                       `json:"isSearchable" yaml:"isSearchable"`
	IsFilterable bool                       `json:"isFilterable" yaml:"isFilterable"`
	DefaultValue *string                    `json:"defaultValue,omitempty" yaml:"defaultValue"`
	Placeholder  *string                    `json:"placeholder,omitempty" yaml:"placeholder"`
	HelpText     *string                    `json:"helpText,omitempty" yaml:"helpText"`
	Validation   *FieldValidation           `json:"validation,omitempty" yaml:"validation"`
	SortOrder    int                        `json:"sortOrder" yaml:"sortOrder"`
	GroupName    *string                    `json:"groupName,omitempty" yaml:"groupName"`
	Options      []CustomFieldOption        `json:"options,omitempty" yaml:"options"`
}

// CustomFieldOption es una opción de un campo select/multi-select.
type CustomFieldOption struct {
	Value     string  `json:"value" yaml:"value"`
	Label     string  `json:"label" yaml:"label"`
	Color     *string `json:"color,omitempty" yaml:"color"`
	Icon      *string `json:"icon,omitempty" yaml:"icon"`
	SortOrder int     `json:"sortOrder" yaml:"sortOrder"`
	IsDefault bool    `json:"isDefault" yaml:"isDefault"`
}

// FieldValidation define restricciones declarativas de un campo.
type FieldValidation struct {
	Min            *int    `json:"min,omitempty" yaml:"min"`
	Max            *int    `json:"max,omitempty" yaml:"max"`
	MinLength      *int    `json:"minLength,omitempty" yaml:"minLength"`
	MaxLength      *int    `json:"maxLength,omitempty" yaml:"maxLength"`
	Pattern        *string `json:"pattern,omitempty" yaml:"pattern"`
	PatternMessage *string `json:"patternMessage,omitempty" yaml:"patternMessage"`
	Required       *bool   `json:"required,omitempty" yaml:"required"`
}

// ActivityTypeConfiguration define un tipo de actividad CRM.
type ActivityTypeConfiguration struct {
	ActivityKey          string           `json:"activityKey" yaml:"activityKey"`
	Name                 string           `json:"name" yaml:"name"`
	Description          *string          `json:"description,omitempty" yaml:"description"`
	Icon                 *string          `json:"icon,omitempty" yaml:"icon"`
	Color                *string          `json:"color,omitempty" yaml:"color"`
	Category             ActivityCategory `json:"category" yaml:"category"`
	DurationDefault      *int             `json:"durationDefault,omitempty" yaml:"durationDefault"` // minutos
	IsSchedulable        bool             `json:"isSchedulable" yaml:"isSchedulable"`
	IsLoggable           bool             `json:"isLoggable" yaml:"isLoggable"`
	RequiresLocation     bool             `json:"requiresLocation" yaml:"requiresLocation"`
	RequiredCustomFields []string         `json:"requiredCustomFields" yaml:"requiredCustomFields"`
}

// DocumentTemplateConfiguration define una plantilla de documento.
type DocumentTemplateConfiguration struct {
	TemplateKey        string               `json:"templateKey" yaml:"templateKey"`
	Name               string               `json:"name" yaml:"name"`
	Description        *string              `json:"description,omitempty" yaml:"description"`
	TemplateType       DocumentTemplateType `json:"templateType" yaml:"templateType"`
	TemplateContent    string               `json:"templateContent" yaml:"templateContent"`
	TemplateFormat     string               `json:"templateFormat" yaml:"templateFormat"`
	AvailableVariables []TemplateVariable   `json:"availableVariables" yaml:"availableVariables"`
	Category           *string              `json:"category,omitempty" yaml:"category"`
	IsDefault          bool                 `json:"isDefault" yaml:"isDefault"`
}

// TemplateVariable declara una variable disponible en una plantilla de documento.
type TemplateVariable struct {
	Key    string `json:"key" yaml:"key"`
	Label  string `json:"label" yaml:"label"`
	Type   string `json:"type" yaml:"type"`     // text, number, date, currency, list
	Source string `json:"source" yaml:"source"` // contact, account, opportunity, user, tenant, custom
}

// IntegrationConfiguration define una integración externa disponible.
type IntegrationConfiguration struct {
	IntegrationKey  string          `json:"integrationKey" yaml:"integrationKey"`
	Name            string          `json:"name" yaml:"name"`
	Description     *string         `json:"description,omitempty" yaml:"description"`
	IntegrationType IntegrationType `json:"integrationType" yaml:"integrationType"`
	Provider        *string         `json:"provider,omitempty" yaml:"provider"`
	ConfigSchema    map[string]any  `json:"configSchema" yaml:"configSchema"`
	DefaultConfig   map[string]any  `json:"defaultConfig,omitempty" yaml:"defaultConfig"`
	RequiredScopes  []string        `json:"requiredScopes" yaml:"requiredScopes"`
	IsOptional      bool            `json:"isOptional" yaml:"isOptional"`
	IsPremium       bool            `json:"isPremium" yaml:"isPremium"`
}

// ModuleConfiguration es la referencia a un módulo dentro de una configuración
// (habilitado o no para el tenant), no la definición del módulo en sí.
type ModuleConfiguration struct {
	ModuleKey     string         `json:"moduleKey" yaml:"moduleKey"`
	Name          string         `json:"name" yaml:"name"`
	Description   *string        `json:"description,omitempty" yaml:"description"`
	IsEnabled     bool           `json:"isEnabled" yaml:"isEnabled"`
	IsRequired    bool           `json:"isRequired" yaml:"isRequired"`
	ConfigSchema  map[string]any `json:"configSchema,omitempty" yaml:"configSchema"`
	DefaultConfig map[string]any `json:"defaultConfig,omitempty" yaml:"defaultConfig"`
	RouteBase     *string        `json:"routeBase,omitempty" yaml:"routeBase"`
}

// TemplateDefinition es una de las 8 plantillas base de industria.
// Datos estáticos inmutables definidos al arrancar el proceso.
type TemplateDefinition struct {
	Template             IndustryTemplate
	Name                 string
	Description          string
	Sectors              []string // códigos de sector que la usan por defecto
	Focus                string
	DefaultPipelines     []PipelineConfiguration
	DefaultModules       []string
	DefaultFields        []CustomFieldConfiguration
	DefaultActivityTypes []ActivityTypeConfiguration
}
