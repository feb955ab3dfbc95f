package configuration

import "github.com/jhoicas/crm-core/internal/domain/entity"

// Fusión profunda por elemento. Reglas:
//   - Escalares por valor: el entrante gana si trae un valor no-cero
//     (un string vacío o un 0 en el override no borra lo existente).
//   - Booleanos por valor: el entrante solo puede encender; para flags que un
//     override debe poder forzar en ambos sentidos el campo es puntero.
//   - Punteros: el entrante gana si no es nil.
//   - Colecciones anidadas con clave natural (etapas por nombre, opciones por
//     value, variables por key): se fusionan con la misma regla por clave que
//     las colecciones de nivel superior.
//   - Mapas libres (settings, autoActions, schemas): merge recursivo de
//     objetos; los arrays se reemplazan completos, no se concatenan.

// mergeByKey fusiona dos slices por campo clave: si la clave ya existe, el
// elemento entrante se fusiona sobre el existente en su posición; si no,
// se agrega al final.
func mergeByKey[T any](existing, incoming []T, key func(T) string, mergeFn func(T, T) T) []T {
	result := make([]T, len(existing))
	copy(result, existing)

	index := make(map[string]int, len(result))
	for i, item := range result {
		index[key(item)] = i
	}

	for _, item := range incoming {
		if i, ok := index[key(item)]; ok {
			result[i] = mergeFn(result[i], item)
		} else {
			index[key(item)] = len(result)
			result = append(result, item)
		}
	}
	return result
}

func mergePipeline(base, over entity.PipelineConfiguration) entity.PipelineConfiguration {
	out := base
	if over.Description != nil {
		out.Description = over.Description
	}
	if over.PipelineType != "" {
		out.PipelineType = over.PipelineType
	}
	if over.IsDefault {
		out.IsDefault = true
	}
	out.Stages = mergeByKey(base.Stages, over.Stages,
		func(s entity.StageConfiguration) string { return s.Name }, mergeStage)
	return out
}

func mergeStage(base, over entity.StageConfiguration) entity.StageConfiguration {
	out := base
	if over.Description != nil {
		out.Description = over.Description
	}
	if over.SortOrder != 0 {
		out.SortOrder = over.SortOrder
	}
	if over.Color != nil {
		out.Color = over.Color
	}
	if over.Probability != nil {
		out.Probability = over.Probability
	}
	if over.IsInitial {
		out.IsInitial = true
	}
	if over.IsFinal {
		out.IsFinal = true
	}
	if over.IsWon {
		out.IsWon = true
	}
	if over.IsLost {
		out.IsLost = true
	}
	out.AutoActions = mergeMaps(base.AutoActions, over.AutoActions)
	if len(over.RequiredFields) > 0 {
		out.RequiredFields = over.RequiredFields
	}
	return out
}

func mergeCustomField(base, over entity.CustomFieldConfiguration) entity.CustomFieldConfiguration {
	out := base
	if over.Label != "" {
		out.Label = over.Label
	}
	if over.Description != nil {
		out.Description = over.Description
	}
	if over.FieldType != "" {
		out.FieldType = over.FieldType
	}
	if over.EntityType != "" {
		out.EntityType = over.EntityType
	}
	if over.IsRequired {
		out.IsRequired = true
	}
	if over.IsSearchable {
		out.IsSearchable = true
	}
	if over.IsFilterable {
		out.IsFilterable = true
	}
	if over.DefaultValue != nil {
		out.DefaultValue = over.DefaultValue
	}
	if over.Placeholder != nil {
		out.Placeholder = over.Placeholder
	}
	if over.HelpText != nil {
		out.HelpText = over.HelpText
	}
	out.Validation = mergeValidation(base.Validation, over.Validation)
	if over.SortOrder != 0 {
		out.SortOrder = over.SortOrder
	}
	if over.GroupName != nil {
		out.GroupName = over.GroupName
	}
	out.Options = mergeByKey(base.Options, over.Options,
		func(o entity.CustomFieldOption) string { return o.Value }, mergeFieldOption)
	return out
}

func mergeFieldOption(base, over entity.CustomFieldOption) entity.CustomFieldOption {
	out := base
	if over.Label != "" {
		out.Label = over.Label
	}
	if over.Color != nil {
		out.Color = over.Color
	}
	if over.Icon != nil {
		out.Icon = over.Icon
	}
	if over.SortOrder != 0 {
		out.SortOrder = over.SortOrder
	}
	if over.IsDefault {
		out.IsDefault = true
	}
	return out
}

func mergeValidation(base, over *entity.FieldValidation) *entity.FieldValidation {
	if over == nil {
		return base
	}
	if base == nil {
		v := *over
		return &v
	}
	out := *base
	if over.Min != nil {
		out.Min = over.Min
	}
	if over.Max != nil {
		out.Max = over.Max
	}
	if over.MinLength != nil {
		out.MinLength = over.MinLength
	}
	if over.MaxLength != nil {
		out.MaxLength = over.MaxLength
	}
	if over.Pattern != nil {
		out.Pattern = over.Pattern
	}
	if over.PatternMessage != nil {
		out.PatternMessage = over.PatternMessage
	}
	if over.Required != nil {
		out.Required = over.Required
	}
	return &out
}

func mergeActivityType(base, over entity.ActivityTypeConfiguration) entity.ActivityTypeConfiguration {
	out := base
	if over.Name != "" {
		out.Name = over.Name
	}
	if over.Description != nil {
		out.Description = over.Description
	}
	if over.Icon != nil {
		out.Icon = over.Icon
	}
	if over.Color != nil {
		out.Color = over.Color
	}
	if over.Category != "" {
		out.Category = over.Category
	}
	if over.DurationDefault != nil {
		out.DurationDefault = over.DurationDefault
	}
	if over.IsSchedulable {
		out.IsSchedulable = true
	}
	if over.IsLoggable {
		out.IsLoggable = true
	}
	if over.RequiresLocation {
		out.RequiresLocation = true
	}
	if len(over.RequiredCustomFields) > 0 {
		out.RequiredCustomFields = over.RequiredCustomFields
	}
	return out
}

func mergeDocumentTemplate(base, over entity.DocumentTemplateConfiguration) entity.DocumentTemplateConfiguration {
	out := base
	if over.Name != "" {
		out.Name = over.Name
	}
	if over.Description != nil {
		out.Description = over.Description
	}
	if over.TemplateType != "" {
		out.TemplateType = over.TemplateType
	}
	if over.TemplateContent != "" {
		out.TemplateContent = over.TemplateContent
	}
	if over.TemplateFormat != "" {
		out.TemplateFormat = over.TemplateFormat
	}
	out.AvailableVariables = mergeByKey(base.AvailableVariables, over.AvailableVariables,
		func(v entity.TemplateVariable) string { return v.Key },
		func(_, over entity.TemplateVariable) entity.TemplateVariable { return over })
	if over.Category != nil {
		out.Category = over.Category
	}
	if over.IsDefault {
		out.IsDefault = true
	}
	return out
}

func mergeIntegration(base, over entity.IntegrationConfiguration) entity.IntegrationConfiguration {
	out := base
	if over.Name != "" {
		out.Name = over.Name
	}
	if over.Description != nil {
		out.Description = over.Description
	}
	if over.IntegrationType != "" {
		out.IntegrationType = over.IntegrationType
	}
	if over.Provider != nil {
		out.Provider = over.Provider
	}
	out.ConfigSchema = mergeMaps(base.ConfigSchema, over.ConfigSchema)
	out.DefaultConfig = mergeMaps(base.DefaultConfig, over.DefaultConfig)
	if len(over.RequiredScopes) > 0 {
		out.RequiredScopes = over.RequiredScopes
	}
	if over.IsOptional {
		out.IsOptional = true
	}
	if over.IsPremium {
		out.IsPremium = true
	}
	return out
}

func mergeModuleConfiguration(base, over entity.ModuleConfiguration) entity.ModuleConfiguration {
	out := base
	if over.Name != "" {
		out.Name = over.Name
	}
	if over.Description != nil {
		out.Description = over.Description
	}
	if over.IsEnabled {
		out.IsEnabled = true
	}
	if over.IsRequired {
		out.IsRequired = true
	}
	out.ConfigSchema = mergeMaps(base.ConfigSchema, over.ConfigSchema)
	out.DefaultConfig = mergeMaps(base.DefaultConfig, over.DefaultConfig)
	if over.RouteBase != nil {
		out.RouteBase = over.RouteBase
	}
	return out
}

// mergeMaps fusiona recursivamente dos mapas libres sin mutar ninguno.
// Objetos anidados se fusionan; cualquier otro valor (arrays incluidos) se
// reemplaza completo por el entrante.
func mergeMaps(base, over map[string]any) map[string]any {
	if len(base) == 0 && len(over) == 0 {
		if base != nil || over != nil {
			return map[string]any{}
		}
		return nil
	}
	out := make(map[string]any, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		overMap, overIsMap := v.(map[string]any)
		baseMap, baseIsMap := out[k].(map[string]any)
		if overIsMap && baseIsMap {
			out[k] = mergeMaps(baseMap, overMap)
			continue
		}
		out[k] = v
	}
	return out
}
