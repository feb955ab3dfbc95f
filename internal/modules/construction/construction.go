// Package construction contiene los módulos enchufables del vertical de
// construcción (sector NAICS 23, plantilla PROJECT_BASED): costeo de obras,
// programación de cuadrillas y seguimiento de materiales.
package construction

import (
	"github.com/jhoicas/crm-core/internal/application/modules"
	"github.com/jhoicas/crm-core/pkg/logger"
)

// All construye los tres módulos del vertical, listos para registrarse.
func All(log *logger.Logger) []modules.Module {
	return []modules.Module{
		NewJobCostingModule(log),
		NewCrewSchedulingModule(log),
		NewMaterialTrackingModule(log),
	}
}

func intPtr(n int) *int { return &n }
