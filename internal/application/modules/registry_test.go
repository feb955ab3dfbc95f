package modules_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-core/internal/application/modules"
	"github.com/jhoicas/crm-core/internal/domain"
	"github.com/jhoicas/crm-core/internal/domain/entity"
	"github.com/jhoicas/crm-core/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del registro de módulos: dependencias, conflictos, ciclo de vida y bus
// de eventos. Los módulos de prueba replican la cadena de construcción real:
// crew_scheduling y material_tracking dependen de job_costing.
// ──────────────────────────────────────────────────────────────────────────────

// stubModule permite inyectar fallos en los hooks desde el test.
type stubModule struct {
	modules.BaseModule
	canActivateErr  error
	onActivateErr   error
	onDeactivateErr error
	activations     int
	deactivations   int
}

func newStub(key string, requires, conflicts []string) *stubModule {
	m := &stubModule{}
	m.Def = entity.ModuleDefinition{
		Key:       key,
		Name:      key,
		Version:   "1.0.0",
		Requires:  requires,
		Conflicts: conflicts,
	}
	return m
}

func (m *stubModule) CanActivate(mctx entity.ModuleContext) error {
	return m.canActivateErr
}

func (m *stubModule) OnActivate(ctx context.Context, mctx entity.ModuleContext) error {
	if m.onActivateErr != nil {
		return m.onActivateErr
	}
	m.activations++
	return nil
}

func (m *stubModule) OnDeactivate(ctx context.Context, mctx entity.ModuleContext) error {
	if m.onDeactivateErr != nil {
		return m.onDeactivateErr
	}
	m.deactivations++
	return nil
}

func newTestRegistry(t *testing.T, mods ...modules.Module) *modules.Registry {
	t.Helper()
	reg := modules.NewRegistry(logger.Nop())
	for _, m := range mods {
		require.NoError(t, reg.Register(m))
	}
	return reg
}

func mctx(tenantID string) entity.ModuleContext {
	return entity.ModuleContext{TenantID: tenantID, UserID: "user-1"}
}

func TestRegister_ClaveDuplicadaFalla(t *testing.T) {
	reg := newTestRegistry(t, newStub("job_costing", nil, nil))

	err := reg.Register(newStub("job_costing", nil, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModuleRegistered)
}

func TestUnregister_FallaSiAlgunTenantLoTieneActivo(t *testing.T) {
	reg := newTestRegistry(t, newStub("job_costing", nil, nil))

	results := reg.ActivateForTenant(context.Background(), "tenant-1", []string{"job_costing"}, mctx("tenant-1"))
	require.True(t, results[0].Success)

	err := reg.Unregister("job_costing")
	assert.ErrorIs(t, err, domain.ErrModuleInUse)

	// Tras desactivar en todos los tenants, desregistrar procede.
	res := reg.DeactivateForTenant(context.Background(), "tenant-1", "job_costing", mctx("tenant-1"))
	require.True(t, res.Success)
	assert.NoError(t, reg.Unregister("job_costing"))
}

func TestActivate_ModuloInexistente(t *testing.T) {
	reg := newTestRegistry(t)

	results := reg.ActivateForTenant(context.Background(), "tenant-1", []string{"ghost"}, mctx("tenant-1"))

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, "Module ghost not found", results[0].Message)
}

func TestActivate_DependenciaFaltanteBloquea(t *testing.T) {
	reg := newTestRegistry(t,
		newStub("job_costing", nil, nil),
		newStub("crew_scheduling", []string{"job_costing"}, nil),
	)

	// crew_scheduling solo, sin su dependencia: debe fallar.
	results := reg.ActivateForTenant(context.Background(), "tenant-1", []string{"crew_scheduling"}, mctx("tenant-1"))

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, "Missing dependencies: job_costing", results[0].Message)
	assert.Contains(t, results[0].Errors, "Required module job_costing is not activated")
	assert.False(t, reg.IsModuleActivated("tenant-1", "crew_scheduling"))
}

func TestActivate_ElLoteSatisfaceSusPropiasDependencias(t *testing.T) {
	reg := newTestRegistry(t,
		newStub("job_costing", nil, nil),
		newStub("crew_scheduling", []string{"job_costing"}, nil),
	)

	// El orden del lote no importa: la dependencia viene en el mismo pedido.
	results := reg.ActivateForTenant(context.Background(), "tenant-1",
		[]string{"crew_scheduling", "job_costing"}, mctx("tenant-1"))

	require.Len(t, results, 2)
	assert.True(t, results[0].Success, results[0].Message)
	assert.True(t, results[1].Success, results[1].Message)
	assert.Equal(t, "Module crew_scheduling activated successfully", results[0].Message)
	assert.True(t, reg.IsModuleActivated("tenant-1", "crew_scheduling"))
	assert.True(t, reg.IsModuleActivated("tenant-1", "job_costing"))
}

func TestActivate_ConflictoConModuloActivo(t *testing.T) {
	reg := newTestRegistry(t,
		newStub("basic_billing", nil, nil),
		newStub("advanced_billing", nil, []string{"basic_billing"}),
	)

	first := reg.ActivateForTenant(context.Background(), "tenant-1", []string{"basic_billing"}, mctx("tenant-1"))
	require.True(t, first[0].Success)

	results := reg.ActivateForTenant(context.Background(), "tenant-1", []string{"advanced_billing"}, mctx("tenant-1"))

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, "Conflicts with: basic_billing", results[0].Message)
	assert.Contains(t, results[0].Errors, "Conflicts with activated module basic_billing")
}

func TestActivate_CanActivateVeta(t *testing.T) {
	m := newStub("job_costing", nil, nil)
	m.canActivateErr = errors.New("plan insuficiente")
	reg := newTestRegistry(t, m)

	results := reg.ActivateForTenant(context.Background(), "tenant-1", []string{"job_costing"}, mctx("tenant-1"))

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, "Module job_costing cannot be activated", results[0].Message)
	assert.Contains(t, results[0].Errors, "plan insuficiente")
	assert.Equal(t, 0, m.activations, "OnActivate no debe invocarse tras el veto")
	assert.False(t, reg.IsModuleActivated("tenant-1", "job_costing"))
}

func TestActivate_ErrorDelHookNoCambiaElEstado(t *testing.T) {
	m := newStub("job_costing", nil, nil)
	m.onActivateErr = errors.New("aprovisionamiento falló")
	reg := newTestRegistry(t, m)

	results := reg.ActivateForTenant(context.Background(), "tenant-1", []string{"job_costing"}, mctx("tenant-1"))

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, "Failed to activate module job_costing", results[0].Message)
	assert.False(t, reg.IsModuleActivated("tenant-1", "job_costing"))
}

func TestActivate_ExitosParcialesEnElLote(t *testing.T) {
	reg := newTestRegistry(t,
		newStub("job_costing", nil, nil),
		newStub("material_tracking", []string{"job_costing"}, nil),
	)

	results := reg.ActivateForTenant(context.Background(), "tenant-1",
		[]string{"job_costing", "ghost", "material_tracking"}, mctx("tenant-1"))

	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.True(t, results[2].Success, "el fallo de ghost no contamina al resto del lote")
}

func TestActivate_EstadoAisladoPorTenant(t *testing.T) {
	reg := newTestRegistry(t, newStub("job_costing", nil, nil))

	reg.ActivateForTenant(context.Background(), "tenant-1", []string{"job_costing"}, mctx("tenant-1"))

	assert.True(t, reg.IsModuleActivated("tenant-1", "job_costing"))
	assert.False(t, reg.IsModuleActivated("tenant-2", "job_costing"))
	assert.Empty(t, reg.ActivatedModules("tenant-2"))
}

func TestDeactivate_NoActivado(t *testing.T) {
	reg := newTestRegistry(t, newStub("job_costing", nil, nil))

	res := reg.DeactivateForTenant(context.Background(), "tenant-1", "job_costing", mctx("tenant-1"))

	assert.False(t, res.Success)
	assert.Equal(t, "Module job_costing is not activated for this tenant", res.Message)
}

func TestDeactivate_DependienteActivoBloquea(t *testing.T) {
	reg := newTestRegistry(t,
		newStub("job_costing", nil, nil),
		newStub("crew_scheduling", []string{"job_costing"}, nil),
	)
	reg.ActivateForTenant(context.Background(), "tenant-1",
		[]string{"job_costing", "crew_scheduling"}, mctx("tenant-1"))

	res := reg.DeactivateForTenant(context.Background(), "tenant-1", "job_costing", mctx("tenant-1"))

	assert.False(t, res.Success)
	assert.Equal(t, "Cannot deactivate: other modules depend on this", res.Message)
	assert.Contains(t, res.Errors, "Module crew_scheduling depends on job_costing")
	assert.True(t, reg.IsModuleActivated("tenant-1", "job_costing"))

	// En orden inverso la desactivación procede.
	res = reg.DeactivateForTenant(context.Background(), "tenant-1", "crew_scheduling", mctx("tenant-1"))
	require.True(t, res.Success)
	res = reg.DeactivateForTenant(context.Background(), "tenant-1", "job_costing", mctx("tenant-1"))
	require.True(t, res.Success)
	assert.Empty(t, reg.ActivatedModules("tenant-1"))
}

func TestDeactivate_ErrorDelHookDejaElModuloActivo(t *testing.T) {
	m := newStub("job_costing", nil, nil)
	reg := newTestRegistry(t, m)
	reg.ActivateForTenant(context.Background(), "tenant-1", []string{"job_costing"}, mctx("tenant-1"))

	m.onDeactivateErr = errors.New("limpieza falló")
	res := reg.DeactivateForTenant(context.Background(), "tenant-1", "job_costing", mctx("tenant-1"))

	assert.False(t, res.Success)
	assert.Equal(t, "Failed to deactivate module job_costing", res.Message)
	assert.True(t, reg.IsModuleActivated("tenant-1", "job_costing"), "fail-safe: sigue activo")
}

// Activar y desactivar el mismo módulo desde varias goroutines del mismo
// tenant no debe dispararse con -race: el mutex por tenant serializa la
// secuencia chequeo→hook→mutación completa, así que los contadores no
// atómicos del stub solo se tocan de a uno. Un segundo tenant corre en
// paralelo para verificar que los locks son por tenant, no globales.
func TestActivate_ConcurrenteMismoTenant(t *testing.T) {
	m := newStub("job_costing", nil, nil)
	other := newStub("notes", nil, nil)
	reg := newTestRegistry(t, m, other)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			reg.ActivateForTenant(context.Background(), "tenant-1", []string{"job_costing"}, mctx("tenant-1"))
		}()
		go func() {
			defer wg.Done()
			reg.DeactivateForTenant(context.Background(), "tenant-1", "job_costing", mctx("tenant-1"))
		}()
		go func() {
			defer wg.Done()
			reg.ActivateForTenant(context.Background(), "tenant-2", []string{"notes"}, mctx("tenant-2"))
		}()
	}
	wg.Wait()

	// Drenar el estado final: tras desactivar, todo queda coherente.
	if reg.IsModuleActivated("tenant-1", "job_costing") {
		res := reg.DeactivateForTenant(context.Background(), "tenant-1", "job_costing", mctx("tenant-1"))
		require.True(t, res.Success)
	}
	assert.Empty(t, reg.ActivatedModules("tenant-1"))
	assert.GreaterOrEqual(t, m.activations, m.deactivations,
		"nunca puede haber más desactivaciones exitosas que activaciones")
	assert.True(t, reg.IsModuleActivated("tenant-2", "notes"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros de elegibilidad.
// ──────────────────────────────────────────────────────────────────────────────

func TestModulesForNAICS(t *testing.T) {
	construction := newStub("job_costing", nil, nil)
	construction.Def.NAICSRequirements = &entity.NAICSRequirements{Sectors: []string{"23"}}

	roofingOnly := newStub("roofing_estimates", nil, nil)
	roofingOnly.Def.NAICSRequirements = &entity.NAICSRequirements{Industries: []string{"2381"}}

	universal := newStub("notes", nil, nil)

	reg := newTestRegistry(t, construction, roofingOnly, universal)

	keys := func(defs []entity.ModuleDefinition) []string {
		out := make([]string, 0, len(defs))
		for _, d := range defs {
			out = append(out, d.Key)
		}
		return out
	}

	roofing := keys(reg.ModulesForNAICS("238160"))
	assert.Contains(t, roofing, "job_costing")
	assert.Contains(t, roofing, "roofing_estimates", "2381 es prefijo de 238160")
	assert.Contains(t, roofing, "notes", "sin requisitos = disponible para todos")

	healthcare := keys(reg.ModulesForNAICS("621111"))
	assert.NotContains(t, healthcare, "job_costing")
	assert.NotContains(t, healthcare, "roofing_estimates")
	assert.Contains(t, healthcare, "notes")
}

func TestModulesForTemplate(t *testing.T) {
	projectOnly := newStub("job_costing", nil, nil)
	projectOnly.Def.NAICSRequirements = &entity.NAICSRequirements{
		Templates: []string{string(entity.TemplateProjectBased)},
	}
	universal := newStub("notes", nil, nil)

	reg := newTestRegistry(t, projectOnly, universal)

	projectDefs := reg.ModulesForTemplate(entity.TemplateProjectBased)
	assert.Len(t, projectDefs, 2)

	salesDefs := reg.ModulesForTemplate(entity.TemplateSalesFocused)
	require.Len(t, salesDefs, 1)
	assert.Equal(t, "notes", salesDefs[0].Key)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bus de eventos.
// ──────────────────────────────────────────────────────────────────────────────

func TestEventos_ActivacionYDesactivacion(t *testing.T) {
	reg := newTestRegistry(t, newStub("job_costing", nil, nil))

	var events []entity.ModuleEvent
	reg.On(entity.EventModuleActivated, func(e entity.ModuleEvent) {
		events = append(events, e)
	})
	reg.On(entity.EventModuleDeactivated, func(e entity.ModuleEvent) {
		events = append(events, e)
	})

	reg.ActivateForTenant(context.Background(), "tenant-1", []string{"job_costing"}, mctx("tenant-1"))
	reg.DeactivateForTenant(context.Background(), "tenant-1", "job_costing", mctx("tenant-1"))

	require.Len(t, events, 2)
	assert.Equal(t, entity.EventModuleActivated, events[0].Type)
	assert.Equal(t, "job_costing", events[0].ModuleKey)
	assert.Equal(t, "tenant-1", events[0].TenantID)
	assert.Equal(t, "user-1", events[0].UserID)
	assert.NotEmpty(t, events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())
	assert.Equal(t, entity.EventModuleDeactivated, events[1].Type)
}

func TestEventos_FallaNoEmite(t *testing.T) {
	reg := newTestRegistry(t, newStub("crew_scheduling", []string{"job_costing"}, nil))

	fired := 0
	reg.On(entity.EventModuleActivated, func(entity.ModuleEvent) { fired++ })

	reg.ActivateForTenant(context.Background(), "tenant-1", []string{"crew_scheduling"}, mctx("tenant-1"))
	assert.Zero(t, fired, "una activación fallida no emite eventos")
}

func TestEventos_OffRemueveLaSuscripcion(t *testing.T) {
	reg := newTestRegistry(t, newStub("job_costing", nil, nil))

	fired := 0
	id := reg.On(entity.EventModuleActivated, func(entity.ModuleEvent) { fired++ })
	reg.Off(entity.EventModuleActivated, id)

	reg.ActivateForTenant(context.Background(), "tenant-1", []string{"job_costing"}, mctx("tenant-1"))
	assert.Zero(t, fired)
}

func TestEventos_PanicoDeUnListenerNoRompeElFlujo(t *testing.T) {
	reg := newTestRegistry(t, newStub("job_costing", nil, nil))

	survived := false
	reg.On(entity.EventModuleActivated, func(entity.ModuleEvent) { panic("listener roto") })
	reg.On(entity.EventModuleActivated, func(entity.ModuleEvent) { survived = true })

	results := reg.ActivateForTenant(context.Background(), "tenant-1", []string{"job_costing"}, mctx("tenant-1"))

	require.True(t, results[0].Success, "el pánico del listener no afecta la activación")
	assert.True(t, survived, "los demás listeners siguen recibiendo el evento")
}
