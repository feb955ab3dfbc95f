package modules

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-core/internal/domain"
	"github.com/jhoicas/crm-core/internal/domain/entity"
	"github.com/jhoicas/crm-core/pkg/logger"
	"github.com/jhoicas/crm-core/pkg/naics"
)

// Registry administra las definiciones de módulo registradas y el estado de
// activación por tenant. Las violaciones de reglas de negocio (dependencia
// faltante, conflicto, dependiente bloqueando) se devuelven como
// ActivationResult, nunca como error; los errores reales quedan reservados
// para fallas de programación (clave duplicada al registrar).
//
// Concurrencia: un mutex por tenant serializa activar/desactivar de ese
// tenant de punta a punta (chequeo → hook → mutación), cerrando la ventana
// de carrera del read-modify-write; el estado global va bajo un RWMutex.
type Registry struct {
	mu        sync.RWMutex
	modules   map[string]*registeredModule
	activated map[string]map[string]struct{} // tenantId -> set de moduleKey
	listeners map[string][]subscription

	tenantMu    sync.Mutex
	tenantLocks map[string]*sync.Mutex

	log *logger.Logger
}

type registeredModule struct {
	module Module
	entry  entity.ModuleRegistryEntry
}

type subscription struct {
	id       string
	listener func(entity.ModuleEvent)
}

// NewRegistry construye un registro vacío. Se inyecta donde se necesite;
// no hay singleton de proceso.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		modules:     make(map[string]*registeredModule),
		activated:   make(map[string]map[string]struct{}),
		listeners:   make(map[string][]subscription),
		tenantLocks: make(map[string]*sync.Mutex),
		log:         log,
	}
}

// Register registra un módulo. Registrar dos veces la misma clave es un
// error de programación y se reporta como tal (se espera en el arranque).
func (r *Registry) Register(m Module) error {
	def := m.Definition()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[def.Key]; exists {
		return fmt.Errorf("registrar módulo %q: %w", def.Key, domain.ErrModuleRegistered)
	}

	r.modules[def.Key] = &registeredModule{
		module: m,
		entry: entity.ModuleRegistryEntry{
			Definition: def,
			IsActive:   true,
			LoadedAt:   time.Now(),
		},
	}
	return nil
}

// Unregister elimina un módulo del registro. Falla si algún tenant lo tiene
// activo: primero hay que desactivarlo en todos.
func (r *Registry) Unregister(moduleKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for tenantID, set := range r.activated {
		if _, active := set[moduleKey]; active {
			return fmt.Errorf("desregistrar módulo %q (activo para tenant %s): %w",
				moduleKey, tenantID, domain.ErrModuleInUse)
		}
	}
	delete(r.modules, moduleKey)
	return nil
}

// GetModule devuelve la definición de un módulo registrado.
func (r *Registry) GetModule(key string) (entity.ModuleDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if reg, ok := r.modules[key]; ok {
		return reg.entry.Definition, true
	}
	return entity.ModuleDefinition{}, false
}

// AllModules devuelve las definiciones de todos los módulos registrados.
func (r *Registry) AllModules() []entity.ModuleDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]entity.ModuleDefinition, 0, len(r.modules))
	for _, reg := range r.modules {
		defs = append(defs, reg.entry.Definition)
	}
	return defs
}

// ModulesForNAICS filtra los módulos elegibles para un código de
// clasificación: requisitos vacíos significan "disponible para todos";
// si hay sectores declarados debe coincidir el sector del código, y si hay
// industrias declaradas alguna debe ser prefijo del código.
func (r *Registry) ModulesForNAICS(naicsCode string) []entity.ModuleDefinition {
	sector := naics.Sector(naicsCode)

	eligible := make([]entity.ModuleDefinition, 0)
	for _, def := range r.AllModules() {
		req := def.NAICSRequirements
		if req == nil {
			eligible = append(eligible, def)
			continue
		}
		if len(req.Sectors) > 0 && !contains(req.Sectors, sector) {
			continue
		}
		if len(req.Industries) > 0 && !anyPrefixOf(req.Industries, naicsCode) {
			continue
		}
		eligible = append(eligible, def)
	}
	return eligible
}

// ModulesForTemplate filtra los módulos elegibles para una plantilla.
func (r *Registry) ModulesForTemplate(template entity.IndustryTemplate) []entity.ModuleDefinition {
	eligible := make([]entity.ModuleDefinition, 0)
	for _, def := range r.AllModules() {
		if def.NAICSRequirements == nil || len(def.NAICSRequirements.Templates) == 0 {
			eligible = append(eligible, def)
			continue
		}
		if contains(def.NAICSRequirements.Templates, string(template)) {
			eligible = append(eligible, def)
		}
	}
	return eligible
}

// ActivateForTenant activa un lote de módulos para un tenant, en el orden
// pedido, devolviendo un resultado por módulo (el lote puede tener éxitos
// parciales). Dos módulos del mismo lote pueden satisfacerse mutuamente las
// dependencias sin importar el orden del pedido; los conflictos en cambio se
// evalúan solo contra el estado ya activo del tenant.
func (r *Registry) ActivateForTenant(ctx context.Context, tenantID string, moduleKeys []string, mctx entity.ModuleContext) []entity.ActivationResult {
	lock := r.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	results := make([]entity.ActivationResult, 0, len(moduleKeys))

	for _, moduleKey := range moduleKeys {
		r.mu.RLock()
		reg, found := r.modules[moduleKey]
		r.mu.RUnlock()

		if !found {
			results = append(results, entity.ActivationResult{
				Success:   false,
				ModuleKey: moduleKey,
				Message:   fmt.Sprintf("Module %s not found", moduleKey),
			})
			continue
		}

		def := reg.entry.Definition

		// Dependencias: cuentan las ya activas y las demás claves del lote.
		if missing := r.missingDependencies(tenantID, def.Requires, moduleKeys); len(missing) > 0 {
			errs := make([]string, 0, len(missing))
			for _, dep := range missing {
				errs = append(errs, fmt.Sprintf("Required module %s is not activated", dep))
			}
			results = append(results, entity.ActivationResult{
				Success:   false,
				ModuleKey: moduleKey,
				Message:   "Missing dependencies: " + strings.Join(missing, ", "),
				Errors:    errs,
			})
			continue
		}

		// Conflictos: solo contra el estado ya activo, no contra el lote.
		if conflicts := r.activeConflicts(tenantID, def.Conflicts); len(conflicts) > 0 {
			errs := make([]string, 0, len(conflicts))
			for _, c := range conflicts {
				errs = append(errs, fmt.Sprintf("Conflicts with activated module %s", c))
			}
			results = append(results, entity.ActivationResult{
				Success:   false,
				ModuleKey: moduleKey,
				Message:   "Conflicts with: " + strings.Join(conflicts, ", "),
				Errors:    errs,
			})
			continue
		}

		// Pre-chequeo local del módulo.
		if err := reg.module.CanActivate(mctx); err != nil {
			results = append(results, entity.ActivationResult{
				Success:   false,
				ModuleKey: moduleKey,
				Message:   fmt.Sprintf("Module %s cannot be activated", moduleKey),
				Errors:    []string{err.Error()},
			})
			continue
		}

		if err := reg.module.OnActivate(ctx, mctx); err != nil {
			results = append(results, entity.ActivationResult{
				Success:   false,
				ModuleKey: moduleKey,
				Message:   fmt.Sprintf("Failed to activate module %s", moduleKey),
				Errors:    []string{err.Error()},
			})
			continue
		}

		r.mu.Lock()
		set, ok := r.activated[tenantID]
		if !ok {
			set = make(map[string]struct{})
			r.activated[tenantID] = set
		}
		set[moduleKey] = struct{}{}
		r.mu.Unlock()

		r.emit(entity.ModuleEvent{
			Type:      entity.EventModuleActivated,
			ModuleKey: moduleKey,
			TenantID:  tenantID,
			UserID:    mctx.UserID,
		})

		results = append(results, entity.ActivationResult{
			Success:   true,
			ModuleKey: moduleKey,
			Message:   fmt.Sprintf("Module %s activated successfully", moduleKey),
		})
	}

	return results
}

// DeactivateForTenant desactiva un módulo de un tenant. Falla si el módulo
// no está activo o si otro módulo activo lo declara en su lista de
// dependencias. Un error del hook deja el módulo activo (fail-safe).
func (r *Registry) DeactivateForTenant(ctx context.Context, tenantID, moduleKey string, mctx entity.ModuleContext) entity.ActivationResult {
	lock := r.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	if !r.IsModuleActivated(tenantID, moduleKey) {
		return entity.ActivationResult{
			Success:   false,
			ModuleKey: moduleKey,
			Message:   fmt.Sprintf("Module %s is not activated for this tenant", moduleKey),
		}
	}

	r.mu.RLock()
	reg, found := r.modules[moduleKey]
	r.mu.RUnlock()
	if !found {
		return entity.ActivationResult{
			Success:   false,
			ModuleKey: moduleKey,
			Message:   fmt.Sprintf("Module %s not found", moduleKey),
		}
	}

	if dependents := r.activeDependents(tenantID, moduleKey); len(dependents) > 0 {
		errs := make([]string, 0, len(dependents))
		for _, d := range dependents {
			errs = append(errs, fmt.Sprintf("Module %s depends on %s", d, moduleKey))
		}
		return entity.ActivationResult{
			Success:   false,
			ModuleKey: moduleKey,
			Message:   "Cannot deactivate: other modules depend on this",
			Errors:    errs,
		}
	}

	if err := reg.module.OnDeactivate(ctx, mctx); err != nil {
		return entity.ActivationResult{
			Success:   false,
			ModuleKey: moduleKey,
			Message:   fmt.Sprintf("Failed to deactivate module %s", moduleKey),
			Errors:    []string{err.Error()},
		}
	}

	r.mu.Lock()
	delete(r.activated[tenantID], moduleKey)
	r.mu.Unlock()

	r.emit(entity.ModuleEvent{
		Type:      entity.EventModuleDeactivated,
		ModuleKey: moduleKey,
		TenantID:  tenantID,
		UserID:    mctx.UserID,
	})

	return entity.ActivationResult{
		Success:   true,
		ModuleKey: moduleKey,
		Message:   fmt.Sprintf("Module %s deactivated successfully", moduleKey),
	}
}

// ActivatedModules devuelve las claves activas de un tenant.
func (r *Registry) ActivatedModules(tenantID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.activated[tenantID]
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	return keys
}

// IsModuleActivated informa si un módulo está activo para un tenant.
func (r *Registry) IsModuleActivated(tenantID, moduleKey string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, active := r.activated[tenantID][moduleKey]
	return active
}

// On suscribe un listener a un tipo de evento y devuelve el id de la
// suscripción, necesario para Off (las funciones no son comparables en Go).
func (r *Registry) On(eventType string, listener func(entity.ModuleEvent)) string {
	id := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners[eventType] = append(r.listeners[eventType], subscription{id: id, listener: listener})
	return id
}

// Off remueve una suscripción por id.
func (r *Registry) Off(eventType, subscriptionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs := r.listeners[eventType]
	for i, sub := range subs {
		if sub.id == subscriptionID {
			r.listeners[eventType] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// emit entrega el evento sincrónicamente a cada listener. Un pánico en un
// listener se recupera y se registra sin propagarse: la observabilidad no
// puede romper el flujo de activación.
func (r *Registry) emit(event entity.ModuleEvent) {
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	if event.Data == nil {
		event.Data = map[string]any{}
	}

	r.mu.RLock()
	subs := make([]subscription, len(r.listeners[event.Type]))
	copy(subs, r.listeners[event.Type])
	r.mu.RUnlock()

	for _, sub := range subs {
		func() {
			defer func() {
				if rec := recover(); rec != nil && r.log != nil {
					r.log.Error().
						Str("event", event.Type).
						Str("module", event.ModuleKey).
						Interface("panic", rec).
						Msg("listener de evento de módulo falló")
				}
			}()
			sub.listener(event)
		}()
	}
}

func (r *Registry) tenantLock(tenantID string) *sync.Mutex {
	r.tenantMu.Lock()
	defer r.tenantMu.Unlock()
	lock, ok := r.tenantLocks[tenantID]
	if !ok {
		lock = &sync.Mutex{}
		r.tenantLocks[tenantID] = lock
	}
	return lock
}

func (r *Registry) missingDependencies(tenantID string, requires, batch []string) []string {
	if len(requires) == 0 {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.activated[tenantID]

	missing := make([]string, 0)
	for _, dep := range requires {
		if _, active := set[dep]; active {
			continue
		}
		if contains(batch, dep) {
			continue
		}
		missing = append(missing, dep)
	}
	return missing
}

func (r *Registry) activeConflicts(tenantID string, conflicts []string) []string {
	if len(conflicts) == 0 {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.activated[tenantID]

	found := make([]string, 0)
	for _, c := range conflicts {
		if _, active := set[c]; active {
			found = append(found, c)
		}
	}
	return found
}

func (r *Registry) activeDependents(tenantID, moduleKey string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.activated[tenantID]

	dependents := make([]string, 0)
	for key, reg := range r.modules {
		if key == moduleKey {
			continue
		}
		if _, active := set[key]; !active {
			continue
		}
		if contains(reg.entry.Definition.Requires, moduleKey) {
			dependents = append(dependents, key)
		}
	}
	return dependents
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func anyPrefixOf(prefixes []string, code string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}
