// Package modules implementa el registro de módulos enchufables del CRM:
// registro de definiciones, estado de activación por tenant, resolución de
// dependencias/conflictos y un bus de eventos sincrónico.
package modules

import (
	"context"

	"github.com/jhoicas/crm-core/internal/domain/entity"
)

// Module es el contrato de un módulo enchufable: una definición declarativa
// más los hooks de ciclo de vida que el registro invoca en cada transición.
type Module interface {
	// Definition devuelve el paquete declarativo del módulo. Debe ser
	// estable: el registro lo lee una vez al registrar.
	Definition() entity.ModuleDefinition

	// OnActivate se invoca al activar el módulo para un tenant. Un error
	// aborta la activación sin cambiar el estado del tenant.
	OnActivate(ctx context.Context, mctx entity.ModuleContext) error

	// OnDeactivate se invoca al desactivar. Un error aborta la
	// desactivación y el módulo permanece activo (fail-safe).
	OnDeactivate(ctx context.Context, mctx entity.ModuleContext) error

	// CanActivate es el pre-chequeo local del módulo; un error veta la
	// activación antes de invocar OnActivate.
	CanActivate(mctx entity.ModuleContext) error
}

// BaseModule implementa Module con hooks no-op. Los módulos concretos lo
// embeben y sobreescriben solo lo que necesitan.
type BaseModule struct {
	Def entity.ModuleDefinition
}

func (b *BaseModule) Definition() entity.ModuleDefinition { return b.Def }

func (b *BaseModule) OnActivate(ctx context.Context, mctx entity.ModuleContext) error {
	return nil
}

func (b *BaseModule) OnDeactivate(ctx context.Context, mctx entity.ModuleContext) error {
	return nil
}

func (b *BaseModule) CanActivate(mctx entity.ModuleContext) error {
	return nil
}

// DefaultConfig arma la configuración inicial del módulo a partir de los
// valores por defecto de sus settings.
func (b *BaseModule) DefaultConfig() map[string]any {
	cfg := make(map[string]any, len(b.Def.Settings))
	for _, setting := range b.Def.Settings {
		if setting.DefaultValue != nil {
			cfg[setting.Key] = setting.DefaultValue
		}
	}
	return cfg
}

// Permissions devuelve los permisos declarados por el módulo.
func (b *BaseModule) Permissions() []entity.ModulePermission {
	return b.Def.Permissions
}

// HasPermission informa si el contexto trae el permiso indicado.
func (b *BaseModule) HasPermission(mctx entity.ModuleContext, permissionKey string) bool {
	for _, p := range mctx.Permissions {
		if p == permissionKey {
			return true
		}
	}
	return false
}

// Routes devuelve las rutas declaradas por el módulo.
func (b *BaseModule) Routes() []entity.ModuleRoute {
	return b.Def.Routes
}

// MainNavigation devuelve la entrada principal de navegación, si existe.
func (b *BaseModule) MainNavigation() *entity.ModuleNavItem {
	if b.Def.Navigation == nil {
		return nil
	}
	return b.Def.Navigation.MainNav
}
