package construction

import (
	"context"

	"github.com/jhoicas/crm-core/internal/application/modules"
	"github.com/jhoicas/crm-core/internal/domain/entity"
	"github.com/jhoicas/crm-core/pkg/logger"
)

// MaterialTrackingModule administra catálogo de materiales, órdenes e
// inventario por obra, con proveedores. Depende de job_costing.
type MaterialTrackingModule struct {
	modules.BaseModule
	log *logger.Logger
}

// NewMaterialTrackingModule construye el módulo con su definición declarativa.
func NewMaterialTrackingModule(log *logger.Logger) *MaterialTrackingModule {
	m := &MaterialTrackingModule{log: log}
	m.Def = entity.ModuleDefinition{
		Key:         "material_tracking",
		Name:        "Material Tracking",
		Description: "Track materials, orders, and inventory with supplier management",
		Version:     "1.0.0",
		Author:      "CRM SaaS",
		RouteBase:   "/materials",
		NAICSRequirements: &entity.NAICSRequirements{
			Sectors:   []string{"23"},
			Templates: []string{string(entity.TemplateProjectBased)},
		},
		Requires: []string{"job_costing"},
		Routes: []entity.ModuleRoute{
			{Path: "/", Method: "GET", Handler: "listMaterials"},
			{Path: "/:id", Method: "GET", Handler: "getMaterial"},
			{Path: "/", Method: "POST", Handler: "createMaterial", Permissions: []string{"material_tracking:create"}},
			{Path: "/:id", Method: "PUT", Handler: "updateMaterial", Permissions: []string{"material_tracking:update"}},
			{Path: "/:id", Method: "DELETE", Handler: "deleteMaterial", Permissions: []string{"material_tracking:delete"}},
			{Path: "/categories", Method: "GET", Handler: "getCategories"},
			{Path: "/orders", Method: "GET", Handler: "listOrders"},
			{Path: "/orders/:id", Method: "GET", Handler: "getOrder"},
			{Path: "/orders", Method: "POST", Handler: "createOrder", Permissions: []string{"material_tracking:order"}},
			{Path: "/orders/:id", Method: "PUT", Handler: "updateOrder", Permissions: []string{"material_tracking:order"}},
			{Path: "/orders/:id/receive", Method: "POST", Handler: "receiveOrder", Permissions: []string{"material_tracking:receive"}},
			{Path: "/job/:jobId", Method: "GET", Handler: "getJobMaterials"},
			{Path: "/job/:jobId", Method: "POST", Handler: "addJobMaterial", Permissions: []string{"material_tracking:assign"}},
			{Path: "/inventory", Method: "GET", Handler: "getInventory"},
			{Path: "/inventory/low-stock", Method: "GET", Handler: "getLowStock"},
			{Path: "/suppliers", Method: "GET", Handler: "listSuppliers"},
			{Path: "/suppliers/:id", Method: "GET", Handler: "getSupplier"},
			{Path: "/suppliers", Method: "POST", Handler: "createSupplier", Permissions: []string{"material_tracking:suppliers"}},
			{Path: "/reports/usage", Method: "GET", Handler: "getUsageReport"},
			{Path: "/reports/costs", Method: "GET", Handler: "getCostReport"},
		},
		Navigation: &entity.ModuleNavigation{
			MainNav: &entity.ModuleNavItem{
				Label: "Materials", Icon: "package", Path: "/materials", Order: 30,
				Children: []entity.ModuleNavItem{
					{Label: "Catalog", Icon: "list", Path: "/materials"},
					{Label: "Orders", Icon: "shopping-cart", Path: "/materials/orders"},
					{Label: "Inventory", Icon: "archive", Path: "/materials/inventory"},
					{Label: "Suppliers", Icon: "truck", Path: "/materials/suppliers"},
				},
			},
			SettingsNav: &entity.ModuleNavItem{
				Label: "Material Settings", Icon: "settings", Path: "/settings/materials",
			},
			EntityTabs: []entity.EntityTab{
				{EntityType: entity.EntityOpportunity, Label: "Materials", Path: "materials", Order: 3},
			},
		},
		Permissions: []entity.ModulePermission{
			{Key: "material_tracking:view", Name: "View Materials", Description: "View material catalog and inventory",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER", "MEMBER", "VIEWER"}},
			{Key: "material_tracking:create", Name: "Create Materials", Description: "Add new materials to catalog",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
			{Key: "material_tracking:update", Name: "Update Materials", Description: "Edit material details and pricing",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
			{Key: "material_tracking:delete", Name: "Delete Materials", Description: "Remove materials from catalog",
				DefaultRoles: []string{"OWNER", "ADMIN"}},
			{Key: "material_tracking:order", Name: "Create Orders", Description: "Create and manage material orders",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
			{Key: "material_tracking:receive", Name: "Receive Orders", Description: "Mark orders as received and update inventory",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER", "MEMBER"}},
			{Key: "material_tracking:assign", Name: "Assign Materials", Description: "Assign materials to jobs",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER", "MEMBER"}},
			{Key: "material_tracking:suppliers", Name: "Manage Suppliers", Description: "Add and edit suppliers",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
		},
		Settings: []entity.ModuleSettingDefinition{
			{Key: "default_markup", Label: "Default Material Markup (%)",
				Description: "Default markup percentage for materials", Type: "number", DefaultValue: 15,
				Validation: &entity.SettingValidation{Min: intPtr(0), Max: intPtr(100)}},
			{Key: "low_stock_threshold", Label: "Low Stock Threshold",
				Description: "Quantity threshold for low stock alerts", Type: "number", DefaultValue: 10,
				Validation: &entity.SettingValidation{Min: intPtr(0)}},
			{Key: "enable_low_stock_alerts", Label: "Enable Low Stock Alerts",
				Description: "Send notifications when materials are low", Type: "boolean", DefaultValue: true},
			{Key: "track_inventory", Label: "Track Inventory",
				Description: "Enable inventory tracking for materials", Type: "boolean", DefaultValue: true},
			{Key: "default_unit", Label: "Default Unit of Measure",
				Description: "Default unit for new materials", Type: "select", DefaultValue: "each",
				Options: []entity.SettingOption{
					{Value: "each", Label: "Each"},
					{Value: "box", Label: "Box"},
					{Value: "bundle", Label: "Bundle"},
					{Value: "roll", Label: "Roll"},
					{Value: "sq_ft", Label: "Square Feet"},
					{Value: "linear_ft", Label: "Linear Feet"},
					{Value: "lb", Label: "Pound"},
					{Value: "gallon", Label: "Gallon"},
				}},
			{Key: "require_po_number", Label: "Require PO Number",
				Description: "Require purchase order number for orders", Type: "boolean", DefaultValue: false},
		},
	}
	return m
}

func (m *MaterialTrackingModule) OnActivate(ctx context.Context, mctx entity.ModuleContext) error {
	if m.log != nil {
		m.log.Info().Str("tenant", mctx.TenantID).Msg("módulo material_tracking activado")
	}
	return nil
}

func (m *MaterialTrackingModule) OnDeactivate(ctx context.Context, mctx entity.ModuleContext) error {
	if m.log != nil {
		m.log.Info().Str("tenant", mctx.TenantID).Msg("módulo material_tracking desactivado")
	}
	return nil
}
