package construction

import (
	"context"

	"github.com/jhoicas/crm-core/internal/application/modules"
	"github.com/jhoicas/crm-core/internal/domain/entity"
	"github.com/jhoicas/crm-core/pkg/logger"
)

// JobCostingModule provee costeo por obra: mano de obra, materiales y
// overhead por trabajo, con análisis presupuesto vs. real.
type JobCostingModule struct {
	modules.BaseModule
	log *logger.Logger
}

// NewJobCostingModule construye el módulo con su definición declarativa.
func NewJobCostingModule(log *logger.Logger) *JobCostingModule {
	m := &JobCostingModule{log: log}
	m.Def = entity.ModuleDefinition{
		Key:         "job_costing",
		Name:        "Job Costing",
		Description: "Track costs, labor, and materials per job with budget vs actual analysis",
		Version:     "1.0.0",
		Author:      "CRM SaaS",
		RouteBase:   "/jobs",
		NAICSRequirements: &entity.NAICSRequirements{
			Sectors:   []string{"23"},
			Templates: []string{string(entity.TemplateProjectBased)},
		},
		Routes: []entity.ModuleRoute{
			{Path: "/", Method: "GET", Handler: "listJobs"},
			{Path: "/:id", Method: "GET", Handler: "getJob"},
			{Path: "/", Method: "POST", Handler: "createJob", Permissions: []string{"job_costing:create"}},
			{Path: "/:id", Method: "PUT", Handler: "updateJob", Permissions: []string{"job_costing:update"}},
			{Path: "/:id", Method: "DELETE", Handler: "deleteJob", Permissions: []string{"job_costing:delete"}},
			{Path: "/:id/costs", Method: "GET", Handler: "getJobCosts"},
			{Path: "/:id/costs", Method: "POST", Handler: "addJobCost", Permissions: []string{"job_costing:costs"}},
			{Path: "/:id/labor", Method: "GET", Handler: "getJobLabor"},
			{Path: "/:id/labor", Method: "POST", Handler: "addJobLabor", Permissions: []string{"job_costing:labor"}},
			{Path: "/:id/materials", Method: "GET", Handler: "getJobMaterials"},
			{Path: "/:id/profitability", Method: "GET", Handler: "getJobProfitability"},
			{Path: "/reports/summary", Method: "GET", Handler: "getCostingSummary"},
			{Path: "/reports/comparison", Method: "GET", Handler: "getBudgetComparison"},
		},
		Navigation: &entity.ModuleNavigation{
			MainNav: &entity.ModuleNavItem{
				Label: "Jobs", Icon: "briefcase", Path: "/jobs", Order: 10,
				Children: []entity.ModuleNavItem{
					{Label: "All Jobs", Icon: "list", Path: "/jobs"},
					{Label: "Active Jobs", Icon: "activity", Path: "/jobs?status=active"},
					{Label: "Job Costing", Icon: "dollar-sign", Path: "/jobs/costing"},
				},
			},
			SettingsNav: &entity.ModuleNavItem{
				Label: "Job Costing Settings", Icon: "settings", Path: "/settings/job-costing",
			},
			EntityTabs: []entity.EntityTab{
				{EntityType: entity.EntityOpportunity, Label: "Job", Path: "job", Order: 1},
			},
		},
		Permissions: []entity.ModulePermission{
			{Key: "job_costing:view", Name: "View Jobs", Description: "View job details and costs",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER", "MEMBER", "VIEWER"}},
			{Key: "job_costing:create", Name: "Create Jobs", Description: "Create new jobs",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
			{Key: "job_costing:update", Name: "Update Jobs", Description: "Edit job details",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
			{Key: "job_costing:delete", Name: "Delete Jobs", Description: "Delete jobs",
				DefaultRoles: []string{"OWNER", "ADMIN"}},
			{Key: "job_costing:costs", Name: "Manage Costs", Description: "Add and edit job costs",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
			{Key: "job_costing:labor", Name: "Manage Labor", Description: "Add and edit labor entries",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
			{Key: "job_costing:reports", Name: "View Reports", Description: "View job costing reports",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
		},
		Settings: []entity.ModuleSettingDefinition{
			{Key: "default_markup_percentage", Label: "Default Markup Percentage",
				Description: "Default markup to apply to job costs", Type: "number", DefaultValue: 20,
				Validation: &entity.SettingValidation{Min: intPtr(0), Max: intPtr(100)}},
			{Key: "default_labor_rate", Label: "Default Labor Rate ($/hr)",
				Description: "Default hourly rate for labor", Type: "number", DefaultValue: 50,
				Validation: &entity.SettingValidation{Min: intPtr(0)}},
			{Key: "overhead_percentage", Label: "Overhead Percentage",
				Description: "Overhead percentage to include in job costs", Type: "number", DefaultValue: 15,
				Validation: &entity.SettingValidation{Min: intPtr(0), Max: intPtr(100)}},
			{Key: "auto_create_job", Label: "Auto-Create Job from Opportunity",
				Description: "Automatically create a job when opportunity is won", Type: "boolean", DefaultValue: true},
			{Key: "job_number_prefix", Label: "Job Number Prefix",
				Description: "Prefix for auto-generated job numbers", Type: "text", DefaultValue: "JOB-"},
		},
	}
	return m
}

// OnActivate aprovisiona el costeo de obras del tenant.
func (m *JobCostingModule) OnActivate(ctx context.Context, mctx entity.ModuleContext) error {
	if m.log != nil {
		m.log.Info().Str("tenant", mctx.TenantID).Msg("módulo job_costing activado")
	}
	return nil
}

func (m *JobCostingModule) OnDeactivate(ctx context.Context, mctx entity.ModuleContext) error {
	if m.log != nil {
		m.log.Info().Str("tenant", mctx.TenantID).Msg("módulo job_costing desactivado")
	}
	return nil
}
