package construction

import (
	"context"

	"github.com/jhoicas/crm-core/internal/application/modules"
	"github.com/jhoicas/crm-core/internal/domain/entity"
	"github.com/jhoicas/crm-core/pkg/logger"
)

// CrewSchedulingModule administra cuadrillas y su asignación a obras, con
// calendario y disponibilidad. Depende de job_costing.
type CrewSchedulingModule struct {
	modules.BaseModule
	log *logger.Logger
}

// NewCrewSchedulingModule construye el módulo con su definición declarativa.
func NewCrewSchedulingModule(log *logger.Logger) *CrewSchedulingModule {
	m := &CrewSchedulingModule{log: log}
	m.Def = entity.ModuleDefinition{
		Key:         "crew_scheduling",
		Name:        "Crew Scheduling",
		Description: "Schedule and assign crews to jobs with calendar views and availability tracking",
		Version:     "1.0.0",
		Author:      "CRM SaaS",
		RouteBase:   "/crews",
		NAICSRequirements: &entity.NAICSRequirements{
			Sectors:   []string{"23"},
			Templates: []string{string(entity.TemplateProjectBased)},
		},
		Requires: []string{"job_costing"},
		Routes: []entity.ModuleRoute{
			{Path: "/", Method: "GET", Handler: "listCrews"},
			{Path: "/:id", Method: "GET", Handler: "getCrew"},
			{Path: "/", Method: "POST", Handler: "createCrew", Permissions: []string{"crew_scheduling:create"}},
			{Path: "/:id", Method: "PUT", Handler: "updateCrew", Permissions: []string{"crew_scheduling:update"}},
			{Path: "/:id", Method: "DELETE", Handler: "deleteCrew", Permissions: []string{"crew_scheduling:delete"}},
			{Path: "/:id/members", Method: "GET", Handler: "getCrewMembers"},
			{Path: "/:id/members", Method: "POST", Handler: "addCrewMember", Permissions: []string{"crew_scheduling:members"}},
			{Path: "/:id/members/:memberId", Method: "DELETE", Handler: "removeCrewMember", Permissions: []string{"crew_scheduling:members"}},
			{Path: "/:id/schedule", Method: "GET", Handler: "getCrewSchedule"},
			{Path: "/:id/availability", Method: "GET", Handler: "getCrewAvailability"},
			{Path: "/assignments", Method: "GET", Handler: "getAssignments"},
			{Path: "/assignments", Method: "POST", Handler: "createAssignment", Permissions: []string{"crew_scheduling:assign"}},
			{Path: "/assignments/:id", Method: "PUT", Handler: "updateAssignment", Permissions: []string{"crew_scheduling:assign"}},
			{Path: "/assignments/:id", Method: "DELETE", Handler: "deleteAssignment", Permissions: []string{"crew_scheduling:assign"}},
			{Path: "/calendar", Method: "GET", Handler: "getCalendarView"},
		},
		Navigation: &entity.ModuleNavigation{
			MainNav: &entity.ModuleNavItem{
				Label: "Crews", Icon: "users", Path: "/crews", Order: 20,
				Children: []entity.ModuleNavItem{
					{Label: "All Crews", Icon: "list", Path: "/crews"},
					{Label: "Calendar", Icon: "calendar", Path: "/crews/calendar"},
					{Label: "Assignments", Icon: "clipboard", Path: "/crews/assignments"},
				},
			},
			SettingsNav: &entity.ModuleNavItem{
				Label: "Crew Settings", Icon: "settings", Path: "/settings/crews",
			},
			EntityTabs: []entity.EntityTab{
				{EntityType: entity.EntityOpportunity, Label: "Crew", Path: "crew", Order: 2},
			},
		},
		Permissions: []entity.ModulePermission{
			{Key: "crew_scheduling:view", Name: "View Crews", Description: "View crew details and schedules",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER", "MEMBER", "VIEWER"}},
			{Key: "crew_scheduling:create", Name: "Create Crews", Description: "Create new crews",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
			{Key: "crew_scheduling:update", Name: "Update Crews", Description: "Edit crew details",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
			{Key: "crew_scheduling:delete", Name: "Delete Crews", Description: "Delete crews",
				DefaultRoles: []string{"OWNER", "ADMIN"}},
			{Key: "crew_scheduling:members", Name: "Manage Members", Description: "Add and remove crew members",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
			{Key: "crew_scheduling:assign", Name: "Assign Crews", Description: "Assign crews to jobs",
				DefaultRoles: []string{"OWNER", "ADMIN", "MANAGER"}},
		},
		Settings: []entity.ModuleSettingDefinition{
			{Key: "default_work_hours_start", Label: "Default Work Start Time",
				Description: "Default start time for crew work day", Type: "text", DefaultValue: "07:00"},
			{Key: "default_work_hours_end", Label: "Default Work End Time",
				Description: "Default end time for crew work day", Type: "text", DefaultValue: "17:00"},
			{Key: "work_days", Label: "Work Days",
				Description: "Days crews typically work", Type: "multiselect",
				DefaultValue: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
				Options: []entity.SettingOption{
					{Value: "sunday", Label: "Sunday"},
					{Value: "monday", Label: "Monday"},
					{Value: "tuesday", Label: "Tuesday"},
					{Value: "wednesday", Label: "Wednesday"},
					{Value: "thursday", Label: "Thursday"},
					{Value: "friday", Label: "Friday"},
					{Value: "saturday", Label: "Saturday"},
				}},
			{Key: "allow_double_booking", Label: "Allow Double Booking",
				Description: "Allow crews to be assigned to multiple jobs at the same time",
				Type:        "boolean", DefaultValue: false},
			{Key: "travel_time_buffer", Label: "Travel Time Buffer (minutes)",
				Description: "Buffer time between assignments for travel", Type: "number", DefaultValue: 30,
				Validation: &entity.SettingValidation{Min: intPtr(0), Max: intPtr(120)}},
		},
	}
	return m
}

func (m *CrewSchedulingModule) OnActivate(ctx context.Context, mctx entity.ModuleContext) error {
	if m.log != nil {
		m.log.Info().Str("tenant", mctx.TenantID).Msg("módulo crew_scheduling activado")
	}
	return nil
}

func (m *CrewSchedulingModule) OnDeactivate(ctx context.Context, mctx entity.ModuleContext) error {
	if m.log != nil {
		m.log.Info().Str("tenant", mctx.TenantID).Msg("módulo crew_scheduling desactivado")
	}
	return nil
}
