package catalog

import "github.com/jhoicas/crm-core/internal/domain/entity"

// Constructores compactos para las tablas de datos de las plantillas.

func stage(name string, sortOrder, probability int, initial, final, won, lost bool) entity.StageConfiguration {
	p := probability
	return entity.StageConfiguration{
		Name:           name,
		SortOrder:      sortOrder,
		Probability:    &p,
		IsInitial:      initial,
		IsFinal:        final,
		IsWon:          won,
		IsLost:         lost,
		RequiredFields: []string{},
	}
}

func field(key, label string, ft entity.CustomFieldType, et entity.CRMEntityType, required, searchable, filterable bool, sortOrder int) entity.CustomFieldConfiguration {
	return entity.CustomFieldConfiguration{
		FieldKey:     key,
		Label:        label,
		FieldType:    ft,
		EntityType:   et,
		IsRequired:   required,
		IsSearchable: searchable,
		IsFilterable: filterable,
		SortOrder:    sortOrder,
	}
}

func activity(key, name string, cat entity.ActivityCategory, schedulable, loggable, requiresLocation bool, durationMin int) entity.ActivityTypeConfiguration {
	d := durationMin
	return entity.ActivityTypeConfiguration{
		ActivityKey:          key,
		Name:                 name,
		Category:             cat,
		DurationDefault:      &d,
		IsSchedulable:        schedulable,
		IsLoggable:           loggable,
		RequiresLocation:     requiresLocation,
		RequiredCustomFields: []string{},
	}
}

var templateDefinitions = map[entity.IndustryTemplate]entity.TemplateDefinition{

	// =========================================================================
	// PROJECT_BASED — proyectos con cronogramas, recursos y entregables.
	// Sectores: 23 Construcción, 51 Información, 54 Servicios profesionales.
	// =========================================================================
	entity.TemplateProjectBased: {
		Template:    entity.TemplateProjectBased,
		Name:        "Project-Based CRM",
		Description: "For businesses that manage projects with timelines, resources, and deliverables",
		Sectors:     []string{"23", "51", "54"},
		Focus:       "Jobs, estimates, timelines, resources, deliverables",
		DefaultPipelines: []entity.PipelineConfiguration{
			{
				Name:         "Project Sales Pipeline",
				PipelineType: entity.PipelineSales,
				IsDefault:    true,
				Stages: []entity.StageConfiguration{
					stage("Lead", 1, 10, true, false, false, false),
					stage("Qualified", 2, 20, false, false, false, false),
					stage("Estimate Prepared", 3, 40, false, false, false, false),
					stage("Proposal Sent", 4, 50, false, false, false, false),
					stage("Negotiation", 5, 70, false, false, false, false),
					stage("Contract Signed", 6, 90, false, false, false, false),
					stage("In Production", 7, 95, false, false, false, false),
					stage("Completed", 8, 100, false, true, true, false),
					stage("Lost", 9, 0, false, true, false, true),
				},
			},
		},
		DefaultModules: []string{"job_costing", "resource_scheduling", "time_tracking", "estimates"},
		DefaultFields: []entity.CustomFieldConfiguration{
			field("project_type", "Project Type", entity.FieldSelect, entity.EntityOpportunity, false, true, true, 1),
			field("estimated_start_date", "Estimated Start Date", entity.FieldDate, entity.EntityOpportunity, false, false, true, 2),
			field("estimated_duration", "Estimated Duration (Days)", entity.FieldNumber, entity.EntityOpportunity, false, false, false, 3),
			field("budget", "Budget", entity.FieldCurrency, entity.EntityOpportunity, false, false, true, 4),
		},
		DefaultActivityTypes: []entity.ActivityTypeConfiguration{
			activity("site_visit", "Site Visit", entity.ActivitySiteVisit, true, true, true, 60),
			activity("estimate", "Prepare Estimate", entity.ActivityEstimate, true, true, false, 120),
			activity("progress_meeting", "Progress Meeting", entity.ActivityMeeting, true, true, false, 60),
		},
	},

	// =========================================================================
	// SALES_FOCUSED — ventas por cuentas, territorios y ciclos largos.
	// Sectores: 42 Mayorista, 52 Finanzas, 53 Bienes raíces. También es el
	// fallback para sectores no mapeados.
	// =========================================================================
	entity.TemplateSalesFocused: {
		Template:    entity.TemplateSalesFocused,
		Name:        "Sales-Focused CRM",
		Description: "For businesses with account-based sales, territories, and long sales cycles",
		Sectors:     []string{"42", "52", "53"},
		Focus:       "Accounts, territories, long sales cycles, commissions",
		DefaultPipelines: []entity.PipelineConfiguration{
			{
				Name:         "Sales Pipeline",
				PipelineType: entity.PipelineSales,
				IsDefault:    true,
				Stages: []entity.StageConfiguration{
					stage("Lead", 1, 5, true, false, false, false),
					stage("Qualified", 2, 15, false, false, false, false),
					stage("Discovery", 3, 25, false, false, false, false),
					stage("Proposal", 4, 50, false, false, false, false),
					stage("Negotiation", 5, 75, false, false, false, false),
					stage("Closed Won", 6, 100, false, true, true, false),
					stage("Closed Lost", 7, 0, false, true, false, true),
				},
			},
		},
		DefaultModules: []string{"territory_management", "commission_tracking", "account_hierarchies"},
		DefaultFields: []entity.CustomFieldConfiguration{
			field("territory", "Territory", entity.FieldSelect, entity.EntityAccount, false, true, true, 1),
			field("account_tier", "Account Tier", entity.FieldSelect, entity.EntityAccount, false, true, true, 2),
			field("decision_makers", "Decision Makers", entity.FieldMultiSelect, entity.EntityOpportunity, false, false, false, 3),
			field("contract_value", "Contract Value", entity.FieldCurrency, entity.EntityOpportunity, false, false, true, 4),
		},
		DefaultActivityTypes: []entity.ActivityTypeConfiguration{
			activity("discovery_call", "Discovery Call", entity.ActivityCall, true, true, false, 30),
			activity("presentation", "Presentation", entity.ActivityPresentation, true, true, false, 60),
			activity("contract_review", "Contract Review", entity.ActivityMeeting, true, true, false, 45),
		},
	},

	// =========================================================================
	// SERVICE_BASED — citas, despacho y servicios recurrentes.
	// Sectores: 62 Salud, 81 Otros servicios, 56 Administrativo.
	// =========================================================================
	entity.TemplateServiceBased: {
		Template:    entity.TemplateServiceBased,
		Name:        "Service-Based CRM",
		Description: "For businesses that provide appointments, dispatch, and recurring services",
		Sectors:     []string{"62", "81", "56"},
		Focus:       "Appointments, dispatch, service history, recurring visits",
		DefaultPipelines: []entity.PipelineConfiguration{
			{
				Name:         "Service Pipeline",
				PipelineType: entity.PipelineService,
				IsDefault:    true,
				Stages: []entity.StageConfiguration{
					stage("Request", 1, 20, true, false, false, false),
					stage("Scheduled", 2, 50, false, false, false, false),
					stage("In Progress", 3, 80, false, false, false, false),
					stage("Completed", 4, 100, false, true, true, false),
					stage("Follow-up", 5, 100, false, false, false, false),
					stage("Cancelled", 6, 0, false, true, false, true),
				},
			},
		},
		DefaultModules: []string{"appointment_scheduling", "dispatch_routing", "service_history"},
		DefaultFields: []entity.CustomFieldConfiguration{
			field("service_type", "Service Type", entity.FieldSelect, entity.EntityOpportunity, true, true, true, 1),
			field("service_location", "Service Location", entity.FieldAddress, entity.EntityOpportunity, true, false, false, 2),
			field("duration", "Duration (Minutes)", entity.FieldNumber, entity.EntityOpportunity, false, false, false, 3),
			field("recurring_schedule", "Recurring Schedule", entity.FieldSelect, entity.EntityOpportunity, false, false, true, 4),
		},
		DefaultActivityTypes: []entity.ActivityTypeConfiguration{
			activity("appointment", "Appointment", entity.ActivityMeeting, true, true, true, 60),
			activity("service_call", "Service Call", entity.ActivitySiteVisit, true, true, true, 60),
			activity("follow_up", "Follow-up", entity.ActivityFollowUp, true, true, false, 15),
		},
	},

	// =========================================================================
	// INVENTORY_BASED — productos, pedidos y cumplimiento.
	// Sectores: 31-33 Manufactura, 44-45 Minorista, 11 Agricultura.
	// =========================================================================
	entity.TemplateInventoryBased: {
		Template:    entity.TemplateInventoryBased,
		Name:        "Inventory-Based CRM",
		Description: "For businesses that manage products, orders, and fulfillment",
		Sectors:     []string{"31", "32", "33", "44", "45", "11"},
		Focus:       "Products, orders, inventory, fulfillment",
		DefaultPipelines: []entity.PipelineConfiguration{
			{
				Name:         "Order Pipeline",
				PipelineType: entity.PipelineSales,
				IsDefault:    true,
				Stages: []entity.StageConfiguration{
					stage("Quote", 1, 20, true, false, false, false),
					stage("Order Placed", 2, 60, false, false, false, false),
					stage("Processing", 3, 80, false, false, false, false),
					stage("Fulfillment", 4, 90, false, false, false, false),
					stage("Shipped", 5, 95, false, false, false, false),
					stage("Delivered", 6, 100, false, true, true, false),
					stage("Cancelled", 7, 0, false, true, false, true),
				},
			},
		},
		DefaultModules: []string{"inventory_management", "order_fulfillment", "supplier_management"},
		DefaultFields: []entity.CustomFieldConfiguration{
			field("order_number", "Order Number", entity.FieldText, entity.EntityOpportunity, false, true, false, 1),
			field("ship_to_address", "Ship To Address", entity.FieldAddress, entity.EntityOpportunity, false, false, false, 2),
			field("shipping_method", "Shipping Method", entity.FieldSelect, entity.EntityOpportunity, false, false, true, 3),
			field("tracking_number", "Tracking Number", entity.FieldText, entity.EntityOpportunity, false, true, false, 4),
		},
		DefaultActivityTypes: []entity.ActivityTypeConfiguration{
			activity("order_entry", "Order Entry", entity.ActivityTask, false, true, false, 15),
			activity("inventory_check", "Inventory Check", entity.ActivityTask, true, true, false, 30),
			activity("supplier_call", "Supplier Call", entity.ActivityCall, true, true, false, 20),
		},
	},

	// =========================================================================
	// ASSET_BASED — flotas, equipos y mantenimiento.
	// Sectores: 48-49 Transporte, 21 Minería, 22 Servicios públicos.
	// =========================================================================
	entity.TemplateAssetBased: {
		Template:    entity.TemplateAssetBased,
		Name:        "Asset-Based CRM",
		Description: "For businesses that manage fleets, equipment, and maintenance",
		Sectors:     []string{"48", "49", "21", "22"},
		Focus:       "Fleet, equipment, maintenance, compliance",
		DefaultPipelines: []entity.PipelineConfiguration{
			{
				Name:         "Asset Lifecycle",
				PipelineType: entity.PipelineProject,
				IsDefault:    true,
				Stages: []entity.StageConfiguration{
					stage("Acquisition", 1, 20, true, false, false, false),
					stage("Deployment", 2, 50, false, false, false, false),
					stage("Active", 3, 100, false, false, false, false),
					stage("Maintenance", 4, 80, false, false, false, false),
					stage("Decommission", 5, 100, false, true, true, false),
				},
			},
		},
		DefaultModules: []string{"fleet_management", "maintenance_scheduling", "compliance_tracking"},
		DefaultFields: []entity.CustomFieldConfiguration{
			field("asset_id", "Asset ID", entity.FieldText, entity.EntityOpportunity, true, true, false, 1),
			field("asset_location", "Asset Location", entity.FieldAddress, entity.EntityOpportunity, false, false, true, 2),
			field("maintenance_due", "Maintenance Due", entity.FieldDate, entity.EntityOpportunity, false, false, true, 3),
			field("compliance_status", "Compliance Status", entity.FieldSelect, entity.EntityOpportunity, false, false, true, 4),
		},
		DefaultActivityTypes: []entity.ActivityTypeConfiguration{
			activity("inspection", "Inspection", entity.ActivityInspection, true, true, true, 60),
			activity("maintenance", "Maintenance", entity.ActivityTask, true, true, true, 120),
			activity("compliance_audit", "Compliance Audit", entity.ActivityInspection, true, true, false, 180),
		},
	},

	// =========================================================================
	// MEMBERSHIP_BASED — miembros, inscripciones y programas.
	// Sectores: 61 Educación, 71 Arte y entretenimiento.
	// =========================================================================
	entity.TemplateMembershipBased: {
		Template:    entity.TemplateMembershipBased,
		Name:        "Membership-Based CRM",
		Description: "For businesses that manage members, enrollment, and programs",
		Sectors:     []string{"61", "71"},
		Focus:       "Members, enrollment, progress, events",
		DefaultPipelines: []entity.PipelineConfiguration{
			{
				Name:         "Enrollment Pipeline",
				PipelineType: entity.PipelineOnboarding,
				IsDefault:    true,
				Stages: []entity.StageConfiguration{
					stage("Prospect", 1, 10, true, false, false, false),
					stage("Applied", 2, 30, false, false, false, false),
					stage("Enrolled", 3, 80, false, false, false, false),
					stage("Active", 4, 100, false, false, false, false),
					stage("Renewal", 5, 70, false, false, false, false),
					stage("Alumni", 6, 100, false, true, true, false),
					stage("Withdrawn", 7, 0, false, true, false, true),
				},
			},
		},
		DefaultModules: []string{"enrollment", "member_portal", "progress_tracking", "events"},
		DefaultFields: []entity.CustomFieldConfiguration{
			field("member_id", "Member ID", entity.FieldText, entity.EntityContact, false, true, false, 1),
			field("enrollment_date", "Enrollment Date", entity.FieldDate, entity.EntityContact, false, false, true, 2),
			field("membership_tier", "Membership Tier", entity.FieldSelect, entity.EntityContact, false, true, true, 3),
			field("expiration_date", "Expiration Date", entity.FieldDate, entity.EntityContact, false, false, true, 4),
		},
		DefaultActivityTypes: []entity.ActivityTypeConfiguration{
			activity("registration", "Registration", entity.ActivityTask, false, true, false, 30),
			activity("class_session", "Class/Session", entity.ActivityMeeting, true, true, true, 60),
			activity("event", "Event", entity.ActivityMeeting, true, true, true, 120),
		},
	},

	// =========================================================================
	// HOSPITALITY_BASED — reservas, capacidad y experiencia del huésped.
	// Sectores: 72 Alojamiento y comida.
	// =========================================================================
	entity.TemplateHospitalityBased: {
		Template:    entity.TemplateHospitalityBased,
		Name:        "Hospitality-Based CRM",
		Description: "For businesses that manage reservations, capacity, and guest experience",
		Sectors:     []string{"72"},
		Focus:       "Reservations, capacity, guest experience",
		DefaultPipelines: []entity.PipelineConfiguration{
			{
				Name:         "Reservation Pipeline",
				PipelineType: entity.PipelineService,
				IsDefault:    true,
				Stages: []entity.StageConfiguration{
					stage("Inquiry", 1, 20, true, false, false, false),
					stage("Reserved", 2, 70, false, false, false, false),
					stage("Confirmed", 3, 90, false, false, false, false),
					stage("Checked In", 4, 100, false, false, false, false),
					stage("Completed", 5, 100, false, true, true, false),
					stage("Cancelled", 6, 0, false, true, false, true),
					stage("No Show", 7, 0, false, true, false, true),
				},
			},
		},
		DefaultModules: []string{"reservations", "table_room_management", "guest_profiles"},
		DefaultFields: []entity.CustomFieldConfiguration{
			field("party_size", "Party Size", entity.FieldNumber, entity.EntityOpportunity, true, false, true, 1),
			field("reservation_datetime", "Reservation Date/Time", entity.FieldDatetime, entity.EntityOpportunity, true, false, true, 2),
			field("room_table", "Room/Table", entity.FieldSelect, entity.EntityOpportunity, false, false, true, 3),
			field("special_requests", "Special Requests", entity.FieldTextarea, entity.EntityOpportunity, false, false, false, 4),
			field("vip_status", "VIP Status", entity.FieldBoolean, entity.EntityContact, false, false, true, 5),
		},
		DefaultActivityTypes: []entity.ActivityTypeConfiguration{
			activity("reservation", "Reservation", entity.ActivityTask, true, true, false, 15),
			activity("check_in", "Check In", entity.ActivityTask, false, true, true, 10),
			activity("guest_feedback", "Guest Feedback", entity.ActivityNote, false, true, false, 5),
		},
	},

	// =========================================================================
	// CASE_BASED — casos, solicitudes y cumplimiento normativo.
	// Sectores: 92 Administración pública, 55 Gestión de compañías.
	// =========================================================================
	entity.TemplateCaseBased: {
		Template:    entity.TemplateCaseBased,
		Name:        "Case-Based CRM",
		Description: "For businesses that manage cases, requests, and compliance",
		Sectors:     []string{"92", "55"},
		Focus:       "Cases, requests, compliance, documentation",
		DefaultPipelines: []entity.PipelineConfiguration{
			{
				Name:         "Case Pipeline",
				PipelineType: entity.PipelineSupport,
				IsDefault:    true,
				Stages: []entity.StageConfiguration{
					stage("Submitted", 1, 10, true, false, false, false),
					stage("Under Review", 2, 30, false, false, false, false),
					stage("In Progress", 3, 60, false, false, false, false),
					stage("Pending Approval", 4, 80, false, false, false, false),
					stage("Resolved", 5, 100, false, true, true, false),
					stage("Closed", 6, 100, false, true, true, false),
					stage("Rejected", 7, 0, false, true, false, true),
				},
			},
		},
		DefaultModules: []string{"case_management", "request_tracking", "compliance_audit"},
		DefaultFields: []entity.CustomFieldConfiguration{
			field("case_number", "Case Number", entity.FieldText, entity.EntityOpportunity, true, true, false, 1),
			field("case_category", "Category", entity.FieldSelect, entity.EntityOpportunity, true, true, true, 2),
			field("priority", "Priority", entity.FieldSelect, entity.EntityOpportunity, true, false, true, 3),
			field("assigned_to", "Assigned To", entity.FieldUserReference, entity.EntityOpportunity, false, false, true, 4),
			field("resolution", "Resolution", entity.FieldTextarea, entity.EntityOpportunity, false, false, false, 5),
		},
		DefaultActivityTypes: []entity.ActivityTypeConfiguration{
			activity("case_update", "Case Update", entity.ActivityNote, false, true, false, 15),
			activity("review_meeting", "Review Meeting", entity.ActivityMeeting, true, true, false, 60),
			activity("approval", "Approval", entity.ActivityTask, false, true, false, 30),
		},
	},
}
