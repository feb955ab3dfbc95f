package entity

// IndustryTemplate identifica uno de los 8 arquetipos de negocio base.
type IndustryTemplate string

const (
	TemplateProjectBased     IndustryTemplate = "PROJECT_BASED"
	TemplateSalesFocused     IndustryTemplate = "SALES_FOCUSED"
	TemplateServiceBased     IndustryTemplate = "SERVICE_BASED"
	TemplateInventoryBased   IndustryTemplate = "INVENTORY_BASED"
	TemplateAssetBased       IndustryTemplate = "ASSET_BASED"
	TemplateMembershipBased  IndustryTemplate = "MEMBERSHIP_BASED"
	TemplateHospitalityBased IndustryTemplate = "HOSPITALITY_BASED"
	TemplateCaseBased        IndustryTemplate = "CASE_BASED"
)

// PipelineType clasifica el propósito de un pipeline.
type PipelineType string

const (
	PipelineSales      PipelineType = "SALES"
	PipelineService    PipelineType = "SERVICE"
	PipelineProject    PipelineType = "PROJECT"
	PipelineOnboarding PipelineType = "ONBOARDING"
	PipelineSupport    PipelineType = "SUPPORT"
)

// CustomFieldType enumera los tipos de campo personalizados soportados.
type CustomFieldType string

const (
	FieldText          CustomFieldType = "text"
	FieldTextarea      CustomFieldType = "textarea"
	FieldNumber        CustomFieldType = "number"
	FieldCurrency      CustomFieldType = "currency"
	FieldDate          CustomFieldType = "date"
	FieldDatetime      CustomFieldType = "datetime"
	FieldBoolean       CustomFieldType = "boolean"
	FieldSelect        CustomFieldType = "select"
	FieldMultiSelect   CustomFieldType = "multi_select"
	FieldAddress       CustomFieldType = "address"
	FieldEmail         CustomFieldType = "email"
	FieldPhone         CustomFieldType = "phone"
	FieldURL           CustomFieldType = "url"
	FieldUserReference CustomFieldType = "user_reference"
)

// CRMEntityType identifica la entidad CRM a la que pertenece un campo o tab.
type CRMEntityType string

const (
	EntityContact     CRMEntityType = "CONTACT"
	EntityAccount     CRMEntityType = "ACCOUNT"
	EntityLead        CRMEntityType = "LEAD"
	EntityOpportunity CRMEntityType = "OPPORTUNITY"
	EntityActivity    CRMEntityType = "ACTIVITY"
)

// ActivityCategory clasifica los tipos de actividad.
type ActivityCategory string

const (
	ActivityCall         ActivityCategory = "CALL"
	ActivityMeeting      ActivityCategory = "MEETING"
	ActivityTask         ActivityCategory = "TASK"
	ActivityNote         ActivityCategory = "NOTE"
	ActivityEmail        ActivityCategory = "EMAIL"
	ActivitySiteVisit    ActivityCategory = "SITE_VISIT"
	ActivityEstimate     ActivityCategory = "ESTIMATE"
	ActivityPresentation ActivityCategory = "PRESENTATION"
	ActivityFollowUp     ActivityCategory = "FOLLOW_UP"
	ActivityInspection   ActivityCategory = "INSPECTION"
)

// DocumentTemplateType clasifica las plantillas de documento.
type DocumentTemplateType string

const (
	DocumentProposal  DocumentTemplateType = "PROPOSAL"
	DocumentContract  DocumentTemplateType = "CONTRACT"
	DocumentInvoice   DocumentTemplateType = "INVOICE"
	DocumentEstimate  DocumentTemplateType = "ESTIMATE"
	DocumentEmailBody DocumentTemplateType = "EMAIL"
)

// IntegrationType clasifica las integraciones externas.
type IntegrationType string

const (
	IntegrationEmail      IntegrationType = "EMAIL"
	IntegrationCalendar   IntegrationType = "CALENDAR"
	IntegrationAccounting IntegrationType = "ACCOUNTING"
	IntegrationPayments   IntegrationType = "PAYMENTS"
	IntegrationStorage    IntegrationType = "STORAGE"
)
