package domain

type ProjectStatus string

const (
	ProjectDraft      ProjectStatus = "draft"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"draft": true, "in_progress": true, "completed": true,
}

type StageStatus string

const (
	StageCompleted  StageStatus = "completed"
	StageInProgress StageStatus = "in_progress"
	StagePending    StageStatus = "pending"
)

// SelectionKind distinguishes the two catalogs a project selects from.
type SelectionKind string

const (
	SelectProfiles SelectionKind = "profile"
	SelectMissions SelectionKind = "mission"
)

type DeckTemplate string

const (
	TemplateCorporate DeckTemplate = "corporate"
	TemplateModern    DeckTemplate = "modern"
	TemplateMinimal   DeckTemplate = "minimal"
	TemplateBold      DeckTemplate = "bold"
)

// ValidTemplates maps each template to its display label.
var ValidTemplates = map[DeckTemplate]string{
	TemplateCorporate: "Corporate (Blue)",
	TemplateModern:    "Modern (Teal)",
	TemplateMinimal:   "Minimal (Gray)",
	TemplateBold:      "Bold (Purple)",
}

type DeckFormat string

const (
	FormatPPTX    DeckFormat = "pptx"
	FormatPDF     DeckFormat = "pdf"
	FormatGSlides DeckFormat = "gslides"
)

var ValidFormats = map[DeckFormat]string{
	FormatPPTX:    "PowerPoint (PPTX)",
	FormatPDF:     "PDF",
	FormatGSlides: "Google Slides",
}

var ValidLanguages = map[string]string{
	"en": "English",
	"fr": "French",
	"es": "Spanish",
	"de": "German",
}
