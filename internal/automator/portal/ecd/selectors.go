package ecd

// DOM landmarks and selectors for the e-arrival-card portal.
//
// Everything in this file is external, unstable contract surface: URL path
// fragments, heading strings and class-name fragments the portal happens to
// render today. Keeping all of it here means a portal redesign touches one
// file, not the state machine.
const (
	// PortalBaseURL is the portal's public entry point, also handed back
	// to users as the manual-completion fallback on any failure.
	PortalBaseURL = "https://ecd.imigrasi.go.id/arrival-card"

	// URL path fragments per wizard page.
	PathPersonal    = "personal-information"
	PathTravel      = "travel-detail"
	PathTransport   = "transportation"
	PathDeclaration = "declaration"
	PathSuccess     = "submission-success"
	PathGroup       = "group"

	// Wizard step containers.
	SelectorStepContainer = `div[class*="wizard-step"]`
	SelectorStepHeading   = `div[class*="wizard-step"] h2, div[class*="step-title"]`

	// Navigation controls.
	SelectorNextButton   = `button[class*="btn-next"]`
	SelectorSubmitButton = `button[class*="btn-submit"]`
	SelectorSaveButton   = `button[class*="btn-save"]`

	// Searchable dropdown widget. The overlay is appended to <body>, and
	// stale overlays from previously opened dropdowns linger hidden, so
	// overlay lookups must go through visible-element resolution.
	SelectorDropdownOverlay = `div.el-select-dropdown`
	SelectorDropdownSearch  = `div.el-select-dropdown input[type="text"]`
	SelectorDropdownOption  = `li.el-select-dropdown__item`

	// Radio groups: clickable containers wrapping a hidden input. The
	// inner indicator flips to the selected highlight color on pick.
	SelectorRadioGroup     = `div.el-radio-group`
	SelectorRadioOption    = `label.el-radio`
	SelectorRadioInput     = `input.el-radio__original`
	SelectorRadioIndicator = `span.el-radio__inner`

	// Group flow.
	SelectorTravellerCard = `div[class*="traveller-card"]`
	SelectorConsentBox    = `input[type="checkbox"][class*="consent"]`

	// Dialogs and popups.
	SelectorDialog        = `div.el-dialog`
	SelectorDialogConfirm = `div.el-dialog button[class*="confirm"]`
	SelectorBlockingPopup = `div[class*="popup-overlay"]`
	SelectorPopupAck      = `div[class*="popup-overlay"] button`

	// Success page.
	SelectorQRImage    = `img[src^="data:image"]`
	SelectorViewQRLink = `a[class*="view-qr"], button[class*="view-qr"]`

	// selectedIndicatorColor is the portal-wide highlight applied to a
	// picked radio indicator. Shares the Element-UI primary palette.
	selectedIndicatorColor = "rgb(64, 158, 255)"
)

// Field id prefixes. The portal suffixes every control id with a render
// nonce ("passportNo-3fa1"), so lookups always go through prefix selectors.
const (
	idFullName    = "fullName"
	idPassportNo  = "passportNo"
	idNationality = "nationality"
	idBirthDate   = "dateOfBirth"
	idGender      = "gender"
	idOccupation  = "occupation"
	idPhone       = "phoneNumber"
	idEmail       = "email"

	idArrivalDate   = "arrivalDate"
	idDepartureDate = "departureDate"
	idPurpose       = "purposeOfVisit"
	idVisaNumber    = "visaNumber"

	idTransportMode = "modeOfTransport"
	idTransportType = "transportType"
	idFlightName    = "flightName"
	idFlightNumber  = "flightNumber"
	idArrivalPort   = "portOfArrival"
	idAddress       = "addressInIndonesia"
	idBaggageCount  = "baggageCount"
)

// stepHeadings maps each wizard page to the heading fragments it may render,
// in either portal language. Matching is case-insensitive substring.
var stepHeadings = map[string][]string{
	PathPersonal:    {"personal information", "data pribadi"},
	PathTravel:      {"travel detail", "detail perjalanan"},
	PathTransport:   {"transportation and address", "transportasi dan alamat"},
	PathDeclaration: {"declaration", "deklarasi"},
	PathSuccess:     {"arrival card", "kartu kedatangan"},
}

// Radio question topics, keyed by the heading-text keywords that identify
// each question block. Exact heading wording varies between locales and
// portal revisions, so containers are found by keyword, never full text.
var questionKeywords = map[string][]string{
	"visa":       {"visa"},
	"goods":      {"goods to declare", "dutiable", "barang"},
	"currency":   {"currency", "cash", "uang tunai"},
	"quarantine": {"animals", "plants", "hewan", "tumbuhan"},
	"symptoms":   {"symptoms", "fever", "gejala", "demam"},
}

// Affirmative/negative option labels per locale.
var (
	yesLabels = []string{"Yes", "Ya"}
	noLabels  = []string{"No", "Tidak"}
)

// incompleteDataWording identifies the blocking validation popup in either
// language.
var incompleteDataWording = []string{"incomplete data", "data belum lengkap", "data tidak lengkap"}

// confirmationWording identifies the pre-submit confirmation dialog.
var confirmationWording = []string{"submit this declaration", "are you sure", "kirim deklarasi", "apakah anda yakin"}

// invalidBorderColors is the red family the portal paints on fields that
// failed validation.
var invalidBorderColors = []string{
	"rgb(245, 108, 108)",
	"rgb(255, 77, 79)",
	"rgb(255, 0, 0)",
	"#f56c6c",
	"#ff4d4f",
}
