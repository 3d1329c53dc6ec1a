package ecd

import (
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hendrawanz/ecard-filler/internal/automator/browser"
	"github.com/hendrawanz/ecard-filler/internal/automator/form"
	"github.com/hendrawanz/ecard-filler/internal/automator/translate"
)

// scanInvalidJS walks the rendered controls and inline messages, flagging
// anything painted in the portal's invalid-red family. Border styling is a
// portal-wide convention, which is what lets this engine stay page-agnostic.
//
// Returns a JSON array of field descriptors for classification on the Go
// side.
const scanInvalidJS = `(redColors) => {
	const reds = new Set(redColors);
	const out = [];

	const nearbyText = (el) => {
		const block = el.closest('[class*="form-item"], [class*="question"]') || el.parentElement;
		if (!block) return '';
		return (block.innerText || '').slice(0, 200);
	};

	for (const el of document.querySelectorAll('input, textarea, select, div[id]')) {
		const r = el.getBoundingClientRect();
		if (r.width === 0 || r.height === 0) continue;
		const s = window.getComputedStyle(el);
		if (!reds.has(s.borderColor) && !reds.has(s.borderBottomColor)) continue;
		out.push({
			tag: el.tagName.toLowerCase(),
			id: el.id || '',
			placeholder: el.getAttribute('placeholder') || '',
			nearby: nearbyText(el),
			issue: 'invalid border'
		});
	}

	for (const el of document.querySelectorAll('span, p, div')) {
		const r = el.getBoundingClientRect();
		if (r.width === 0 || r.height === 0) continue;
		const text = (el.innerText || '').trim();
		if (!text || text.length > 120 || el.children.length > 0) continue;
		const s = window.getComputedStyle(el);
		if (!reds.has(s.color)) continue;
		out.push({
			tag: el.tagName.toLowerCase(),
			id: el.id || '',
			placeholder: '',
			nearby: nearbyText(el) || text,
			issue: text
		});
	}

	return JSON.stringify(out);
}`

// fieldDescriptor is the raw scan output for one flagged element.
type fieldDescriptor struct {
	Tag         string `json:"tag"`
	ID          string `json:"id"`
	Placeholder string `json:"placeholder"`
	Nearby      string `json:"nearby"`
	Issue       string `json:"issue"`
}

// classifyField buckets a flagged element into a logical form field using,
// in order of preference: id substring, placeholder text, nearby keyword.
// Unclassifiable elements come back FieldUnknown so operators still see
// them, even though no fixer will run.
func classifyField(d fieldDescriptor) form.FieldKind {
	if kind, ok := matchFieldKeywords(d.ID); ok {
		return kind
	}
	if kind, ok := matchFieldKeywords(d.Placeholder); ok {
		return kind
	}
	if kind, ok := matchFieldKeywords(d.Nearby); ok {
		return kind
	}
	return form.FieldUnknown
}

// fieldKeywordOrder keeps classification deterministic: more specific
// keywords are tried before generic ones ("departure" before "date").
var fieldKeywordOrder = []struct {
	keyword string
	kind    form.FieldKind
}{
	{"passport", form.FieldPassport},
	{"nationality", form.FieldNationality},
	{"kewarganegaraan", form.FieldNationality},
	{"birth", form.FieldBirthDate},
	{"lahir", form.FieldBirthDate},
	{"departure", form.FieldDeparture},
	{"keberangkatan", form.FieldDeparture},
	{"arrival", form.FieldArrival},
	{"kedatangan", form.FieldArrival},
	{"flight", form.FieldFlight},
	{"penerbangan", form.FieldFlight},
	{"purpose", form.FieldPurpose},
	{"tujuan", form.FieldPurpose},
	{"port", form.FieldPort},
	{"visa", form.FieldVisaNumber},
	{"address", form.FieldAddress},
	{"alamat", form.FieldAddress},
	{"occupation", form.FieldOccupation},
	{"pekerjaan", form.FieldOccupation},
	{"phone", form.FieldPhone},
	{"telepon", form.FieldPhone},
	{"email", form.FieldEmail},
	{"name", form.FieldFullName},
	{"nama", form.FieldFullName},
}

func matchFieldKeywords(s string) (form.FieldKind, bool) {
	lower := strings.ToLower(s)
	if lower == "" {
		return form.FieldUnknown, false
	}
	for _, fk := range fieldKeywordOrder {
		if strings.Contains(lower, fk.keyword) {
			return fk.kind, true
		}
	}
	return form.FieldUnknown, false
}

// scanValidation collects the page's failed-field indicators. A blocking
// "incomplete data" popup is dismissed first: borders are only trustworthy
// after it is gone.
func (a *Automator) scanValidation() []form.ValidationError {
	a.dismissBlockingPopup()

	res, err := a.page.Eval(scanInvalidJS, invalidBorderColors)
	if err != nil {
		a.log.Warn("validation scan failed", zap.Error(err))
		return nil
	}

	var descriptors []fieldDescriptor
	if err := json.Unmarshal([]byte(res.Value.Str()), &descriptors); err != nil {
		a.log.Warn("validation scan returned malformed payload", zap.Error(err))
		return nil
	}

	errs := make([]form.ValidationError, 0, len(descriptors))
	seen := map[form.FieldKind]bool{}
	for _, d := range descriptors {
		kind := classifyField(d)
		if kind != form.FieldUnknown && seen[kind] {
			continue
		}
		seen[kind] = true

		selector := d.Tag
		if d.ID != "" {
			selector = "#" + d.ID
		}
		errs = append(errs, form.ValidationError{
			Field:    kind,
			Selector: selector,
			Issue:    d.Issue,
		})
	}
	return errs
}

// fixValidation re-runs the appropriate filler for each flagged field with
// the original form value. Fields with no known fixer are left unresolved.
// Returns true if at least one field was fixed, signalling the caller that a
// navigation retry is worth attempting.
func (a *Automator) fixValidation(errs []form.ValidationError, f *form.ApplicantForm) bool {
	anyFixed := false

	for _, ve := range errs {
		var err error
		switch ve.Field {
		case form.FieldFullName:
			err = a.fillText(idFullName, f.FullName)
		case form.FieldPassport:
			err = a.fillText(idPassportNo, f.PassportNumber)
		case form.FieldNationality:
			err = a.fillDropdown(idNationality, f.Nationality, translate.CategoryCountry)
		case form.FieldBirthDate:
			err = a.fillDate(idBirthDate, f.DateOfBirth)
		case form.FieldArrival:
			err = a.fillDate(idArrivalDate, f.ArrivalDate)
		case form.FieldDeparture:
			err = a.fillDate(idDepartureDate, f.DepartureDate)
		case form.FieldFlight:
			err = a.fillText(idFlightNumber, f.FlightNumber)
		case form.FieldPurpose:
			err = a.fillDropdown(idPurpose, f.PurposeOfVisit, translate.CategoryPurpose)
		case form.FieldPort:
			err = a.fillDropdown(idArrivalPort, f.ArrivalPort, translate.CategoryAirport)
		case form.FieldVisaNumber:
			err = a.fillText(idVisaNumber, f.VisaNumber)
		case form.FieldAddress:
			err = a.fillTextarea(idAddress, f.AddressInCountry)
		case form.FieldOccupation:
			err = a.fillText(idOccupation, f.Occupation)
		case form.FieldPhone:
			err = a.fillText(idPhone, f.Phone)
		case form.FieldEmail:
			err = a.fillText(idEmail, f.Email)
		default:
			a.log.Warn("no fixer for flagged field", zap.String("error", ve.String()))
			continue
		}

		if err != nil {
			a.log.Warn("fixer failed", zap.String("field", string(ve.Field)), zap.Error(err))
			continue
		}
		a.log.Debug("fixed flagged field", zap.String("field", string(ve.Field)))
		anyFixed = true
	}

	return anyFixed
}

// dismissBlockingPopup acknowledges the portal's fixed-position validation
// popup if present.
func (a *Automator) dismissBlockingPopup() {
	html, err := a.pageHTML()
	if err != nil || !hasBlockingPopup(html) {
		return
	}

	ack, err := browser.VisibleBySelector(a.page, SelectorPopupAck)
	if err != nil {
		a.log.Warn("blocking popup present but no acknowledgement control found")
		return
	}
	if err := ack.Click(clickButtonLeft, 1); err != nil {
		a.log.Warn("failed to dismiss blocking popup", zap.Error(err))
		return
	}
	browser.WaitDOMSettled(a.page, 2*time.Second)
}
