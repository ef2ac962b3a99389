package health

import "strings"

// Short texts shown in the bar.
const (
	okText   = "✓"
	warnText = "⚠"
)

// Payload is the JSON object waybar's custom module consumes.
type Payload struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
}

// Payload derives the bar text, tooltip and CSS class from the report.
// The text is a check mark when everything is OK, otherwise a warning sign
// followed by "<name>:<severity>" for every non-OK check.
func (r *Report) Payload() Payload {
	text := okText
	if r.Severity() != SeverityOK {
		parts := []string{warnText}
		for _, c := range r.Checks {
			if c.Result.Severity != SeverityOK {
				parts = append(parts, c.Name+":"+c.Result.Severity.String())
			}
		}
		text = strings.Join(parts, " ")
	}

	return Payload{
		Text:    text,
		Tooltip: strings.Join(r.Merged.Lines, "\n"),
		Class:   r.Severity().String(),
	}
}
