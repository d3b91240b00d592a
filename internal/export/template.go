package export

import (
	"bytes"
	"html/template"

	"profilescout-engine/internal/domain"
)

// present filters out empty fields and the fallback sentinel so the PDF
// never renders an empty label.
func present(v string) bool {
	return v != "" && v != domain.NotAvailable
}

var profileTpl = template.Must(template.New("profile").Funcs(template.FuncMap{
	"present": present,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 50px; color: #111; }
  .profile { page-break-after: always; }
  .profile:last-child { page-break-after: auto; }
  h1 { font-size: 24px; text-align: center; margin-bottom: 4px; }
  .headline { font-size: 16px; text-align: center; margin-top: 0; font-weight: normal; }
  h2 { font-size: 18px; margin-bottom: 6px; }
  h3 { font-size: 16px; margin-bottom: 4px; }
  .detail { font-size: 12px; margin: 3px 0; }
  .detail b { font-weight: bold; }
  .section { font-size: 12px; margin: 4px 0 12px; }
</style>
</head>
<body>
{{- range .}}
<div class="profile">
  <h1>{{.FullName}}</h1>
  <p class="headline">{{.Title}}</p>

  <h2>Personal Information</h2>
  {{- if present .Email}}<p class="detail"><b>Email</b>: {{.Email}}</p>{{end}}
  {{- if present .Phone}}<p class="detail"><b>Phone</b>: {{.Phone}}</p>{{end}}
  {{- if present .Location}}<p class="detail"><b>Location</b>: {{.Location}}</p>{{end}}
  {{- if present .ContactDetails}}<p class="detail"><b>Contact Details</b>: {{.ContactDetails}}</p>{{end}}

  {{- if present .Summary}}
  <h3>Professional Summary</h3>
  <p class="section">{{.Summary}}</p>
  {{- end}}

  {{- if present .Experience}}
  <h3>Work Experience</h3>
  <p class="section">{{.Experience}}</p>
  {{- end}}

  {{- if present .Skills}}
  <h3>Skills</h3>
  <p class="section">{{.Skills}}</p>
  {{- end}}

  {{- if present .Education}}
  <h3>Education</h3>
  <p class="section">{{.Education}}</p>
  {{- end}}

  <h2>Additional Information</h2>
  {{- if present .ProfileURL}}<p class="detail"><b>LinkedIn</b>: <a href="{{.ProfileURL}}">{{.ProfileURL}}</a></p>{{end}}
  {{- if present .Company}}<p class="detail"><b>Current Company</b>: {{.Company}}</p>{{end}}
  {{- if present .Industry}}<p class="detail"><b>Industry</b>: {{.Industry}}</p>{{end}}
  {{- if .YearsOfExperience}}<p class="detail"><b>Years of Experience</b>: {{.YearsOfExperience}}</p>{{end}}
  {{- if present .Connections}}<p class="detail"><b>Connections</b>: {{.Connections}}</p>{{end}}
</div>
{{- end}}
</body>
</html>
`))

// ProfileHTML renders one page per profile, sections in fixed order.
func ProfileHTML(profiles []domain.NormalizedProfile) (string, error) {
	var buf bytes.Buffer
	if err := profileTpl.Execute(&buf, profiles); err != nil {
		return "", err
	}
	return buf.String(), nil
}
