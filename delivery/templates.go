package delivery

import (
	"html/template"
	"path/filepath"
)

// Declare global variables for all templates.
var (
	registrationTemplate *template.Template
	loginTemplate        *template.Template
	recoveryTemplate     *template.Template
	dashboardTemplate    *template.Template
	exploreTemplate      *template.Template
	helpTemplate         *template.Template
	formCTemplate        *template.Template
	formCStatusTemplate  *template.Template
	errorTemplate        *template.Template
)

// ParseAllTemplates pre-parses all HTML templates at startup.
func ParseAllTemplates(dir string) {
	parse := func(name string) *template.Template {
		return template.Must(template.ParseFiles(filepath.Join(dir, name)))
	}

	registrationTemplate = parse("registration.html")
	loginTemplate = parse("login.html")
	recoveryTemplate = parse("recovery.html")
	dashboardTemplate = parse("dashboard.html")
	exploreTemplate = parse("explore.html")
	helpTemplate = parse("help.html")
	formCTemplate = parse("formc.html")
	formCStatusTemplate = parse("formc_status.html")
	errorTemplate = parse("error.html")
}
