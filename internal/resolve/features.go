package resolve

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// engineTitle humanizes an engine identifier. Acronym-style names keep
// their canonical casing; everything else is title-cased.
var engineNames = map[string]string{
	"ejs":  "EJS",
	"hbs":  "Handlebars",
	"css":  "CSS",
	"scss": "SCSS",
}

var titleCaser = cases.Title(language.English)

func engineTitle(engine string) string {
	if name, ok := engineNames[engine]; ok {
		return name
	}
	return titleCaser.String(engine)
}

// featureLabels derives the ordered list of human-readable enabled-feature
// labels. The enumeration order is fixed: language, view engine, CSS
// engine, databases, auth/security, validation/docs, testing/ops, git.
// The list is display-only; no downstream decision reads it.
func featureLabels(o *ResolvedOptions) []string {
	var features []string

	if o.IsTypeScript {
		features = append(features, "TypeScript")
	} else {
		features = append(features, "JavaScript")
	}

	if !o.NoView && o.View != "" {
		features = append(features, engineTitle(o.View)+" View Engine")
	}
	if !o.NoView && o.CSS != "" {
		features = append(features, engineTitle(o.CSS)+" Stylesheets")
	}

	if o.MongoDB {
		features = append(features, "MongoDB")
	}
	if o.Postgres {
		features = append(features, "PostgreSQL")
	}
	if o.Redis {
		features = append(features, "Redis")
	}

	if o.Auth {
		features = append(features, "JWT Authentication")
	}
	if o.CORS {
		features = append(features, "CORS")
	}
	if o.Helmet {
		features = append(features, "Helmet")
	}
	if o.RateLimit {
		features = append(features, "Rate Limiting")
	}

	if o.Validation {
		features = append(features, "Joi Validation")
	}
	if o.Swagger {
		features = append(features, "Swagger Docs")
	}

	if o.Testing {
		features = append(features, "Jest Testing")
	}
	if o.ELK {
		features = append(features, "ELK Logging")
	}
	if o.Docker {
		features = append(features, "Docker")
	}

	if !o.SkipGit {
		features = append(features, "Git Repository")
	}

	return features
}
