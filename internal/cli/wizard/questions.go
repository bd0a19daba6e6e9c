package wizard

import "path/filepath"

// DefaultQuestions returns the standard question set for project creation.
// The order is name, language, view, stylesheet, database, extra features,
// and finally the package manager.
func DefaultQuestions(workDir string) []Question {
	defaultProjectName := filepath.Base(workDir)
	if defaultProjectName == "." || defaultProjectName == "/" {
		defaultProjectName = "my-app"
	}

	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Used as the directory and package name.",
			Default:     defaultProjectName,
			Required:    true,
		},
		{
			ID:    "language",
			Type:  QuestionTypeSelect,
			Title: "Language",
			Options: []Option{
				{Label: "JavaScript", Value: "javascript"},
				{Label: "TypeScript", Value: "typescript", Desc: "strict tsconfig, ts-node dev loop"},
			},
			Default:  "javascript",
			Required: true,
		},
		{
			ID:          "view",
			Type:        QuestionTypeSelect,
			Title:       "View engine",
			Description: "Pick none for a JSON-only API.",
			Options: []Option{
				{Label: "None", Value: "none", Desc: "API only"},
				{Label: "EJS", Value: "ejs"},
				{Label: "Pug", Value: "pug"},
				{Label: "Handlebars", Value: "hbs"},
			},
			Default:  "none",
			Required: true,
		},
		{
			ID:    "css",
			Type:  QuestionTypeSelect,
			Title: "Stylesheet engine",
			Options: []Option{
				{Label: "Plain CSS", Value: "css"},
				{Label: "Sass (SCSS)", Value: "scss"},
				{Label: "Less", Value: "less"},
				{Label: "Stylus", Value: "stylus"},
			},
			Default:  "css",
			Required: true,
			Condition: func(r *WizardResult) bool {
				return r.View != "" && r.View != "none"
			},
		},
		{
			ID:          "databases",
			Type:        QuestionTypeMultiSelect,
			Title:       "Databases",
			Description: "Space toggles, Enter confirms. Leave empty for none.",
			Options: []Option{
				{Label: "MongoDB (mongoose)", Value: "mongodb"},
				{Label: "PostgreSQL (pg pool)", Value: "postgres"},
				{Label: "Redis (ioredis)", Value: "redis"},
			},
		},
		{
			ID:          "features",
			Type:        QuestionTypeMultiSelect,
			Title:       "Extra features",
			Description: "Space toggles, Enter confirms.",
			Options: []Option{
				{Label: "JWT authentication", Value: "auth"},
				{Label: "CORS", Value: "cors"},
				{Label: "Helmet security headers", Value: "helmet"},
				{Label: "Rate limiting", Value: "rate-limit"},
				{Label: "Joi request validation", Value: "validation"},
				{Label: "Swagger docs", Value: "swagger"},
				{Label: "Jest testing", Value: "testing"},
				{Label: "Docker", Value: "docker"},
				{Label: "ELK logging", Value: "elk"},
			},
		},
		{
			ID:          "preset",
			Type:        QuestionTypeSelect,
			Title:       "Preset shortcut",
			Description: "Layers a built-in bundle under your answers.",
			Options: []Option{
				{Label: "None", Value: "none"},
				{Label: "light", Value: "light", Desc: "minimal TypeScript app"},
				{Label: "api", Value: "api", Desc: "JSON API with security middleware"},
				{Label: "fullstack", Value: "fullstack", Desc: "server-rendered app with MongoDB"},
				{Label: "microservice", Value: "microservice", Desc: "containerized service"},
				{Label: "startup", Value: "startup", Desc: "everything a small product needs"},
				{Label: "min", Value: "min", Desc: "bare TypeScript API"},
				{Label: "prod", Value: "prod", Desc: "production hardening"},
				{Label: "all", Value: "all", Desc: "every feature on"},
			},
			Default:  "none",
			Required: true,
		},
		{
			ID:          "package_manager",
			Type:        QuestionTypeSelect,
			Title:       "Package manager",
			Description: "Auto probes lockfiles and installed managers.",
			Options: []Option{
				{Label: "Auto-detect", Value: "auto"},
				{Label: "npm", Value: "npm"},
				{Label: "yarn", Value: "yarn"},
				{Label: "pnpm", Value: "pnpm"},
				{Label: "bun", Value: "bun"},
			},
			Default:  "auto",
			Required: true,
		},
	}
}
