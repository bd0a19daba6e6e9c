// Package install computes the dependency lists implied by a resolved
// configuration and shells out to the chosen package manager to install
// them.
package install

import "github.com/exgen-dev/exgen/internal/resolve"

// Dependency is one package pinned to a version range. Versions are
// hard-coded; exgen performs no version resolution.
type Dependency struct {
	Name    string
	Version string
}

// DependencySet holds the two disjoint dependency classes of a project.
type DependencySet struct {
	Runtime []Dependency
	Dev     []Dependency
}

// Dependencies computes both dependency lists purely from the resolved
// feature flags. The computation is deterministic and total: every flag
// maps to zero or more fixed packages, appended in a fixed order.
func Dependencies(opts *resolve.ResolvedOptions) DependencySet {
	var set DependencySet

	runtime := func(name, version string) {
		set.Runtime = append(set.Runtime, Dependency{Name: name, Version: version})
	}
	dev := func(name, version string) {
		set.Dev = append(set.Dev, Dependency{Name: name, Version: version})
	}

	runtime("express", "^4.18.2")
	runtime("dotenv", "^16.3.1")
	runtime("morgan", "^1.10.0")

	if !opts.NoView {
		switch opts.View {
		case "ejs":
			runtime("ejs", "^3.1.9")
		case "pug":
			runtime("pug", "^3.0.2")
		case "hbs":
			runtime("hbs", "^4.2.0")
		}
	}

	if opts.MongoDB {
		runtime("mongoose", "^8.0.3")
	}
	if opts.Postgres {
		runtime("pg", "^8.11.3")
	}
	if opts.Redis {
		runtime("ioredis", "^5.3.2")
	}

	if opts.Auth {
		runtime("jsonwebtoken", "^9.0.2")
		runtime("bcryptjs", "^2.4.3")
	}
	if opts.CORS {
		runtime("cors", "^2.8.5")
	}
	if opts.Helmet {
		runtime("helmet", "^7.1.0")
	}
	if opts.RateLimit {
		runtime("express-rate-limit", "^7.1.5")
	}
	if opts.Validation {
		runtime("joi", "^17.11.0")
	}
	if opts.Swagger {
		runtime("swagger-ui-express", "^5.0.0")
		runtime("swagger-jsdoc", "^6.2.8")
	}
	if opts.ELK {
		runtime("winston", "^3.11.0")
		runtime("winston-elasticsearch", "^0.17.4")
	}

	dev("nodemon", "^3.0.2")

	if !opts.NoView {
		switch opts.CSS {
		case "scss":
			dev("sass", "^1.69.5")
		case "less":
			dev("less", "^4.2.0")
		case "stylus":
			dev("stylus", "^0.62.0")
		}
	}

	if opts.IsTypeScript {
		dev("typescript", "^5.3.3")
		dev("ts-node", "^10.9.2")
		dev("@types/node", "^20.10.5")
		dev("@types/express", "^4.17.21")
		dev("@types/morgan", "^1.9.9")
		if opts.Postgres {
			dev("@types/pg", "^8.10.9")
		}
		if opts.Auth {
			dev("@types/jsonwebtoken", "^9.0.5")
			dev("@types/bcryptjs", "^2.4.6")
		}
		if opts.CORS {
			dev("@types/cors", "^2.8.17")
		}
		if opts.Swagger {
			dev("@types/swagger-ui-express", "^4.1.6")
			dev("@types/swagger-jsdoc", "^6.0.4")
		}
	}

	if opts.Testing {
		dev("jest", "^29.7.0")
		dev("supertest", "^6.3.3")
		if opts.IsTypeScript {
			dev("ts-jest", "^29.1.1")
			dev("@types/jest", "^29.5.11")
			dev("@types/supertest", "^6.0.2")
		}
	}

	return set
}
