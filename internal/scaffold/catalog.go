package scaffold

import (
	"path"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/internal/resolve"
)

// fileSpec maps one embedded template to its destination in the project.
type fileSpec struct {
	src  string // template path inside the embedded FS
	dest string // slash-separated path relative to the project root
}

// cssDirs maps a css engine to the style source directory and extension.
var cssFiles = map[string]string{
	"css":    "public/css/style.css",
	"scss":   "public/scss/style.scss",
	"less":   "public/less/style.less",
	"stylus": "public/stylus/style.styl",
}

// catalog returns the ordered file list implied by the resolved options.
// Each entry is an independent flag check; there is no other control flow.
func catalog(o *resolve.ResolvedOptions) []fileSpec {
	lang, ext := "js", "js"
	if o.IsTypeScript {
		lang, ext = "ts", "ts"
	}

	code := func(name string) fileSpec {
		rel := name + "." + ext
		return fileSpec{src: path.Join(lang, rel+".tmpl"), dest: path.Join("src", rel)}
	}

	specs := []fileSpec{
		code("server"),
		code("app"),
		code("routes/index"),
		code("routes/health"),
		{src: "shared/README.md.tmpl", dest: defs.ReadmeMD},
		{src: "shared/gitignore.tmpl", dest: defs.GitignoreFile},
		{src: "shared/env.tmpl", dest: defs.EnvFile},
		{src: "shared/env.tmpl", dest: defs.EnvExampleFile},
	}

	add := func(enabled bool, spec fileSpec) {
		if enabled {
			specs = append(specs, spec)
		}
	}

	add(o.Auth, code("routes/auth"))
	add(o.HasDatabase(), code("routes/users"))

	specs = append(specs, code("middleware/error"))
	add(o.Auth, code("middleware/auth"))
	add(o.Validation, code("middleware/validate"))

	add(o.MongoDB, code("config/mongo"))
	add(o.Postgres, code("config/postgres"))
	add(o.Redis, code("config/redis"))
	add(o.Swagger, code("config/swagger"))
	add(o.ELK, code("config/logger"))

	add(o.IsTypeScript, fileSpec{src: "ts/tsconfig.json.tmpl", dest: defs.TSConfigJSON})

	add(o.Testing, fileSpec{
		src:  path.Join(lang, "tests/app.test."+ext+".tmpl"),
		dest: "tests/app.test." + ext,
	})
	add(o.Testing, fileSpec{src: "shared/jest.config.js.tmpl", dest: "jest.config.js"})

	if !o.NoView && o.View != "" {
		specs = append(specs, fileSpec{
			src:  "shared/views/index." + o.View + ".tmpl",
			dest: "views/index." + o.View,
		})
		if dest, ok := cssFiles[o.CSS]; ok {
			specs = append(specs, fileSpec{
				src:  "shared/styles/style." + path.Ext(dest)[1:] + ".tmpl",
				dest: dest,
			})
		}
	}

	add(o.Docker, fileSpec{src: "shared/Dockerfile.tmpl", dest: defs.Dockerfile})
	add(o.Docker, fileSpec{src: "shared/docker-compose.yml.tmpl", dest: defs.DockerCompose})
	add(o.ELK, fileSpec{src: "shared/logstash.conf.tmpl", dest: "logstash/logstash.conf"})

	return specs
}

// emptyDirs lists directories created even when no catalog file lands in
// them, so the generated project has its conventional skeleton.
func emptyDirs(o *resolve.ResolvedOptions) []string {
	dirs := []string{"src/controllers"}
	if o.HasDatabase() {
		dirs = append(dirs, "src/models")
	}
	return dirs
}
