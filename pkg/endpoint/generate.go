package endpoint

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// GenerateOptions controls the Go source produced by Generate.
type GenerateOptions struct {
	// Generator is named in the "Code generated" header.
	Generator string
	Package   string
	// Type is the client type receiving the methods, Receiver its variable.
	Type     string
	Receiver string
	// Returns is the result type of every generated method.
	Returns string
	// Build is the client method each generated method delegates to. It must
	// have the signature func(endpoint.Endpoint, ...string) Returns.
	Build string
	// Imports are full import specs, e.g. `httpclient "example.com/pkg/http"`.
	Imports []string
	// Filename is used by the import fixer to resolve the package directory.
	Filename string
}

// endpointPkg is the import path of this package, which generated code
// references for its Endpoint declarations.
var endpointPkg = reflect.TypeOf(Endpoint{}).PkgPath()

var genTemplate = template.Must(template.New("gen").Funcs(template.FuncMap{
	"lowerFirst":  lowerFirst,
	"signature":   signature,
	"args":        args,
	"methodConst": methodConst,
}).Parse(`// Code generated by {{.Opts.Generator}}. DO NOT EDIT.

package {{.Opts.Package}}

import (
	"net/http"

	{{printf "%q" .EndpointPkg}}
{{- range .Opts.Imports}}
	{{.}}
{{- end}}
)
{{range .Table}}
var {{lowerFirst .FuncName}} = endpoint.Endpoint{
	Resource: {{printf "%q" .Resource}},
	Name:     {{printf "%q" .Name}},
	Method:   {{methodConst .Method}},
	Path:     {{printf "%q" .Path}},
{{- if .Params}}
	Params: []endpoint.Param{
{{- range .Params}}
		{Name: {{printf "%q" .Name}}, Type: {{printf "%q" .Type}}},
{{- end}}
	},
{{- end}}
}

// {{.FuncName}} builds a {{.Method}} {{.Path}} request.
func ({{$.Opts.Receiver}} *{{$.Opts.Type}}) {{.FuncName}}({{signature .Params}}) {{$.Opts.Returns}} {
	return {{$.Opts.Receiver}}.{{$.Opts.Build}}({{lowerFirst .FuncName}}{{args .Params}})
}
{{end}}`))

// Generate writes Go source declaring one method per endpoint in table.
// The table is validated first.
func Generate(w io.Writer, opts GenerateOptions, table Table) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("invalid endpoint table: %w", err)
	}
	if opts.Generator == "" {
		opts.Generator = "acgen"
	}
	if opts.Receiver == "" && opts.Type != "" {
		opts.Receiver = strings.ToLower(opts.Type[:1])
	}
	if opts.Package == "" || opts.Type == "" || opts.Returns == "" || opts.Build == "" {
		return fmt.Errorf("package, type, returns and build are required")
	}

	var buf bytes.Buffer
	data := struct {
		Opts        GenerateOptions
		Table       Table
		EndpointPkg string
	}{opts, table, endpointPkg}
	if err := genTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	filename := opts.Filename
	if filename == "" {
		filename = "endpoints_gen.go"
	}
	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("failed to format generated source: %w\n%s", err, buf.String())
	}

	_, err = w.Write(src)
	return err
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func signature(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}

// args renders the call arguments. Non-string params go through fmt.Sprint.
func args(params []Param) string {
	var b strings.Builder
	for _, p := range params {
		b.WriteString(", ")
		if p.Type == "string" {
			b.WriteString(p.Name)
			continue
		}
		b.WriteString("fmt.Sprint(" + p.Name + ")")
	}
	return b.String()
}

func methodConst(method string) string {
	switch method {
	case "GET":
		return "http.MethodGet"
	case "HEAD":
		return "http.MethodHead"
	case "POST":
		return "http.MethodPost"
	case "PUT":
		return "http.MethodPut"
	case "PATCH":
		return "http.MethodPatch"
	case "DELETE":
		return "http.MethodDelete"
	case "OPTIONS":
		return "http.MethodOptions"
	}
	return fmt.Sprintf("%q", method)
}
