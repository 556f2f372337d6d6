// Package endpoint describes REST operations as static declarations and
// compiles a table of them into request-builder methods.
//
// A declaration fixes one HTTP verb and one URL template. Templates use
// named ("contacts/{id}") or positional ("contacts/{}") placeholders which are
// filled from the method arguments in declaration order. Values are inserted
// as given; callers supply path-safe values.
package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"
)

// Param is one typed path parameter of an endpoint.
type Param struct {
	Name string
	Type string
}

// Endpoint is a single declared API operation.
type Endpoint struct {
	Resource string
	Name     string
	Method   string
	Path     string
	Params   []Param
}

// FuncName is the generated method name: resource and name joined, in
// exported Go casing ("contact", "find_by_email" -> "ContactFindByEmail").
func (e Endpoint) FuncName() string {
	return exported(e.Resource) + exported(e.Name)
}

// Resolve substitutes args into the path template in declaration order.
// A param fills its named placeholder when the path has one, otherwise the
// next positional "{}". The template is scanned once, so substituted values
// are never rescanned. Missing args leave their placeholder untouched; extra
// args are ignored.
func (e Endpoint) Resolve(args ...string) string {
	named := make(map[string]string, len(e.Params))
	var positional []string
	for i, p := range e.Params {
		if i >= len(args) {
			break
		}
		if p.Name != "" && strings.Contains(e.Path, "{"+p.Name+"}") {
			named[p.Name] = args[i]
			continue
		}
		positional = append(positional, args[i])
	}

	var b strings.Builder
	path := e.Path
	for {
		start := strings.IndexByte(path, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			break
		}
		end += start

		b.WriteString(path[:start])
		name := path[start+1 : end]
		if v, ok := named[name]; ok && name != "" {
			b.WriteString(v)
		} else if name == "" && len(positional) > 0 {
			b.WriteString(positional[0])
			positional = positional[1:]
		} else {
			b.WriteString(path[start : end+1])
		}
		path = path[end+1:]
	}
	b.WriteString(path)
	return b.String()
}

// URL joins baseURL and the resolved template with a single slash.
func (e Endpoint) URL(baseURL string, args ...string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(e.Resolve(args...), "/")
}

// Table is an ordered list of declarations.
type Table []Endpoint

// Lookup finds the endpoint declared for resource and name.
func (t Table) Lookup(resource, name string) (Endpoint, bool) {
	for _, e := range t {
		if e.Resource == resource && e.Name == name {
			return e, true
		}
	}
	return Endpoint{}, false
}

var methods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// Validate checks the table before code is generated from it.
func (t Table) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(t))

	for _, e := range t {
		fn := e.FuncName()
		if e.Resource == "" || e.Name == "" {
			errs = append(errs, fmt.Errorf("endpoint %q: resource and name are required", e.Path))
			continue
		}
		if seen[fn] {
			errs = append(errs, fmt.Errorf("%s: declared more than once", fn))
		}
		seen[fn] = true

		if !methods[e.Method] {
			errs = append(errs, fmt.Errorf("%s: unsupported method %q", fn, e.Method))
		}

		holders := placeholders(e.Path)
		if len(holders) != len(e.Params) {
			errs = append(errs, fmt.Errorf("%s: path %q has %d placeholders, %d params declared",
				fn, e.Path, len(holders), len(e.Params)))
		}

		params := make(map[string]bool, len(e.Params))
		for _, p := range e.Params {
			if p.Name == "" || p.Type == "" {
				errs = append(errs, fmt.Errorf("%s: param name and type are required", fn))
			}
			if params[p.Name] {
				errs = append(errs, fmt.Errorf("%s: param %q declared more than once", fn, p.Name))
			}
			params[p.Name] = true
		}
		for _, h := range holders {
			if h != "" && !params[h] {
				errs = append(errs, fmt.Errorf("%s: placeholder {%s} has no param", fn, h))
			}
		}
	}

	return errors.Join(errs...)
}

// placeholders returns the names inside {...} in order; "" for positional ones.
func placeholders(path string) []string {
	var out []string
	for {
		start := strings.IndexByte(path, '{')
		if start < 0 {
			return out
		}
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			return out
		}
		out = append(out, path[start+1:start+end])
		path = path[start+end+1:]
	}
}

func exported(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
