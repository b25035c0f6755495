package server

import (
	"html/template"

	"premiere/internal/dashboard"
	"premiere/internal/model"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"isBranch": func(b dashboard.Branch, name string) bool {
			return b.String() == name
		},
		"numericColumn": func(c model.Column) bool {
			return c.Kind.Numeric()
		},
	}
}
