// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pagestyle extracts the ambient page background from a
// stylesheet, for hosts that only have the page CSS text.
package pagestyle

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// BackgroundVar is the custom property a page uses to publish its
// background color.
const BackgroundVar = "--bg"

// Sheet holds the declarations of the rules that apply to the page
// root and body, in source order.
type Sheet struct {

	// Root has the declarations of :root and html rules.
	Root []*css.Declaration

	// Body has the declarations of body rules.
	Body []*css.Declaration
}

// Parse parses the given stylesheet text.
func Parse(style string) (*Sheet, error) {
	ss, err := parser.Parse(style)
	if err != nil {
		return nil, err
	}
	sh := &Sheet{}
	for _, rule := range ss.Rules {
		if rule.Kind == css.AtRule {
			continue
		}
		for _, sel := range rule.Selectors {
			switch strings.TrimSpace(sel) {
			case ":root", "html":
				sh.Root = append(sh.Root, rule.Declarations...)
			case "body":
				sh.Body = append(sh.Body, rule.Declarations...)
			}
		}
	}
	return sh, nil
}

// Var returns the last value of the given custom property on the
// page root, or "".
func (sh *Sheet) Var(name string) string {
	return lookup(sh.Root, name)
}

// Background returns the page background: the [BackgroundVar]
// custom property if set, and otherwise the body or root
// background color. var() references are resolved against the
// root custom properties. It returns "" if there is none.
func (sh *Sheet) Background() string {
	if v := sh.resolve(sh.Var(BackgroundVar)); v != "" {
		return v
	}
	for _, decls := range [][]*css.Declaration{sh.Body, sh.Root} {
		for _, prop := range []string{"background-color", "background"} {
			if v := sh.resolve(lookup(decls, prop)); v != "" {
				return v
			}
		}
	}
	return ""
}

// resolve replaces a var(--name) reference by its value, following
// at most a few levels of indirection.
func (sh *Sheet) resolve(v string) string {
	for range 4 {
		name, ok := varRef(v)
		if !ok {
			return v
		}
		v = sh.Var(name)
	}
	return ""
}

// varRef returns the property name of a var(--name) or
// var(--name, fallback) value.
func varRef(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "var(") || !strings.HasSuffix(v, ")") {
		return "", false
	}
	name, _, _ := strings.Cut(v[4:len(v)-1], ",")
	return strings.TrimSpace(name), true
}

func lookup(decls []*css.Declaration, prop string) string {
	val := ""
	for _, d := range decls {
		if strings.TrimSpace(d.Property) == prop {
			val = strings.TrimSpace(d.Value)
		}
	}
	return val
}

// Background parses the stylesheet and returns its page background.
// A stylesheet that fails to parse has no background.
func Background(style string) string {
	sh, err := Parse(style)
	if err != nil {
		return ""
	}
	return sh.Background()
}
