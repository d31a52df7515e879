// Package inputval validates user-submitted form values before they are
// sent anywhere.
//
// Struct-tag validation covers the common required/max/oneof rules:
//
//	type createWorkshopInput struct {
//		Title  string `validate:"required,max=200" label:"Workshop title"`
//		Status string `validate:"oneof=upcoming open completed cancelled" label:"Status"`
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//		reRender(result.First())
//		return
//	}
//
// Checks run in field declaration order and Result.First returns the first
// failing field's message, so handlers can fast-fail on exactly one message
// rather than aggregating the whole form.
package inputval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Result collects validation failures in field order.
type Result struct {
	errs []string
}

// HasErrors reports whether any check failed.
func (r Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first failure message, or "" when validation passed.
func (r Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0]
}

// All returns every failure message in field order.
func (r Result) All() []string { return r.errs }

// Validate runs the `validate` tag rules on every exported string field of
// the given struct, in declaration order. The `label` tag supplies the
// human-readable field name used in messages.
func Validate(v any) Result {
	var res Result
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return res
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		rules := field.Tag.Get("validate")
		if rules == "" || !field.IsExported() || field.Type.Kind() != reflect.String {
			continue
		}
		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}
		value := strings.TrimSpace(rv.Field(i).String())
		if msg := check(value, rules, label); msg != "" {
			res.errs = append(res.errs, msg)
		}
	}
	return res
}

func check(value, rules, label string) string {
	for _, rule := range strings.Split(rules, ",") {
		name, arg, _ := strings.Cut(strings.TrimSpace(rule), "=")
		switch name {
		case "required":
			if value == "" {
				return fmt.Sprintf("%s is required.", label)
			}
		case "max":
			n, err := strconv.Atoi(arg)
			if err == nil && len(value) > n {
				return fmt.Sprintf("%s must be at most %d characters.", label, n)
			}
		case "oneof":
			if value == "" {
				continue
			}
			ok := false
			for _, allowed := range strings.Fields(arg) {
				if value == allowed {
					ok = true
					break
				}
			}
			if !ok {
				return fmt.Sprintf("%s is invalid.", label)
			}
		}
	}
	return ""
}
