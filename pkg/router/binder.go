package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// bindRequest fills the request struct from the inbound request. GET and
// DELETE requests bind query parameters, POST and PATCH requests decode the
// JSON body. Path parameters are bound afterwards in both cases and take
// precedence, using the same json tag names.
func bindRequest(r *http.Request, method string, req any) error {
	switch method {
	case http.MethodPost, http.MethodPatch:
		if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
			return err
		}

	case http.MethodGet, http.MethodDelete:
		if err := bindValues(req, func(name string) string {
			return r.URL.Query().Get(name)
		}); err != nil {
			return err
		}

	default:
		return fmt.Errorf("not supported method %s", method)
	}

	return bindValues(req, func(name string) string {
		return r.PathValue(name)
	})
}

func bindValues(req any, lookup func(name string) string) error {
	v := reflect.ValueOf(req).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		if !v.Field(i).CanSet() {
			continue
		}

		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		raw := lookup(name)
		if raw == "" {
			continue
		}

		if err := setField(v.Field(i), raw); err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
	}

	return nil
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Int, reflect.Int64:
		val, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(val)

	case reflect.Float64:
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		field.SetFloat(val)

	case reflect.Bool:
		val, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(val)
	}

	return nil
}
