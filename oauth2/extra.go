package oauth2

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

var numberType = reflect.TypeOf(json.Number(""))

// memberName returns the json member name of f and whether it is omitempty.
// Unexported and "-" fields have no name.
func memberName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return "", false
	}
	return name, strings.Contains(opts, "omitempty")
}

// decodeMembers fills the declared fields of the struct v points to from the JSON
// object in data, one member at a time. A member that is null or does not fit its
// field is left in extra untouched, as is every undeclared member. present lists
// the declared members that were decoded.
func decodeMembers(data []byte, v any) (extra map[string]json.RawMessage, present map[string]struct{}, err error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, nil, err
	}

	rv := reflect.ValueOf(v).Elem()
	rt := rv.Type()
	present = make(map[string]struct{})
	for i := 0; i < rt.NumField(); i++ {
		name, _ := memberName(rt.Field(i))
		raw, ok := all[name]
		if name == "" || !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if bytes.Equal(raw, []byte("null")) {
			continue
		}
		// json.Number accepts quoted numbers, which would not be written back as received
		if rt.Field(i).Type == numberType && len(raw) > 0 && raw[0] == '"' {
			continue
		}
		field := rv.Field(i)
		if err := json.Unmarshal(raw, field.Addr().Interface()); err != nil {
			field.SetZero()
			continue
		}
		present[name] = struct{}{}
		delete(all, name)
	}

	if len(all) == 0 {
		all = nil
	}
	return all, present, nil
}

// encodeMembers writes the struct v and extra as one JSON object. Declared members
// that were received are written even when empty. A zero declared member that was
// not received gives way to the extra member of the same name.
func encodeMembers(v any, extra map[string]json.RawMessage, present map[string]struct{}) ([]byte, error) {
	rv := reflect.ValueOf(v)
	rt := rv.Type()

	out := make(map[string]json.RawMessage, rt.NumField()+len(extra))
	for name, raw := range extra {
		out[name] = raw
	}
	for i := 0; i < rt.NumField(); i++ {
		name, omitEmpty := memberName(rt.Field(i))
		if name == "" {
			continue
		}
		field := rv.Field(i)
		if _, received := present[name]; !received && field.IsZero() {
			if _, kept := extra[name]; kept || omitEmpty {
				continue
			}
		}
		raw, err := json.Marshal(field.Interface())
		if err != nil {
			return nil, err
		}
		out[name] = raw
	}
	return json.Marshal(out)
}
