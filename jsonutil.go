package seededcrypto

import "encoding/json"

// parseJSONObject parses doc as a JSON object. An empty string is
// treated as "{}" so that all-default options can be requested without
// writing out an empty object literal.
func parseJSONObject(doc string) (map[string]interface{}, error) {
	if doc == "" {
		doc = "{}"
	}
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &obj); err != nil {
		return nil, &JSONParsingError{Err: err}
	}
	return obj, nil
}

// jsonOptionalString returns the string at field, or def if the field
// is absent. It fails with ErrInvalidDerivationOptionValueType if the
// field is present but not a JSON string.
func jsonOptionalString(obj map[string]interface{}, field, def string) (string, error) {
	v, ok := obj[field]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &DerivationOptionError{Field: field, Reason: "must be a string"}
	}
	return s, nil
}

// jsonOptionalPositiveInt returns the integer at field, or def if the
// field is absent. It fails with ErrInvalidDerivationOptionValueType if
// the field is present but not a positive integer.
func jsonOptionalPositiveInt(obj map[string]interface{}, field string, def int) (int, error) {
	v, ok := obj[field]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok || f != float64(int64(f)) || f <= 0 {
		return 0, &DerivationOptionError{Field: field, Reason: "must be a positive integer"}
	}
	return int(f), nil
}

// validateJSON reports whether doc is well-formed JSON of any shape
// (object, array, string, number, bool, or null), wrapping a failure in
// a JSONParsingError.
func validateJSON(doc string) error {
	var v interface{}
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		return &JSONParsingError{Err: err}
	}
	return nil
}

// marshalJSON encodes v as compact JSON, wrapping any encoding failure
// (which should not occur for our wire types) in a JSONParsingError.
func marshalJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", &JSONParsingError{Err: err}
	}
	return string(b), nil
}

// unmarshalJSON decodes doc into v, wrapping any decode failure in a
// JSONParsingError.
func unmarshalJSON(doc string, v interface{}) error {
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return &JSONParsingError{Err: err}
	}
	return nil
}
