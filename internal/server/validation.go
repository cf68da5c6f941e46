package server

import "github.com/xeipuuv/gojsonschema"

// interpretSchema bounds the request: a transcript is required, non-empty,
// and capped at a generous spoken-sentence length. Unknown fields are
// rejected so client typos surface as errors instead of empty dispatches.
var interpretSchema = gojsonschema.NewGoLoader(map[string]interface{}{
	"type":                 "object",
	"required":             []interface{}{"transcript"},
	"additionalProperties": false,
	"properties": map[string]interface{}{
		"transcript": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
			"maxLength": 2000,
		},
	},
})

// validateInterpretRequest validates the raw request body against the schema.
// The body must already be well-formed JSON.
func validateInterpretRequest(body []byte) []string {
	result, err := gojsonschema.Validate(interpretSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return []string{err.Error()}
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return errs
}
