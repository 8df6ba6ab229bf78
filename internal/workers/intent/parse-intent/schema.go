// internal/workers/intent/parse-intent/schema.go
package parseintent

// intentSchema constrains the shape of an incoming intent payload.
// Purpose values outside the recognized set are allowed here; they
// degrade downstream rather than fail validation.
var intentSchema = map[string]interface{}{
	"type":                 "object",
	"required":             []interface{}{"purpose"},
	"additionalProperties": false,
	"properties": map[string]interface{}{
		"purpose": map[string]interface{}{"type": "string", "minLength": 1},
		"sector":  map[string]interface{}{"type": "string"},
		"region":  map[string]interface{}{"type": "string"},
		"preferences": map[string]interface{}{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]interface{}{
				"jobSearch": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]interface{}{
						"companySize": map[string]interface{}{"type": "string"},
					},
				},
				"investor": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]interface{}{
						"investmentStage":  map[string]interface{}{"type": "string"},
						"revenueThreshold": map[string]interface{}{"type": "string"},
					},
				},
				"sales": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]interface{}{
						"buyerType":       map[string]interface{}{"type": "string"},
						"productCategory": map[string]interface{}{"type": "string"},
					},
				},
				"partnership": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]interface{}{
						"targetSize":   map[string]interface{}{"type": "string"},
						"allianceType": map[string]interface{}{"type": "string"},
					},
				},
				"marketResearch": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]interface{}{
						"nicheDescription": map[string]interface{}{"type": "string"},
						"ownRevenue":       map[string]interface{}{"type": "string"},
					},
				},
			},
		},
	},
}
