package applicationmeta

import (
	"fmt"
	"strings"

	"careers-backend/lib/apperrors"
	dbmodels "careers-backend/models/db"

	"github.com/xeipuuv/gojsonschema"
)

// The applicant-entered document is versioned: schema_version selects the
// schema the rest of the payload is validated against, so older stored
// records stay readable when the form changes.

const CurrentVersion = 1

const schemaV1 = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"schema_version": {"type": "integer"},
		"full_name": {"type": "string", "minLength": 1},
		"email": {"type": "string", "format": "email"},
		"phone": {"type": "string"},
		"availability": {"type": "string"},
		"certifications": {"type": "array", "items": {"type": "string"}},
		"has_vehicle": {"type": "boolean"},
		"experience_years": {"type": "number", "minimum": 0},
		"referral": {"type": "string"}
	},
	"required": ["full_name", "email"],
	"additionalProperties": true
}`

var schemas = map[int]*gojsonschema.Schema{}

func init() {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaV1))
	if err != nil {
		panic(err)
	}
	schemas[1] = compiled
}

// Validate checks the applicant meta document against its declared schema
// version and stamps the version when absent.
func Validate(meta dbmodels.ApplicationMeta) error {
	if meta == nil {
		return apperrors.New(apperrors.KindMissingData, "application details are required")
	}
	version := CurrentVersion
	if raw, ok := meta["schema_version"]; ok {
		num, ok := raw.(float64)
		if !ok {
			if v, isInt := raw.(int); isInt {
				num = float64(v)
			} else {
				return apperrors.New(apperrors.KindMissingData, "schema_version must be a number")
			}
		}
		version = int(num)
	}
	schema, ok := schemas[version]
	if !ok {
		return apperrors.New(apperrors.KindMissingData, fmt.Sprintf("unknown meta schema version %d", version))
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(map[string]interface{}(meta)))
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindMissingData, "application details rejected")
	}
	if !result.Valid() {
		descriptions := make([]string, 0, len(result.Errors()))
		for _, resErr := range result.Errors() {
			descriptions = append(descriptions, resErr.String())
		}
		return apperrors.New(apperrors.KindMissingData, "application details rejected: "+strings.Join(descriptions, "; "))
	}
	meta["schema_version"] = version
	return nil
}
