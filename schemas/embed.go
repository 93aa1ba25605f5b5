// Package schemas holds the JSON Schema documents for catalog, response and
// match files.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory
//
//go:embed *.schema.json
var FS embed.FS

// Schema file names
const (
	Common        = "common.schema.json"
	Career        = "career.schema.json"
	CareerCatalog = "career_catalog.schema.json"
	Responses     = "responses.schema.json"
	CareerMatches = "career_matches.schema.json"
)

// All lists the schema files in dependency order
var All = []string{Common, Career, CareerCatalog, Responses, CareerMatches}
