package scholar

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-semfield/pkg/semantic"
)

// buildDocument assembles the OpenAPI document for the component using the
// semantic annotators, so the served schema carries the same bioregistry
// metadata as the validation layer.
func (a *api) buildDocument() (*openapi3.T, error) {
	param, err := semantic.NewPathParameter(a.opts.Registry, "orcid", "orcid")
	if err != nil {
		return nil, fmt.Errorf("scholar: build orcid parameter: %w", err)
	}

	errorSchema := openapi3.NewObjectSchema()
	errorSchema.Properties["error"] = openapi3.NewStringSchema().NewRef()
	errorSchema.Properties["pattern"] = openapi3.NewStringSchema().NewRef()
	errorSchema.Required = []string{"error"}

	op := openapi3.NewOperation()
	op.OperationID = "getScholarByORCID"
	op.Summary = "Get cross-references for a researcher"
	op.Description = "Looks up the researcher with the given ORCID in Wikidata and returns their identifiers on other services."
	op.Tags = []string{"scholar"}
	op.Parameters = openapi3.Parameters{&openapi3.ParameterRef{Value: param}}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("The researcher and their cross-references.").
				WithJSONSchemaRef(a.model.Schema().NewRef()),
		}),
		openapi3.WithStatus(404, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("No researcher found for the given ORCID.").
				WithJSONSchemaRef(errorSchema.NewRef()),
		}),
		openapi3.WithStatus(422, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("The identifier does not match the orcid pattern.").
				WithJSONSchemaRef(errorSchema.NewRef()),
		}),
		openapi3.WithStatus(502, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("The upstream query service failed or returned a malformed row.").
				WithJSONSchemaRef(errorSchema.NewRef()),
		}),
	)

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Semantic Scholar Demo",
			Version:     "0.1.0",
			Description: "Demonstration of registry-annotated fields: one endpoint resolving researcher cross-references from Wikidata.",
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath(a.opts.RoutePath, &openapi3.PathItem{Get: op}),
		),
	}
	return doc, nil
}
