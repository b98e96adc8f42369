package semantic_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-semfield/pkg/registry"
	"github.com/goliatone/go-semfield/pkg/semantic"
	"github.com/goliatone/go-semfield/pkg/testsupport"
)

func TestNewSchemaPopulatesRecordMetadata(t *testing.T) {
	reg := testsupport.FixtureRegistry()

	schema, err := semantic.NewSchema(reg, "orcid")
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}

	if schema.Title != "Open Researcher and Contributor" {
		t.Fatalf("unexpected title: %q", schema.Title)
	}
	if schema.Pattern != `\d{4}-\d{4}-\d{4}-\d{3}(\d|X)` {
		t.Fatalf("unexpected pattern: %q", schema.Pattern)
	}
	if schema.Example != "0000-0003-4423-4370" {
		t.Fatalf("unexpected example: %v", schema.Example)
	}
	if !strings.Contains(schema.Description, "https://bioregistry.io/orcid") {
		t.Fatalf("expected description to link the registry entry, got %q", schema.Description)
	}
	if !strings.Contains(schema.Description, "Open Researcher and Contributor") {
		t.Fatalf("expected description to name the record, got %q", schema.Description)
	}
}

func TestNewSchemaExtensionBlock(t *testing.T) {
	reg := testsupport.FixtureRegistry()

	schema, err := semantic.NewSchema(reg, "ORCID")
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}

	block, ok := schema.Extensions[semantic.ExtensionKey].(map[string]any)
	if !ok {
		t.Fatalf("expected bioregistry extension block, got %#v", schema.Extensions)
	}
	if block["prefix"] != "orcid" {
		t.Fatalf("expected canonical prefix in extension, got %v", block["prefix"])
	}
	wantMappings := map[string]string{"wikidata": "P496", "miriam": "orcid"}
	if diff := cmp.Diff(wantMappings, block["mappings"]); diff != "" {
		t.Fatalf("unexpected mappings (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0000-0003-4423-4370"}, block["examples"]); diff != "" {
		t.Fatalf("unexpected examples (-want +got):\n%s", diff)
	}
}

func TestNewSchemaCallerOverridesWin(t *testing.T) {
	reg := testsupport.FixtureRegistry()

	schema, err := semantic.NewSchema(reg, "orcid",
		semantic.WithTitle("Researcher ID"),
		semantic.WithDescription("plain text"),
		semantic.WithPattern(`\d+`),
		semantic.WithExample("123"),
		semantic.WithExtension("x-owner", "identity-team"),
	)
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}

	if schema.Title != "Researcher ID" {
		t.Fatalf("expected caller title to win, got %q", schema.Title)
	}
	if schema.Description != "plain text" {
		t.Fatalf("expected caller description to win, got %q", schema.Description)
	}
	if schema.Pattern != `\d+` {
		t.Fatalf("expected caller pattern to win, got %q", schema.Pattern)
	}
	if schema.Example != "123" {
		t.Fatalf("expected caller example to win, got %v", schema.Example)
	}
	if schema.Extensions["x-owner"] != "identity-team" {
		t.Fatalf("expected caller extension to be kept, got %#v", schema.Extensions)
	}
	// The bioregistry block is additive and survives every override.
	if _, ok := schema.Extensions[semantic.ExtensionKey]; !ok {
		t.Fatal("expected bioregistry extension to survive overrides")
	}
}

func TestNewSchemaExtensionKeyCannotBeDisplaced(t *testing.T) {
	reg := testsupport.FixtureRegistry()

	schema, err := semantic.NewSchema(reg, "orcid",
		semantic.WithExtension(semantic.ExtensionKey, "bogus"),
	)
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}
	block, ok := schema.Extensions[semantic.ExtensionKey].(map[string]any)
	if !ok || block["prefix"] != "orcid" {
		t.Fatalf("expected bioregistry block to win over caller value, got %#v", schema.Extensions[semantic.ExtensionKey])
	}
}

func TestNewSchemaSparseRecord(t *testing.T) {
	reg := testsupport.FixtureRegistry()

	schema, err := semantic.NewSchema(reg, "sparse")
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}
	if schema.Pattern != "" {
		t.Fatalf("expected no pattern, got %q", schema.Pattern)
	}
	if schema.Example != nil {
		t.Fatalf("expected no example, got %v", schema.Example)
	}
	block := schema.Extensions[semantic.ExtensionKey].(map[string]any)
	if _, ok := block["examples"]; ok {
		t.Fatal("expected no examples entry for example-free record")
	}
}

func TestNewSchemaUnregisteredPrefix(t *testing.T) {
	reg := testsupport.FixtureRegistry()

	_, err := semantic.NewSchema(reg, "nope")
	if err == nil {
		t.Fatal("expected error for unregistered prefix")
	}
	if !registry.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if !strings.Contains(err.Error(), `"nope"`) {
		t.Fatalf("expected error to reference the prefix, got %q", err.Error())
	}
}

func TestMustNewSchemaPanicsOnBadPrefix(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unregistered prefix")
		}
	}()
	semantic.MustNewSchema(testsupport.FixtureRegistry(), "nope")
}

func TestDescribeSanitizesRecordText(t *testing.T) {
	rec := registry.Record{
		Prefix:      "evil",
		Name:        "Evil <script>",
		Description: `<p>fine</p><script>alert(1)</script><a href="javascript:x()">link</a>`,
	}

	got := semantic.Describe(rec)
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected script tags to be stripped, got %q", got)
	}
	if strings.Contains(got, "javascript:") {
		t.Fatalf("expected javascript URLs to be stripped, got %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected record name to be escaped, got %q", got)
	}
	if !strings.Contains(got, "<p>fine</p>") {
		t.Fatalf("expected benign markup to survive, got %q", got)
	}
}
