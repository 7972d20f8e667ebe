package parser

import (
	"errors"
	"testing"

	"github.com/seitarof/gen-deepcopy/internal/config"
)

const (
	basicPkg   = "github.com/seitarof/gen-deepcopy/testdata/deepcopybasic"
	sharedPkg  = "github.com/seitarof/gen-deepcopy/testdata/deepcopybasic/shared"
	invalidPkg  = "github.com/seitarof/gen-deepcopy/testdata/deepcopyinvalid"
	unbackedPkg = "github.com/seitarof/gen-deepcopy/testdata/deepcopyunbacked"
)

func TestDiscover_MarkedRecords(t *testing.T) {
	p := New()

	d, err := p.Discover(basicPkg)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(d.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(d.Records))
	}
	if d.Records[0].Name != "Pair" || d.Records[1].Name != "Box" {
		t.Fatalf("unexpected record order: %s, %s", d.Records[0].Name, d.Records[1].Name)
	}

	pair := d.Records[0]
	if pair.PkgPath != basicPkg || pair.PkgName != "deepcopybasic" {
		t.Fatalf("unexpected package %s (%s)", pair.PkgPath, pair.PkgName)
	}
	if pair.Dir == "" {
		t.Fatal("Dir should be set")
	}
	if pair.Err != nil {
		t.Fatalf("unexpected record error: %v", pair.Err)
	}
	if pair.TypeParams.Len() != 0 {
		t.Fatalf("Pair should not be generic")
	}
}

func TestDiscover_FieldsInDeclarationOrder(t *testing.T) {
	d, err := New().Discover(basicPkg)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	pair := d.Records[0]
	want := []string{"Meta", "A", "B", "Items", "Index", "Tag", "At", "note"}
	if len(pair.Fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(pair.Fields))
	}
	for i, name := range want {
		if pair.Fields[i].Name != name {
			t.Fatalf("field[%d] = %s, want %s", i, pair.Fields[i].Name, name)
		}
	}

	if !pair.Fields[0].Embedded {
		t.Fatal("Meta should be embedded")
	}
	note := fieldByName(pair.Fields, "note")
	if note == nil || note.IsExported {
		t.Fatalf("note should be kept as an unexported field, got %#v", note)
	}
}

func TestDiscover_GenericRecord(t *testing.T) {
	d, err := New().Discover(basicPkg)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	box := d.Records[1]
	if box.TypeParams.Len() != 1 || box.TypeParams.At(0).Obj().Name() != "T" {
		t.Fatalf("expected one type parameter T, got %v", box.TypeParams)
	}
	if fieldByName(box.Fields, "Values") == nil {
		t.Fatal("Values field not found")
	}
}

func TestDiscover_Registry(t *testing.T) {
	d, err := New().Discover(basicPkg)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	reg := d.Registry
	tests := []struct {
		pkg, name string
		want      bool
	}{
		{basicPkg, "Pair", true},
		{basicPkg, "Registered", true},
		{basicPkg, "Box", true},
		{basicPkg, "Plain", false},
		{basicPkg, "Loose", false},
		{sharedPkg, "Tag", true},
		{sharedPkg, "Untagged", false},
	}
	for _, tc := range tests {
		if got := reg.IsRegistered(tc.pkg, tc.name); got != tc.want {
			t.Fatalf("IsRegistered(%s, %s) = %v, want %v", tc.pkg, tc.name, got, tc.want)
		}
	}

	if m := reg.Marker(basicPkg, "Pair"); m != MarkerEnhance {
		t.Fatalf("Pair marker = %v, want MarkerEnhance", m)
	}
	if m := reg.Marker(basicPkg, "Registered"); m != MarkerRegistered {
		t.Fatalf("Registered marker = %v, want MarkerRegistered", m)
	}
	if m := reg.Marker(basicPkg, "Plain"); m != MarkerNone {
		t.Fatalf("Plain marker = %v, want MarkerNone", m)
	}

	entries := reg.Entries()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Record.QualifiedName() >= entries[i].Record.QualifiedName() {
			t.Fatalf("entries not sorted: %s before %s",
				entries[i-1].Record.QualifiedName(), entries[i].Record.QualifiedName())
		}
	}
}

func TestDiscover_RegisteredKeepsTypeObject(t *testing.T) {
	d, err := New().Discover(unbackedPkg)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	var money, orphan *RecordInfo
	for _, e := range d.Registry.Entries() {
		switch e.Record.Name {
		case "Money":
			money = e.Record
		case "Orphan":
			orphan = e.Record
		}
	}
	if money == nil || orphan == nil {
		t.Fatal("Money and Orphan should both be registered")
	}
	if !errors.Is(money.Err, ErrMissingConstructor) {
		t.Fatalf("Money is not a struct, got err %v", money.Err)
	}
	if money.Named == nil || money.Named.NumMethods() != 1 {
		t.Fatalf("Money should keep its type and DeepCopy method: %#v", money.Named)
	}
	if orphan.Named == nil || orphan.Named.NumMethods() != 0 {
		t.Fatal("Orphan should have no methods")
	}
}

func TestRecordInfo_Declarations(t *testing.T) {
	d, err := New().Discover(basicPkg)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	var pair *RecordInfo
	for _, rec := range d.Records {
		if rec.Name == "Pair" {
			pair = rec
		}
	}
	if pair == nil {
		t.Fatal("Pair not found")
	}

	if pos, ok := pair.PackageDecl("Plain", "pair_enhance.go"); !ok || pos == "" {
		t.Fatalf("Plain should be declared, got %q %v", pos, ok)
	}
	if _, ok := pair.PackageDecl("Plain", "types.go"); ok {
		t.Fatal("declarations in the skipped file must be ignored")
	}
	if _, ok := pair.PackageDecl("PairStage", "pair_enhance.go"); ok {
		t.Fatal("PairStage is not declared")
	}
	if _, ok := pair.MethodDecl("DeepCopy", "pair_enhance.go"); ok {
		t.Fatal("Pair declares no DeepCopy")
	}
}

func TestDiscover_MissingConstructor(t *testing.T) {
	d, err := New().Discover(invalidPkg)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(d.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(d.Records))
	}

	level := d.Records[0]
	if !errors.Is(level.Err, ErrMissingConstructor) {
		t.Fatalf("expected ErrMissingConstructor, got %v", level.Err)
	}
	var mce *MissingConstructorError
	if !errors.As(level.Err, &mce) || mce.Kind != "a basic type" {
		t.Fatalf("unexpected error detail: %#v", level.Err)
	}
	if d.Registry.IsRegistered(invalidPkg, "Level") {
		t.Fatal("invalid record must not be registered")
	}

	if d.Records[1].Err != nil {
		t.Fatalf("Ok should be valid, got %v", d.Records[1].Err)
	}
}

func TestDiscover_CustomMarkers(t *testing.T) {
	p := New(WithMarkers(config.Markers{Enhance: "deepcopy:registered"}))

	d, err := p.Discover(basicPkg)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(d.Records) != 1 || d.Records[0].Name != "Registered" {
		t.Fatalf("expected only Registered, got %d records", len(d.Records))
	}
}

func TestDiscover_PackageNotFound(t *testing.T) {
	_, err := New().Discover("github.com/seitarof/gen-deepcopy/testdata/doesnotexist")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestShouldRecurseNestedPackage(t *testing.T) {
	tests := []struct {
		name       string
		nestedPkg  string
		currentPkg string
		modulePath string
		want       bool
	}{
		{
			name:       "same package",
			nestedPkg:  "example.com/mod/a",
			currentPkg: "example.com/mod/a",
			modulePath: "example.com/mod",
			want:       true,
		},
		{
			name:       "same module different package",
			nestedPkg:  "example.com/mod/b",
			currentPkg: "example.com/mod/a",
			modulePath: "example.com/mod",
			want:       true,
		},
		{
			name:       "outside module",
			nestedPkg:  "time",
			currentPkg: "example.com/mod/a",
			modulePath: "example.com/mod",
			want:       false,
		},
		{
			name:       "empty module path only same package allowed",
			nestedPkg:  "example.com/other",
			currentPkg: "example.com/mod/a",
			modulePath: "",
			want:       false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := shouldRecurseNestedPackage(tc.nestedPkg, tc.currentPkg, tc.modulePath)
			if got != tc.want {
				t.Fatalf("shouldRecurseNestedPackage() = %v, want %v", got, tc.want)
			}
		})
	}
}

func fieldByName(fields []FieldInfo, name string) *FieldInfo {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}
