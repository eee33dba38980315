package decl

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/broady/tsgen/tstype"
)

func render(t *testing.T, d Decl, mode Mode) []string {
	t.Helper()
	lines, err := d.Render(mode)
	if err != nil {
		t.Fatalf("%T.Render() error = %v", d, err)
	}
	return lines
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		decl Decl
		mode Mode
		want []string
	}{
		{
			name: "attribute with synthesized default",
			decl: NewAttr("id", tstype.Number),
			want: []string{"id: number = 0;"},
		},
		{
			name: "attribute with explicit default",
			decl: NewAttr("name", tstype.String).WithDefault(`"anon"`),
			want: []string{`name: string = "anon";`},
		},
		{
			name: "optional attribute in type literal",
			decl: NewAttr("email", tstype.NullableOf(tstype.String)).WithOptional(),
			mode: Mode{TypeLiteral: true},
			want: []string{"email?: (string | null);"},
		},
		{
			name: "attribute with non-identifier name",
			decl: NewAttr("content-type", tstype.String),
			want: []string{`"content-type": string = "";`},
		},
		{
			name: "raw attribute in type literal needs no default",
			decl: NewAttr("key", tstype.RawOf("keyof User")),
			mode: Mode{TypeLiteral: true},
			want: []string{"key: keyof User;"},
		},
		{
			name: "method",
			decl: NewMethod("greet", []Arg{
				NewArg("name", tstype.String),
				{Name: "loud", Type: tstype.Boolean, Optional: true},
			}, "return name;"),
			want: []string{"greet(name: string, loud?: boolean){", "return name;", "}"},
		},
		{
			name: "static exported method",
			decl: &Method{Name: "create", Static: true, Exported: true},
			want: []string{"export static create(){", "}"},
		},
		{
			name: "method as free function",
			decl: &Method{Name: "parse", Static: true, Args: []Arg{NewArg("s", tstype.String)}, Body: []string{"return s;"}},
			mode: Mode{FreeFunction: true, Exported: true},
			want: []string{"export function parse(s: string){", "return s;", "}"},
		},
		{
			name: "function",
			decl: NewFunction("now", nil, "return Date.now();"),
			want: []string{"export function now(){", "return Date.now();", "}"},
		},
		{
			name: "getter",
			decl: NewGetter("size", "return this.items.length;"),
			want: []string{"get size(){", "return this.items.length;", "}"},
		},
		{
			name: "setter",
			decl: NewSetter("size", tstype.Number, "this._size = value;"),
			want: []string{"set size(value: number){", "this._size = value;", "}"},
		},
		{
			name: "enum member without value",
			decl: &EnumMember{Name: "Red"},
			want: []string{"Red,"},
		},
		{
			name: "enum member with string value",
			decl: &EnumMember{Name: "Red", Value: "<red>"},
			want: []string{`Red = "<red>",`},
		},
		{
			name: "enum member with number value",
			decl: &EnumMember{Name: "Max", Value: 10},
			want: []string{"Max = 10,"},
		},
		{
			name: "exported const",
			decl: NewConst("VERSION", `"1.0"`, tstype.String),
			want: []string{`export const VERSION: string = "1.0";`},
		},
		{
			name: "let without type or value",
			decl: NewVar("cache", "", nil),
			want: []string{"let cache;"},
		},
		{
			name: "type alias",
			decl: &TypeAlias{Name: "ID", Raw: "string | number", Exported: true},
			want: []string{"export type ID = string | number;"},
		},
		{
			name: "unexported type alias",
			decl: NewTypeAlias("Keys", "keyof User"),
			want: []string{"type Keys = keyof User;"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.decl, tt.mode)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttribute_SynthesizedDefaults(t *testing.T) {
	tests := []struct {
		typ  tstype.Type
		want string
	}{
		{tstype.String, `v: string = "";`},
		{tstype.Boolean, "v: boolean = false;"},
		{tstype.Any, "v: any = null;"},
		{tstype.NullableOf(tstype.NamedOf("User")), "v: (User | null) = null;"},
		{tstype.MapOf(tstype.Number), "v: Map<string, number> = new Map();"},
		{tstype.Map2Of(tstype.Number), "v: Map2<number> = new Map2();"},
		{tstype.ArrayOf(tstype.String), "v: string[] = [];"},
		{tstype.NamedOf("Date"), "v: Date = new Date(0);"},
		{tstype.NamedOf("User"), "v: User = null;"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := render(t, NewAttr("v", tt.typ), Mode{})
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttribute_RawWithoutDefault(t *testing.T) {
	_, err := NewAttr("key", tstype.RawOf("keyof User")).Render(Mode{})
	if !errors.Is(err, tstype.ErrNoDefault) {
		t.Fatalf("Render() error = %v, want ErrNoDefault", err)
	}
	if !strings.Contains(err.Error(), "key") {
		t.Errorf("error %q should name the attribute", err)
	}

	got := render(t, NewAttr("key", tstype.RawOf("keyof User")).WithDefault(`"id"`), Mode{})
	if got[0] != `key: keyof User = "id";` {
		t.Errorf("Render() = %q", got)
	}
}

func TestRender_InvalidType(t *testing.T) {
	var cfgErr *tstype.ConfigurationError
	decls := []Decl{
		NewAttr("x", nil),
		NewAttr("x", &tstype.Primitive{}),
		NewMethod("m", []Arg{NewArg("a", &tstype.Primitive{})}),
		NewSetter("s", nil),
		NewConst("c", "1", &tstype.Primitive{}),
	}
	for _, d := range decls {
		if _, err := d.Render(Mode{}); !errors.As(err, &cfgErr) {
			t.Errorf("%T.Render() error = %v, want ConfigurationError", d, err)
		}
	}
}

func TestTags(t *testing.T) {
	c := NewClass("User")
	c.AddTags(NewTag("model", 1), NewTag("table", "users"))
	c.AddTags(NewTag("model", 2))

	got := c.Tags("model")
	if len(got) != 2 || got[0].Data != 1 || got[1].Data != 2 {
		t.Errorf("Tags(model) = %+v, want data [1 2] in order", got)
	}
	if !c.HasTag("table") || c.HasTag("missing") {
		t.Errorf("HasTag() mismatch")
	}
	if names := c.TagNames(); !slices.Equal(names, []string{"model", "table"}) {
		t.Errorf("TagNames() = %v, want [model table]", names)
	}

	// Returned slices are copies.
	got[0].Data = "changed"
	if c.Tags("model")[0].Data != 1 {
		t.Error("Tags() exposed internal storage")
	}

	if tags := NewAttr("a", tstype.String).Tags("model"); tags != nil {
		t.Errorf("Tags() on untagged decl = %v, want nil", tags)
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"User", true},
		{"_private", true},
		{"$ref", true},
		{"user2", true},
		{"2user", false},
		{"my-type", false},
		{"", false},
		{"class", false},
		{"type", false},
	}
	for _, tt := range tests {
		if got := IsIdentifier(tt.name); got != tt.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if !IsReserved("enum") || IsReserved("User") {
		t.Error("IsReserved() mismatch")
	}
	if got := propertyName("default"); got != "default" {
		t.Errorf("propertyName(default) = %q, reserved words are valid property names", got)
	}
}
