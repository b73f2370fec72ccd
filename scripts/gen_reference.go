package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/result"
)

type structField struct {
	Name  string
	Type  string
	JSON  string
	Notes string
}

func main() {
	var wireOut string
	var classifyOut string
	flag.StringVar(&wireOut, "wire-out", "docs/reference/wire-format.md", "output markdown path for the wire format")
	flag.StringVar(&classifyOut, "classify-out", "docs/reference/classification.md", "output markdown path for the classification tables")
	flag.Parse()

	root, err := os.Getwd()
	if err != nil {
		fail(err)
	}

	if err := generateWireFormat(root, wireOut); err != nil {
		fail(err)
	}
	if err := generateClassification(classifyOut); err != nil {
		fail(err)
	}
}

func generateWireFormat(root, outPath string) error {
	structs, err := collectStructFields(filepath.Join(root, "codec", "document.go"), []string{"Document", "MessageDoc", "Envelope"})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("# Wire format\n\n")
	buf.WriteString("Generated by `go run ./scripts/gen_reference.go`. Do not edit.\n\n")

	buf.WriteString("## Kinds\n\n")
	buf.WriteString("| Type | Value | Text |\n|---|---|---|\n")
	for _, k := range messageKinds() {
		buf.WriteString("| `message.Kind` | " + strconv.Itoa(int(k)) + " | `" + k.String() + "` |\n")
	}
	for _, k := range resultKinds() {
		buf.WriteString("| `result.Kind` | " + strconv.Itoa(int(k)) + " | `" + k.String() + "` |\n")
	}
	buf.WriteString("\n## Documents\n\n")
	for _, name := range []string{"Document", "MessageDoc", "Envelope"} {
		writeStructWithTags(&buf, name, structs[name])
	}
	return writeFile(outPath, buf.Bytes())
}

func generateClassification(outPath string) error {
	var buf bytes.Buffer
	buf.WriteString("# Classification\n\n")
	buf.WriteString("Generated by `go run ./scripts/gen_reference.go`. Do not edit.\n\n")

	buf.WriteString("## From messages\n\n")
	buf.WriteString("Each row is the set of message kinds present; order and multiplicity do not matter.\n\n")
	buf.WriteString("| Kinds present | Result |\n|---|---|\n")
	kinds := messageKinds()
	for mask := 0; mask < 1<<len(kinds); mask++ {
		var (
			msgs  []message.Message
			names []string
		)
		for i, k := range kinds {
			if mask&(1<<i) == 0 {
				continue
			}
			msgs = append(msgs, message.MustNew(k, "c", ""))
			names = append(names, k.String())
		}
		label := strings.Join(names, ", ")
		if label == "" {
			label = "(none)"
		}
		buf.WriteString("| " + label + " | `" + result.Classify(msgs).String() + "` |\n")
	}

	buf.WriteString("\n## Merging two outcomes\n\n")
	buf.WriteString("Rows are the first input, columns the second. Merging is order-sensitive.\n\n")
	rk := resultKinds()
	buf.WriteString("| first \\ second |")
	for _, k := range rk {
		buf.WriteString(" `" + k.String() + "` |")
	}
	buf.WriteString("\n|---|")
	for range rk {
		buf.WriteString("---|")
	}
	buf.WriteString("\n")
	for _, a := range rk {
		buf.WriteString("| `" + a.String() + "` |")
		for _, b := range rk {
			merged := result.FromOutcomes(bare(a), bare(b))
			buf.WriteString(" `" + merged.Kind().String() + "` |")
		}
		buf.WriteString("\n")
	}
	return writeFile(outPath, buf.Bytes())
}

func messageKinds() []message.Kind {
	var out []message.Kind
	for k := message.Kind(1); k.Valid(); k++ {
		out = append(out, k)
	}
	return out
}

func resultKinds() []result.Kind {
	var out []result.Kind
	for k := result.Kind(1); k.Valid(); k++ {
		out = append(out, k)
	}
	return out
}

func bare(k result.Kind) result.Result {
	r, err := result.New(k)
	if err != nil {
		fail(err)
	}
	return r
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func collectStructFields(path string, names []string) (map[string][]structField, error) {
	want := make(map[string]struct{})
	for _, name := range names {
		want[name] = struct{}{}
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]structField)
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			if _, ok := want[ts.Name.Name]; !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			fields := make([]structField, 0, len(st.Fields.List))
			for _, field := range st.Fields.List {
				typeStr := exprString(field.Type)
				notes := joinComments(field.Doc, field.Comment)
				jsonTag := ""
				if field.Tag != nil {
					if tag, err := strconv.Unquote(field.Tag.Value); err == nil {
						jsonTag = reflect.StructTag(tag).Get("json")
					}
				}
				for _, name := range field.Names {
					fields = append(fields, structField{Name: name.Name, Type: typeStr, JSON: jsonTag, Notes: notes})
				}
			}
			out[ts.Name.Name] = fields
		}
	}
	return out, nil
}

func exprString(expr ast.Expr) string {
	var buf bytes.Buffer
	_ = printer.Fprint(&buf, token.NewFileSet(), expr)
	return buf.String()
}

func joinComments(groups ...*ast.CommentGroup) string {
	var parts []string
	for _, g := range groups {
		if g == nil {
			continue
		}
		text := strings.TrimSpace(g.Text())
		if text != "" {
			parts = append(parts, strings.ReplaceAll(text, "\n", " "))
		}
	}
	return strings.Join(parts, " ")
}

func writeStructWithTags(buf *bytes.Buffer, name string, fields []structField) {
	if len(fields) == 0 {
		return
	}
	buf.WriteString("### " + name + "\n\n")
	buf.WriteString("| Field | Type | JSON | Notes |\n")
	buf.WriteString("|---|---|---|---|\n")
	for _, field := range fields {
		note := field.Notes
		if note == "" {
			note = "-"
		}
		jsonTag := field.JSON
		if jsonTag == "" {
			jsonTag = "-"
		}
		buf.WriteString("| `" + field.Name + "` | `" + field.Type + "` | `" + jsonTag + "` | " + escapePipes(note) + " |\n")
	}
	buf.WriteString("\n")
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
