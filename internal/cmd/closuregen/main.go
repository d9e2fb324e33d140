// Command closuregen writes the per-arity dispatch and closure code for the
// ffclosure package. Every arity from 0 to maxArity gets a trampoline type,
// an invocation path for each convention family, and a closure value type.
//
// Run it through go generate from the repository root.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

// Keep in sync with ffclosure.MaxArity.
const maxArity = 14

const header = "// Code generated by closuregen. DO NOT EDIT.\n\n"

const foreignBuild = "//go:build (darwin || linux || windows) && (amd64 || arm64)\n\n"

type arity int

// list joins f(i) for every argument index.
func (n arity) list(f func(i int) string) string {
	parts := make([]string, 0, int(n))
	for i := 0; i < int(n); i++ {
		parts = append(parts, f(i))
	}
	return strings.Join(parts, ", ")
}

// prefix is like list but adds a trailing ", " when there are arguments.
func (n arity) prefix(f func(i int) string) string {
	if n == 0 {
		return ""
	}
	return n.list(f) + ", "
}

// words is the parameter list "a0, a1 uintptr" or "".
func (n arity) words() string {
	if n == 0 {
		return ""
	}
	return n.list(func(i int) string { return fmt.Sprintf("a%d", i) }) + " uintptr"
}

// wordParams is words with a trailing ", " when non-empty.
func (n arity) wordParams() string {
	if n == 0 {
		return ""
	}
	return n.words() + ", "
}

func (n arity) argNames() string {
	return n.list(func(i int) string { return fmt.Sprintf("a%d", i) })
}

func (n arity) argPrefix() string {
	return n.prefix(func(i int) string { return fmt.Sprintf("a%d", i) })
}

func (n arity) typeParams() string {
	return n.prefix(func(i int) string { return fmt.Sprintf("A%d", i) })
}

func (n arity) typeArgs() string {
	return n.prefix(func(i int) string { return fmt.Sprintf("A%d", i) })
}

func (n arity) typed() string {
	return n.list(func(i int) string { return fmt.Sprintf("A%d", i) })
}

func (n arity) typedParams() string {
	return n.list(func(i int) string { return fmt.Sprintf("a%d A%d", i, i) })
}

func (n arity) plural() string {
	switch n {
	case 0:
		return "no arguments"
	case 1:
		return "1 argument"
	default:
		return fmt.Sprintf("%d arguments", int(n))
	}
}

func dispatchFile() string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package ffclosure\n\n")

	for n := arity(0); n <= maxArity; n++ {
		fmt.Fprintf(&b, "// Trampoline%d is the real signature of a trampoline taking %s.\n", n, n.plural())
		fmt.Fprintf(&b, "type Trampoline%d func(%sctx Context) uintptr\n\n", n, n.wordParams())
		fmt.Fprintf(&b, "// Code returns t as a Go convention function pointer.\n")
		fmt.Fprintf(&b, "func (t Trampoline%d) Code() Code { return obfuscate(t) }\n\n", n)
		fmt.Fprintf(&b, "func trampoline%d(%sctx Context) uintptr {\n", n, n.wordParams())
		fmt.Fprintf(&b, "\treturn lookup(ctx).call.(func(%s) uintptr)(%s)\n", n.words(), n.argNames())
		b.WriteString("}\n\n")
	}

	b.WriteString("var nativeTrampolines = [MaxArity + 1]Code{\n")
	for n := arity(0); n <= maxArity; n++ {
		fmt.Fprintf(&b, "\tobfuscate(Trampoline%d(trampoline%d)),\n", n, n)
	}
	b.WriteString("}\n\n")

	b.WriteString("// dispatcher is the per-arity half of a Convention.\n")
	b.WriteString("type dispatcher interface {\n")
	for n := arity(0); n <= maxArity; n++ {
		fmt.Fprintf(&b, "\ttrampoline%d() Code\n", n)
		fmt.Fprintf(&b, "\tcall%d(code Code, %sctx Context) uintptr\n", n, n.wordParams())
	}
	b.WriteString("}\n\n")

	for n := arity(0); n <= maxArity; n++ {
		fmt.Fprintf(&b, "func (nativeABI) trampoline%d() Code { return nativeTrampolines[%d] }\n\n", n, n)
		fmt.Fprintf(&b, "func (nativeABI) call%d(code Code, %sctx Context) uintptr {\n", n, n.wordParams())
		fmt.Fprintf(&b, "\treturn deobfuscate[Trampoline%d](code)(%sctx)\n", n, n.argPrefix())
		b.WriteString("}\n\n")
	}

	for n := arity(0); n <= maxArity; n++ {
		fmt.Fprintf(&b, "// Invoke%d calls code with %s followed by ctx under convention Cc.\n", n, n.plural())
		fmt.Fprintf(&b, "func Invoke%d[Cc Convention](code Code, %sctx Context) uintptr {\n", n, n.wordParams())
		b.WriteString("\tvar cc Cc\n")
		fmt.Fprintf(&b, "\treturn cc.call%d(code, %sctx)\n", n, n.argPrefix())
		b.WriteString("}\n\n")
	}
	return b.String()
}

func foreignFile() string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(foreignBuild)
	b.WriteString("package ffclosure\n\n")
	b.WriteString("import \"github.com/ebitengine/purego\"\n\n")

	for n := arity(0); n <= maxArity; n++ {
		fmt.Fprintf(&b, "func (foreignABI) trampoline%d() Code {\n", n)
		fmt.Fprintf(&b, "\treturn foreignCallback(%d, Trampoline%d(trampoline%d))\n", n, n, n)
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "func (foreignABI) call%d(code Code, %sctx Context) uintptr {\n", n, n.wordParams())
		fmt.Fprintf(&b, "\tr1, _, _ := purego.SyscallN(code.Addr(), %suintptr(ctx))\n", n.argPrefix())
		b.WriteString("\treturn r1\n")
		b.WriteString("}\n\n")
	}
	return b.String()
}

func closureFile() string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package ffclosure\n\n")
	b.WriteString("import \"runtime\"\n\n")

	for n := arity(0); n <= maxArity; n++ {
		params := fmt.Sprintf("[Cc Convention, K Capability, %sR Scalar]", n.typeParams())
		args := fmt.Sprintf("[Cc, K, %sR]", n.typeArgs())
		fn := fmt.Sprintf("func(%s) R", n.typed())

		fmt.Fprintf(&b, "// Closure%d owns a trampoline taking %s, its context and its destructor.\n", n, n.plural())
		fmt.Fprintf(&b, "type Closure%d%s struct {\n", n, params)
		b.WriteString("\tclosure[Cc, K]\n")
		b.WriteString("}\n\n")

		fmt.Fprintf(&b, "// Capture%d boxes fn and returns the closure value that solely owns the box.\n", n)
		fmt.Fprintf(&b, "func Capture%d%s(fn Func[K, %s]) *Closure%d%s {\n", n, params, fn, n, args)
		b.WriteString("\tf := fn.fn\n")
		fmt.Fprintf(&b, "\tctx := capture(func(%s) uintptr {\n", n.words())
		conv := n.list(func(i int) string { return fmt.Sprintf("A%d(a%d)", i, i) })
		fmt.Fprintf(&b, "\t\treturn uintptr(f(%s))\n", conv)
		b.WriteString("\t}, fn.drop)\n")
		b.WriteString("\tvar cc Cc\n")
		fmt.Fprintf(&b, "\tc := &Closure%d%s{}\n", n, args)
		fmt.Fprintf(&b, "\tsetup(c, &c.closure, cc.trampoline%d(), ctx, cc.boxDestructor())\n", n)
		b.WriteString("\treturn c\n")
		b.WriteString("}\n\n")

		fmt.Fprintf(&b, "// Adopt%d wraps a raw code, context and destructor triple without checking it.\n", n)
		fmt.Fprintf(&b, "// code must have the real signature Trampoline%d under Cc for the lifetime of\n", n)
		b.WriteString("// the returned value, and dtor, if not zero, must release whatever ctx denotes.\n")
		fmt.Fprintf(&b, "func Adopt%d%s(code Code, ctx Context, dtor Destructor) *Closure%d%s {\n", n, params, n, args)
		fmt.Fprintf(&b, "\tc := &Closure%d%s{}\n", n, args)
		b.WriteString("\tsetup(c, &c.closure, code, ctx, dtor)\n")
		b.WriteString("\treturn c\n")
		b.WriteString("}\n\n")

		b.WriteString("// Call invokes the closure's code with the arguments followed by its context.\n")
		fmt.Fprintf(&b, "func (c *Closure%d%s) Call(%s) R {\n", n, args, n.typedParams())
		words := n.prefix(func(i int) string { return fmt.Sprintf("uintptr(a%d)", i) })
		fmt.Fprintf(&b, "\tr := R(Invoke%d[Cc](c.code, %sc.ctx))\n", n, words)
		b.WriteString("\truntime.KeepAlive(c)\n")
		b.WriteString("\treturn r\n")
		b.WriteString("}\n\n")

		b.WriteString("// Signature describes the closure's resolved shape.\n")
		fmt.Fprintf(&b, "func (c *Closure%d%s) Signature() Signature {\n", n, args)
		names := n.list(func(i int) string { return fmt.Sprintf("typeName[A%d]()", i) })
		fmt.Fprintf(&b, "\treturn signatureOf[Cc, K, R](%s)\n", names)
		b.WriteString("}\n\n")
	}
	return b.String()
}

func casesFile() string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package selftest\n\n")
	b.WriteString("import \"github.com/tinyrange/ffclosure\"\n\n")

	for n := arity(0); n <= maxArity; n++ {
		params := ""
		if n > 0 {
			params = n.argNames() + " uintptr"
		}
		in := n.list(func(i int) string { return fmt.Sprintf("s.arg(%d)", i) })
		words := n.prefix(func(i int) string { return fmt.Sprintf("s.arg(%d)", i) })
		types := n.prefix(func(int) string { return "uintptr" })

		fmt.Fprintf(&b, "func cycle%d[Cc ffclosure.Convention](s *suite[Cc]) error {\n", n)
		fmt.Fprintf(&b, "\tc := ffclosure.Capture%d[Cc](ffclosure.Local(func(%s) uintptr {\n", n, params)
		fmt.Fprintf(&b, "\t\treturn fold(%s)\n", n.argNames())
		b.WriteString("\t}).OnDrop(s.dropped))\n")
		b.WriteString("\tdefer c.Free()\n\n")
		fmt.Fprintf(&b, "\twant := fold(%s)\n", in)
		fmt.Fprintf(&b, "\tif got := c.Call(%s); got != want {\n", in)
		fmt.Fprintf(&b, "\t\treturn mismatch(\"call\", %d, got, want)\n", n)
		b.WriteString("\t}\n")
		b.WriteString("\tcode, ctx := c.ExternParts()\n")
		fmt.Fprintf(&b, "\tif got := ffclosure.Invoke%d[Cc](code, %sctx); got != want {\n", n, words)
		fmt.Fprintf(&b, "\t\treturn mismatch(\"invoke\", %d, got, want)\n", n)
		b.WriteString("\t}\n")
		fmt.Fprintf(&b, "\tadopted := ffclosure.Adopt%d[Cc, ffclosure.Unsync, %suintptr](code, ctx, ffclosure.Destructor{})\n", n, types)
		fmt.Fprintf(&b, "\tif got := adopted.Call(%s); got != want {\n", in)
		fmt.Fprintf(&b, "\t\treturn mismatch(\"adopt\", %d, got, want)\n", n)
		b.WriteString("\t}\n")
		b.WriteString("\tadopted.Free()\n")
		b.WriteString("\treturn nil\n")
		b.WriteString("}\n\n")
	}

	b.WriteString("func cyclesFor[Cc ffclosure.Convention]() [ffclosure.MaxArity + 1]func(*suite[Cc]) error {\n")
	b.WriteString("\treturn [ffclosure.MaxArity + 1]func(*suite[Cc]) error{\n")
	for n := arity(0); n <= maxArity; n++ {
		fmt.Fprintf(&b, "\t\tcycle%d[Cc],\n", n)
	}
	b.WriteString("\t}\n")
	b.WriteString("}\n")
	return b.String()
}

func write(path, src string) error {
	out, err := format.Source([]byte(src))
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, out) {
		return nil
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func run() error {
	root := flag.String("root", ".", "Repository root")
	flag.Parse()

	files := []struct {
		path string
		gen  func() string
	}{
		{"dispatch_gen.go", dispatchFile},
		{"abi_foreign_gen.go", foreignFile},
		{"closure_gen.go", closureFile},
		{filepath.Join("internal", "selftest", "cases_gen.go"), casesFile},
	}
	for _, f := range files {
		if err := write(filepath.Join(*root, f.path), f.gen()); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "closuregen: %v\n", err)
		os.Exit(1)
	}
}
