package ffclosure

import (
	"reflect"
	"strings"
)

// Signature is the resolved shape of a closure value.
type Signature struct {
	Convention string   `yaml:"convention"`
	Capability string   `yaml:"capability"`
	Args       []string `yaml:"args"`
	Result     string   `yaml:"result"`
}

// String renders s the way a C prototype would read, e.g.
// "C fn(uint32, ctx) uint32 [send]".
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Convention)
	b.WriteString(" fn(")
	for _, a := range s.Args {
		b.WriteString(a)
		b.WriteString(", ")
	}
	b.WriteString("ctx)")
	if s.Result != "" {
		b.WriteString(" ")
		b.WriteString(s.Result)
	}
	if s.Capability != "unsync" {
		b.WriteString(" [")
		b.WriteString(s.Capability)
		b.WriteString("]")
	}
	return b.String()
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

func signatureOf[Cc Convention, K Capability, R Scalar](args ...string) Signature {
	var (
		cc Cc
		k  K
	)
	result := typeName[R]()
	if result == typeName[Void]() {
		result = ""
	}
	return Signature{
		Convention: cc.Name(),
		Capability: k.capabilities().String(),
		Args:       args,
		Result:     result,
	}
}
