package ffclosure

// Go is the native Go calling convention. Code is a Go func value of type
// TrampolineN and never leaves the process's Go world.
type Go struct{ nativeABI }

func (Go) Name() string { return "Go" }

func init() {
	registerConvention(ConventionInfo{Name: "Go", ABI: "go"})
}

type nativeABI struct{}

var nativeBoxDestructor = Destructor{code: obfuscate(DestructorFunc(destroyBox))}

func (nativeABI) boxDestructor() Destructor { return nativeBoxDestructor }

func (nativeABI) newDestructor(fn DestructorFunc) Destructor {
	return Destructor{code: obfuscate(fn)}
}

func (nativeABI) destroy(d Destructor, ctx Context) {
	deobfuscate[DestructorFunc](d.code)(ctx)
}
