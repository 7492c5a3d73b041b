package types

// Intrinsic scalar types available in every scope. They are plain models
// with no defining node; a user declaration with the same name shadows the
// intrinsic.
var (
	StringType  = &Model{Name: "string"}
	NumberType  = &Model{Name: "number"}
	BooleanType = &Model{Name: "boolean"}
	BytesType   = &Model{Name: "bytes"}
	NullType    = &Model{Name: "null"}
)

var intrinsics = map[string]Type{
	"string":  StringType,
	"number":  NumberType,
	"boolean": BooleanType,
	"bytes":   BytesType,
	"null":    NullType,
}

// Intrinsic returns the built-in type for name, if one exists.
func Intrinsic(name string) (Type, bool) {
	t, ok := intrinsics[name]
	return t, ok
}
