package data

// TypeTag identifies one of the representations a raw token may resolve into.
type TypeTag int

// Representation tags in resolution precedence order.
const (
	TagBool   TypeTag = iota // Boolean literal
	TagInt                   // 32-bit signed integer
	TagFloat                 // 32-bit float
	TagSocket                // Resolved network address
	TagPath                  // Filesystem path, unchecked
	TagString                // Raw text
)

func (t TypeTag) String() string {
	switch t {
	case TagBool:
		return "bool"
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagSocket:
		return "socket"
	case TagPath:
		return "path"
	case TagString:
		return "string"
	default:
		return "unknown"
	}
}
