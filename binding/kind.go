package binding

// Kind determines what implicit first argument, if any, a registered method
// receives when invoked through a view.
type Kind int

const (
	// Unbound methods are returned as registered; the receiver is ignored.
	Unbound Kind = iota
	// InstanceBound methods receive the receiver instance as their first argument.
	InstanceBound
	// TypeBound methods receive the receiver's reflect.Type as their first argument.
	TypeBound
)

func (k Kind) String() string {
	switch k {
	case Unbound:
		return "unbound"
	case InstanceBound:
		return "instance-bound"
	case TypeBound:
		return "type-bound"
	default:
		return "unknown"
	}
}
