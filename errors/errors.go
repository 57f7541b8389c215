package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/methodmap/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors for registration and attachment misuses. Use errors.Is to match.
var (
	ErrDuplicateKey         = namespace.NewError("key already registered")
	ErrMultipleOwners       = namespace.NewError("blueprint already claimed by another owning type")
	ErrUnusableBlueprint    = namespace.NewError("blueprint has no backing table")
	ErrNilMethod            = namespace.NewError("nil method")
	ErrNotFunction          = namespace.NewError("method must be a function")
	ErrMissingReceiverParam = namespace.NewError("bound method must declare a receiver parameter")
	ErrTypeParamMismatch    = namespace.NewError("type-bound method must take a reflect.Type first parameter")
	ErrInvalidKind          = namespace.NewError("invalid binding kind")
	ErrNilOwner             = namespace.NewError("nil owner type")
	ErrNilReceiver          = namespace.NewError("nil receiver")
	ErrReceiverMismatch     = namespace.NewError("receiver is not assignable to the owning type")
	ErrKeyNotFound          = namespace.NewError("key not registered")
	ErrArgumentMismatch     = namespace.NewError("arguments do not match method signature")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentMethod    = "method"
	keySegmentBlueprint = "blueprint"
)

// Exported structured error field keys
var (
	ErrorFieldKey        = newKey("key")                    // methodmap.key
	ErrorFieldKind       = newKey("kind", keySegmentMethod) // methodmap.method.kind
	ErrorFieldMethodType = newKey("type", keySegmentMethod) // methodmap.method.type
)

var (
	ErrorFieldBlueprint   = newKey("name", keySegmentBlueprint)         // methodmap.blueprint.name
	ErrorFieldOwnerType   = newKey("owner_type", keySegmentBlueprint)   // methodmap.blueprint.owner_type
	ErrorFieldClaimedType = newKey("claimed_type", keySegmentBlueprint) // methodmap.blueprint.claimed_type
)

var (
	ErrorFieldReceiverType = newKey("receiver_type")
	ErrorFieldArguments    = newKey("arguments")
)
