package constants

const Namespace = "methodmap"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace
