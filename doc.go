// Package methodmap lets a type declare, while it is being assembled, a set
// of key -> method bindings and later hand each of its instances a frozen
// lookup table mapping those keys to correctly-bound callables.
//
// A Blueprint collects registrations; Finalize attaches it to exactly one
// owning type; Attached.ViewFor produces the per-instance frozen view. The
// owning type's integration contract is: register methods and finalize once
// at package load, call ViewFor exactly once per instance from the
// constructor, store the view, and never re-derive it.
package methodmap
