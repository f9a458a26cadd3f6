package assembly

// Id opaquely identifies a retract within one assembly. Ids are not
// portable across assemblies.
type Id uint64
