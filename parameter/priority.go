package parameter

// Transformer Chain Priorities (lower runs first)
//
// Bands leave room for per-scene overrides between built-ins. Relay
// transformers run as a separate stage before any of these regardless of
// number, so PriorityInputRelay only orders relays among themselves.
const (
	PriorityInputRelay = 0

	PriorityCharacter = 100
	PriorityCar       = 100
	PriorityAirplane  = 100
	PriorityAnimal    = 200
	PriorityFlutter   = 200

	PriorityCustom = 500 // user code observes built-in contributions by default
)
