package event

// The order service marshals its order entity as-is onto the lifecycle
// topics, so these payloads follow the entity's field casing and declare
// only the subset this service consumes.

type OrderItemEvent struct {
	EventID  string
	Quantity int64
}

type OrderCreatedEvent struct {
	ID     string
	Status string
	Items  []OrderItemEvent
}

type OrderExpiredEvent struct {
	ID     string
	Status string
	Items  []OrderItemEvent
}
