package checkout

type ExpireIntentEvent struct {
	ID      string
	EventID string
}
