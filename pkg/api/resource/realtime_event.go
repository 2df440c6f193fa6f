package resource

type RealtimeEventResource struct {
	Console string      `json:"console"`
	Topic   string      `json:"topic"`
	Data    interface{} `json:"data"`
}

func NewRealtimeEvent(console, topic string, data interface{}) *RealtimeEventResource {
	return &RealtimeEventResource{
		Console: console,
		Topic:   topic,
		Data:    data,
	}
}
