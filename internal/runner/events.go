package runner

// EventKind identifies a discrete simulation event.
type EventKind int

const (
	EventStarted         EventKind = iota // A run began (first start or restart)
	EventJumped                           // The player left the ground
	EventPaused                           // Running -> Paused
	EventResumed                          // Paused -> Running
	EventObstacleCleared                  // An obstacle scrolled off screen
	EventCollision                        // The run ended on an obstacle
	EventNewBest                          // The run beat the best score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventJumped:
		return "jumped"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventObstacleCleared:
		return "obstacle_cleared"
	case EventCollision:
		return "collision"
	case EventNewBest:
		return "new_best"
	default:
		return "unknown"
	}
}

// Event is handed to the presentation layer for transient feedback.
type Event struct {
	Kind     EventKind
	Score    int          // Score at the time of the event
	Obstacle ObstacleKind // Set for EventObstacleCleared and EventCollision
}

// maxQueuedEvents bounds the queue when nobody drains it.
const maxQueuedEvents = 64

func (s *Session) emit(e Event) {
	if len(s.events) >= maxQueuedEvents {
		copy(s.events, s.events[1:])
		s.events = s.events[:len(s.events)-1]
	}
	s.events = append(s.events, e)
}

// DrainEvents returns the queued events and empties the queue.
func (s *Session) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}
