package systems

import (
	"fmt"
	"image/color"

	"ebiten-dungeon/ecs"
)

// LogKind says which gameplay event produced a log entry
type LogKind int

const (
	LogNote  LogKind = iota // free text from the host
	LogHit                  // CombatEvent
	LogDeath                // DeathEvent
	LogLoot                 // ItemPickupEvent, ItemDroppedEvent
	LogDoor                 // InteractionEvent
)

var logColors = map[LogKind]color.RGBA{
	LogNote:  {200, 200, 200, 255},
	LogHit:   {255, 100, 100, 255},
	LogDeath: {255, 255, 0, 255},
	LogLoot:  {100, 149, 237, 255},
	LogDoor:  {218, 165, 32, 255},
}

// LogEntry is one line of the message log
type LogEntry struct {
	Text string
	Kind LogKind
}

// Color returns the swatch drawn next to the entry
func (e LogEntry) Color() color.RGBA {
	if c, ok := logColors[e.Kind]; ok {
		return c
	}
	return logColors[LogNote]
}

// MessageLog stores readable game messages for the HUD and debug overlay
type MessageLog struct {
	Messages    []LogEntry
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []LogEntry{},
		MaxMessages: 100,
	}
}

// Initialize subscribes the log to gameplay events
func (ml *MessageLog) Initialize(world *ecs.World) {
	em := world.GetEventManager()
	em.Subscribe(EventCombat, func(event ecs.Event) {
		e := event.(CombatEvent)
		ml.AddKind(fmt.Sprintf("%s hits %s for %d", e.Attacker.Name, e.Defender.Name, e.Damage), LogHit)
	})
	em.Subscribe(EventDeath, func(event ecs.Event) {
		e := event.(DeathEvent)
		if e.Killer != nil {
			ml.AddKind(fmt.Sprintf("%s was killed by %s", e.Entity.Name, e.Killer.Name), LogDeath)
			return
		}
		ml.AddKind(fmt.Sprintf("%s died", e.Entity.Name), LogDeath)
	})
	em.Subscribe(EventItemPickup, func(event ecs.Event) {
		e := event.(ItemPickupEvent)
		ml.AddKind(fmt.Sprintf("%s picked up %s", e.Entity.Name, e.Item.Name), LogLoot)
	})
	em.Subscribe(EventItemDropped, func(event ecs.Event) {
		e := event.(ItemDroppedEvent)
		ml.AddKind(fmt.Sprintf("%s dropped at %.0f,%.0f", e.Item.Name, e.At.X, e.At.Y), LogLoot)
	})
	em.Subscribe(EventInteraction, func(event ecs.Event) {
		e := event.(InteractionEvent)
		ml.AddKind(fmt.Sprintf("%s opened", e.Target.Name), LogDoor)
	})
}

// Add appends a free-text note
func (ml *MessageLog) Add(message string) {
	ml.AddKind(message, LogNote)
}

// AddKind appends an entry, dropping the oldest past MaxMessages
func (ml *MessageLog) AddKind(message string, kind LogKind) {
	ml.Messages = append(ml.Messages, LogEntry{Text: message, Kind: kind})

	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []LogEntry {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]LogEntry, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []LogEntry{}
}
