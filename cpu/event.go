package cpu

// Event is an instrumentation point of the CPU step.
type Event int

//go:generate go tool stringer -linecomment -type=Event
const (
	EVENT_BEFORE_STEP         = Event(0) // before_step
	EVENT_AFTER_STEP          = Event(1) // after_step
	EVENT_BEFORE_EXECUTION    = Event(2) // before_execution
	EVENT_AFTER_EXECUTION     = Event(3) // after_execution
	EVENT_SKIPPED_INSTRUCTION = Event(4) // skipped_instruction

	EVENT_COUNT = 5
)

// Trace is passed to execution event callbacks.
type Trace struct {
	Pc          Word         // Address of the instruction word.
	Code        Code         // Instruction word.
	Instruction *Instruction // Decoded instruction.
	A           *Value       // Operand a.
	B           *Value       // Operand b, nil for extended instructions.
}

// Callback observes an event. trace is nil for step events.
type Callback func(cpu *Cpu, trace *Trace)

// Instrumentation is a registry of callbacks per event.
// Callbacks run synchronously, in registration order.
type Instrumentation struct {
	callbacks [EVENT_COUNT][]Callback
}

// EventNames returns the names of all events, in order.
func EventNames() (names []string) {
	for ev := range Event(EVENT_COUNT) {
		names = append(names, ev.String())
	}
	return
}

// Valid returns true if ev is a known event.
func (ev Event) Valid() bool {
	return ev >= 0 && ev < EVENT_COUNT
}

func (ev Event) err() error {
	return ErrEvent{Name: ev.String(), Valid: EventNames()}
}

// ParseEvent finds an event by name.
func ParseEvent(name string) (ev Event, err error) {
	for ev = range Event(EVENT_COUNT) {
		if ev.String() == name {
			return
		}
	}

	err = ErrEvent{Name: name, Valid: EventNames()}
	return
}

// On adds callback to each of the events.
// No callback is added if any event is unknown.
func (ins *Instrumentation) On(callback Callback, events ...Event) (err error) {
	for _, ev := range events {
		if !ev.Valid() {
			return ev.err()
		}
	}

	for _, ev := range events {
		ins.callbacks[ev] = append(ins.callbacks[ev], callback)
	}

	return
}

// OnName adds callback to the event called name.
func (ins *Instrumentation) OnName(name string, callback Callback) (err error) {
	ev, err := ParseEvent(name)
	if err != nil {
		return
	}

	return ins.On(callback, ev)
}

// Fire invokes all callbacks of an event.
func (ins *Instrumentation) Fire(ev Event, cpu *Cpu, trace *Trace) (err error) {
	if !ev.Valid() {
		return ev.err()
	}

	for _, callback := range ins.callbacks[ev] {
		callback(cpu, trace)
	}

	return
}

// Clear removes all callbacks.
func (ins *Instrumentation) Clear() {
	clear(ins.callbacks[:])
}
