package sorting

import (
	"go.uber.org/zap"

	"datagrid/internal/events"
)

// Service turns header gestures into changes on a grid's sort descriptions
type Service struct {
	descs   *Descriptions
	bus     events.EventBus
	log     *zap.SugaredLogger
	enabled bool
}

// NewService creates a sorting service over descs. A nil descs starts empty.
func NewService(descs *Descriptions, bus events.EventBus, log *zap.SugaredLogger) *Service {
	if descs == nil {
		descs = &Descriptions{}
	}
	if bus == nil {
		bus = &events.NullBus{}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{
		descs:   descs,
		bus:     bus,
		log:     log,
		enabled: true,
	}
}

// SetEnabled turns sorting gestures on or off
func (s *Service) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Enabled reports whether gestures change the sort
func (s *Service) Enabled() bool {
	return s.enabled
}

// Descriptions returns the live collection
func (s *Service) Descriptions() *Descriptions {
	return s.descs
}

// Snapshot returns a copy of the current sort
func (s *Service) Snapshot() *Descriptions {
	return s.descs.Clone()
}

// Toggle handles a sort gesture on a column header.
// A sorted column flips direction. An unsorted column is added ascending,
// replacing the current sort unless multi is set.
func (s *Service) Toggle(column string, multi bool) {
	if !s.allowed("toggle", column) {
		return
	}

	if _, ok := s.descs.Get(column); ok {
		s.descs.FlipDirection(column)
	} else {
		if !multi {
			s.descs.Clear()
		}
		s.descs.Add(Description{Column: column, Direction: Ascending})
	}
	s.changed()
}

// Remove stops sorting by column
func (s *Service) Remove(column string) {
	if !s.allowed("remove", column) {
		return
	}
	if s.descs.Index(column) == NotFound {
		return
	}
	s.descs.Remove(column)
	s.changed()
}

// Clear drops every active sort
func (s *Service) Clear() {
	if !s.allowed("clear", "") {
		return
	}
	if s.descs.Len() == 0 {
		return
	}
	s.descs.Clear()
	s.changed()
}

// Restore replaces the active sort with a copy of descs
func (s *Service) Restore(descs *Descriptions) {
	if descs == nil {
		descs = &Descriptions{}
	}
	entries := descs.All()
	s.descs.Clear()
	for _, d := range entries {
		s.descs.Add(d)
	}
	s.changed()
}

// Indicator returns what a header should show for column: the direction
// and the 1-based precedence. ok is false for unsorted columns.
func (s *Service) Indicator(column string) (Direction, int, bool) {
	dir, ok := s.descs.Direction(column)
	if !ok {
		return 0, NotFound, false
	}
	return dir, s.descs.Index(column), true
}

func (s *Service) allowed(op, column string) bool {
	if s.enabled {
		return true
	}
	s.log.Debugw("sorting disabled, ignoring gesture", "op", op, "column", column)
	return false
}

func (s *Service) changed() {
	s.log.Debugw("sort changed", "sort", FormatList(s.descs))
	s.bus.Publish(SortChangedEvent{Descriptions: s.descs.Clone()})
}
