package model

import "github.com/samber/lo"

// CapacityMode selects how room capacity is accounted while checking
// an assignment.
type CapacityMode int

const (
	// CapacityPerRoomTotal sums a room's students across the entire
	// assignment regardless of day and period, effectively dedicating
	// a room to the cohorts that ever use it.
	CapacityPerRoomTotal CapacityMode = iota
	// CapacityPerSlot sums students per room, day and period, so a
	// room can host different cohorts at different times.
	CapacityPerSlot
	// CapacityIgnored drops the capacity predicate altogether.
	CapacityIgnored
)

// Constraint reports whether the given partial assignment is still
// feasible. Predicates are pure and evaluated over the whole
// assignment on every call; conflict maps are rebuilt from scratch
// each time rather than maintained incrementally.
type Constraint func(assignment Assignment) bool

// Constraints returns the predicate set the solver enforces after
// every tentative binding.
func Constraints(capacityMode CapacityMode) []Constraint {
	constraints := []Constraint{
		TeacherTimeConflict,
		GroupTimeConflict,
		RoomTimeConflict,
	}
	if capacityMode != CapacityIgnored {
		constraints = append(constraints, RoomCapacityConflict(capacityMode))
	}
	return constraints
}

type slot struct {
	day    string
	period int
}

// TeacherTimeConflict lets two lessons share a teacher's slot only as
// one split lecture: same subject, distinct groups, same room. Any
// other pair sharing (teacher, day, period) is a conflict.
func TeacherTimeConflict(assignment Assignment) bool {
	type teacherSlot struct {
		teacher string
		slot
	}
	together := map[teacherSlot][]Lesson{}
	for _, lesson := range assignment {
		key := teacherSlot{lesson.Teacher, slot{lesson.Day, lesson.Period}}
		together[key] = append(together[key], lesson)
	}

	for _, lessons := range together {
		for i, lesson := range lessons {
			for j, other := range lessons {
				if i == j {
					continue
				}
				if lesson.Subject != other.Subject ||
					lesson.Group == other.Group ||
					lesson.Room != other.Room {
					return false
				}
			}
		}
	}
	return true
}

// GroupTimeConflict forbids a group from attending two sessions in the
// same day and period.
func GroupTimeConflict(assignment Assignment) bool {
	type groupSlot struct {
		group Group
		slot
	}
	counts := map[groupSlot]int{}
	for _, lesson := range assignment {
		counts[groupSlot{lesson.Group, slot{lesson.Day, lesson.Period}}]++
	}
	return !lo.SomeBy(lo.Values(counts), func(count int) bool { return count > 1 })
}

// RoomTimeConflict lets two lessons share a room's slot only when they
// are the same lecture attended by several groups: same subject and
// same teacher.
func RoomTimeConflict(assignment Assignment) bool {
	type roomSlot struct {
		slot
		room Room
	}
	together := map[roomSlot][]Lesson{}
	for _, lesson := range assignment {
		key := roomSlot{slot{lesson.Day, lesson.Period}, lesson.Room}
		together[key] = append(together[key], lesson)
	}

	for _, lessons := range together {
		for i, lesson := range lessons {
			for j, other := range lessons {
				if i == j {
					continue
				}
				if lesson.Subject != other.Subject || lesson.Teacher != other.Teacher {
					return false
				}
			}
		}
	}
	return true
}

// RoomCapacityConflict bounds the students routed into each room. The
// per-room-total mode keys the sum by room alone; per-slot accounting
// keys it by room, day and period.
func RoomCapacityConflict(mode CapacityMode) Constraint {
	return func(assignment Assignment) bool {
		type roomSlot struct {
			room Room
			slot
		}
		students := map[roomSlot]int{}
		for _, lesson := range assignment {
			key := roomSlot{room: lesson.Room}
			if mode == CapacityPerSlot {
				key.slot = slot{lesson.Day, lesson.Period}
			}
			students[key] += lesson.Group.Students
		}

		return !lo.SomeBy(lo.Keys(students), func(key roomSlot) bool {
			return students[key] > key.room.Capacity
		})
	}
}
