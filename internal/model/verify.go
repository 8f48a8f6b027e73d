package model

import "github.com/samber/lo"

// Verify checks a finished timetable: every requirement is bound
// exactly once, every lesson belongs to the requirement it answers,
// and the full constraint set holds over the complete assignment.
func Verify(assignment Assignment, requirements []Requirement, capacityMode CapacityMode) bool {
	if len(assignment) != len(requirements) {
		return false
	}

	for _, requirement := range requirements {
		lesson, bound := assignment[requirement]
		if !bound || lesson.Group != requirement.Group || lesson.Subject != requirement.Subject {
			return false
		}
	}

	return !lo.SomeBy(Constraints(capacityMode), func(constraint Constraint) bool {
		return !constraint(assignment)
	})
}
