package model

import "github.com/samber/lo"

// BuildRequirements lists the search variables in catalog order:
// groups as declared, each group's subjects in their declared order.
func BuildRequirements(input ProblemInput) []Requirement {
	return lo.FlatMap(input.Groups, func(group GroupInput, _ int) []Requirement {
		return lo.Map(group.Subjects, func(subject string, _ int) Requirement {
			return Requirement{
				Group:   Group{Name: group.Name, Students: group.Students},
				Subject: subject,
			}
		})
	})
}

// BuildDomains cross-products qualified teachers, days, periods and
// rooms into each requirement's candidate list, in that nesting order.
// When FilterByCapacity is set, rooms smaller than the group are
// pruned here instead of failing later against the capacity predicate.
// An unknown subject yields an empty domain, which the solver turns
// into an unsatisfiable outcome rather than an error.
func BuildDomains(input ProblemInput, requirements []Requirement) Domains {
	domains := make(Domains, len(requirements))
	for _, requirement := range requirements {
		candidates := []Lesson{}
		for _, teacher := range input.SubjectTeachers[requirement.Subject] {
			for _, day := range input.Days {
				for _, period := range input.Periods {
					for _, room := range input.Rooms {
						if input.FilterByCapacity && room.Capacity < requirement.Group.Students {
							continue
						}
						candidates = append(candidates, Lesson{
							Group:   requirement.Group,
							Subject: requirement.Subject,
							Teacher: teacher,
							Day:     day,
							Period:  period,
							Room:    Room{Name: room.Name, Capacity: room.Capacity},
						})
					}
				}
			}
		}
		domains[requirement] = candidates
	}
	return domains
}
