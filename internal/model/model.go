package model

// Group is a cohort of students that attends lessons together.
type Group struct {
	Name     string
	Students int
}

// Room is a teaching space with a bounded number of seats.
type Room struct {
	Name     string
	Capacity int
}

// Requirement states that a group must take a subject exactly once. It
// is the variable of the search; being comparable it keys maps directly
// and two requirements with equal fields are the same variable.
type Requirement struct {
	Group   Group
	Subject string
}

// Lesson is one fully specified scheduling option for a requirement.
// Candidates are generated once and never mutated; assigning means
// binding a requirement to one of them.
type Lesson struct {
	Group   Group
	Subject string
	Teacher string
	Day     string
	Period  int
	Room    Room
}

// Assignment maps every bound requirement to its chosen lesson. It is
// the single piece of mutable state in the search and is owned
// exclusively by the active call path.
type Assignment map[Requirement]Lesson

// Domains holds the admissible lessons per requirement, in generation
// order. The order decides which solution is found first when several
// exist.
type Domains map[Requirement][]Lesson
