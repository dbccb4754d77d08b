package domain

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
	TaskDropped   TaskStatus = "dropped"
)

type TaskCategory string

const (
	CategoryExam       TaskCategory = "exam"
	CategoryAssignment TaskCategory = "assignment"
	CategoryExtra      TaskCategory = "extra"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Chronotype string

const (
	ChronoMorning  Chronotype = "morning"
	ChronoBalanced Chronotype = "balanced"
	ChronoNight    Chronotype = "night"
)

type WorkStyle string

const (
	StyleDeep    WorkStyle = "deep"
	StyleMixed   WorkStyle = "mixed"
	StyleSprints WorkStyle = "sprints"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"pending": true, "completed": true, "dropped": true,
}

// ValidTaskCategories is the canonical set of accepted task category strings.
var ValidTaskCategories = map[string]bool{
	"exam": true, "assignment": true, "extra": true,
}

// ValidTaskPriorities is the canonical set of accepted task priority strings.
var ValidTaskPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// ValidChronotypes is the canonical set of accepted chronotype strings.
var ValidChronotypes = map[string]bool{
	"morning": true, "balanced": true, "night": true,
}

// ValidWorkStyles is the canonical set of accepted work style strings.
var ValidWorkStyles = map[string]bool{
	"deep": true, "mixed": true, "sprints": true,
}
