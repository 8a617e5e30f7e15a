package entity

type Category string

const (
	CategoryPersonal  Category = "personal"
	CategoryWork      Category = "work"
	CategoryShopping  Category = "shopping"
	CategoryIdeas     Category = "ideas"
	CategoryReminders Category = "reminders"
	CategoryOther     Category = "other"

	DefaultCategory = CategoryOther
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"

	DefaultPriority = PriorityMedium
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryPersonal,
	CategoryWork,
	CategoryShopping,
	CategoryIdeas,
	CategoryReminders,
	CategoryOther,
}

// Priorities lists every priority from least to most important.
var Priorities = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityUrgent,
}

var (
	categoryLabels = map[Category]string{
		CategoryPersonal:  "Personal",
		CategoryWork:      "Work",
		CategoryShopping:  "Shopping",
		CategoryIdeas:     "Ideas",
		CategoryReminders: "Reminders",
		CategoryOther:     "Other",
	}

	priorityLabels = map[Priority]string{
		PriorityLow:    "Low",
		PriorityMedium: "Medium",
		PriorityHigh:   "High",
		PriorityUrgent: "Urgent",
	}
)

func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	return categoryLabels[c]
}

// CSSClass returns the style class clients use to color a note by category.
// Unknown values fall back to the class of the default category.
func (c Category) CSSClass() string {
	if !c.IsValid() {
		return "category-" + string(DefaultCategory)
	}
	return "category-" + string(c)
}

func (p Priority) IsValid() bool {
	_, ok := priorityLabels[p]
	return ok
}

func (p Priority) Label() string {
	return priorityLabels[p]
}

// CSSClass returns the style class clients use to color a note by priority.
// Unknown values fall back to the class of the default priority.
func (p Priority) CSSClass() string {
	if !p.IsValid() {
		return "priority-" + string(DefaultPriority)
	}
	return "priority-" + string(p)
}

// Note is a single sticky note.
//
// Timestamps are Unix milliseconds (UTC) and are always assigned by the
// service layer, never by gorm: both auto time tags are disabled so a
// Save() cannot silently rewrite them.
type Note struct {
	ID         int      `gorm:"primaryKey"`
	Title      string   `gorm:"not null;size:200"`
	Content    string   `gorm:"not null"`
	Category   Category `gorm:"not null;size:50;default:other;index"`
	Priority   Priority `gorm:"not null;size:20;default:medium;index"`
	IsArchived bool     `gorm:"not null;default:false;index"`
	CreatedAt  int64    `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  int64    `gorm:"not null;autoUpdateTime:false;index"`
}

func (n *Note) String() string {
	return n.Title
}

// Clone returns a shallow copy, which is a full copy since Note has no
// reference fields.
func (n *Note) Clone() *Note {
	c := *n
	return &c
}
