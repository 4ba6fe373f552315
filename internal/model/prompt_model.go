package model

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type Prompt struct {
	ID         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Category   string `gorm:"type:text" json:"category"`
	Title      string `gorm:"type:text" json:"title"`
	Content    string `gorm:"type:text" json:"content"`
	Difficulty string `gorm:"type:varchar(50)" json:"difficulty"` // beginner, intermediate, advanced
	TimeLimit  int    `json:"time_limit"`                         // in minutes
}

type InsertPrompt struct {
	Category   string `json:"category"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Difficulty string `json:"difficulty"`
	TimeLimit  int    `json:"time_limit"`
}

func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// SeedPrompts is the fixed catalog loaded into an empty store on startup.
func SeedPrompts() []InsertPrompt {
	return []InsertPrompt{
		{
			Category:   "Technology & Society",
			Title:      "Social Media Impact",
			Content:    "Some people think that modern technology is making people less socially active, while others believe it helps people to be more connected. Discuss both views and give your own opinion. Write at least 250 words.",
			Difficulty: DifficultyIntermediate,
			TimeLimit:  40,
		},
		{
			Category:   "Environment",
			Title:      "Climate Change Solutions",
			Content:    "Some people believe that climate change is the most urgent issue facing humanity today, while others argue that economic development should be prioritized. Discuss both views and give your opinion.",
			Difficulty: DifficultyAdvanced,
			TimeLimit:  40,
		},
		{
			Category:   "Education",
			Title:      "Online vs Traditional Learning",
			Content:    "Online learning has become increasingly popular. Compare the advantages and disadvantages of online learning with traditional classroom education. Which do you think is more effective and why?",
			Difficulty: DifficultyBeginner,
			TimeLimit:  40,
		},
		{
			Category:   "Work & Career",
			Title:      "Work-Life Balance",
			Content:    "In many countries, people are working longer hours and have less time for personal activities. What are the causes of this problem? What solutions can you suggest?",
			Difficulty: DifficultyIntermediate,
			TimeLimit:  40,
		},
		{
			Category:   "Health & Lifestyle",
			Title:      "Public Health Measures",
			Content:    "Some people believe that governments should impose strict regulations on unhealthy foods to improve public health, while others think individuals should have the freedom to choose what they eat. Discuss both views and give your opinion.",
			Difficulty: DifficultyAdvanced,
			TimeLimit:  40,
		},
	}
}
