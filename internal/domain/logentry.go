package domain

// LogType discriminates the activity-log union. Every variant carries
// a distinct field set; an unrecognized tag is a display-only gap,
// never a decode failure.
type LogType string

const (
	LogTypeDaily    LogType = "daily"
	LogTypeWater    LogType = "water"
	LogTypeExercise LogType = "exercise"
	LogTypeWeight   LogType = "weight"
)

// LogEntry is one activity-log record. Only the fields matching the
// entry's LogType are populated; the rest stay nil.
type LogEntry struct {
	ID      int     `json:"id"`
	UserID  int     `json:"user_id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	LogType LogType `json:"log_type"`
	Date    *string `json:"date"`

	// daily
	MealType *string  `json:"meal_type"`
	FoodName *string  `json:"food_name"`
	Quantity *float64 `json:"quantity"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`

	// water
	Amount *float64 `json:"amount"`

	// exercise
	ExerciseName   *string  `json:"exercise_name"`
	Duration       *float64 `json:"duration"`
	CaloriesBurned *float64 `json:"calories_burned"`

	// weight
	Weight *float64 `json:"weight"`

	CreatedAt *string `json:"created_at"`
}

// LogFilter narrows the log listing. TypeAll disables the type filter;
// blank date bounds are omitted from the query.
type LogFilter struct {
	Type     string
	DateFrom string
	DateTo   string
}

// LogTypeAll is the filter value that matches every log variant.
const LogTypeAll = "all"

// LogPage is one page of the logs listing.
type LogPage struct {
	Logs  []LogEntry `json:"logs"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}
