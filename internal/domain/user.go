package domain

// User is an account record as the admin API reports it. Optional
// profile fields are pointers so an absent value is distinguishable
// from a zero one; renderers substitute a placeholder for nil.
type User struct {
	ID            int      `json:"id"`
	Name          *string  `json:"name"`
	Email         string   `json:"email"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	TargetWeight  *float64 `json:"target_weight"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`
	CreatedAt     string   `json:"created_at"`
}

// UserUpdate is the partial-update payload for PUT /admin/users/:id.
// Nil fields are transmitted as explicit nulls so the server clears
// values the operator blanked out.
type UserUpdate struct {
	Name          *string  `json:"name"`
	Email         string   `json:"email"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	TargetWeight  *float64 `json:"target_weight"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`
}

// Validate applies the pre-transmission checks. A failing update must
// never be sent to the network.
func (u UserUpdate) Validate() error {
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	return nil
}

// UserPage is one page of the users listing plus the server-reported
// pagination envelope.
type UserPage struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
