package model

// AccessToken is the object embedded into the bearer token claims.
type AccessToken struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SignupRequest struct {
	Email               string  `json:"email"`
	Password            string  `json:"password"`
	FullName            string  `json:"full_name"`
	Username            string  `json:"username"`
	WeeklyWorkHoursGoal float64 `json:"weekly_work_hours_goal"`
	NumberOfWorkDays    int     `json:"number_of_work_days"`
}

type SignupResponse struct {
	User User `json:"user"`
}

func (SignupResponse) Message() string {
	return "User signed up successfully!"
}

func (SignupResponse) StatusCode() int {
	return 201
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (LoginResponse) Message() string {
	return "Login successful!"
}

type MeRequest struct{}

type MeResponse struct {
	User User `json:"user"`
}

func (MeResponse) Message() string {
	return "User retrieved successfully"
}
