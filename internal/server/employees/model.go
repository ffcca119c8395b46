package employees

import "time"

type Employee struct {
	ID          string
	FirstName   string
	LastName    string
	JobPosition string
	Birthdate   time.Time
	CreatedAt   time.Time
}
