package audit

import "time"

type Entry struct {
	ID        string
	UserID    *string
	Username  *string
	Action    string
	Details   *string
	IPAddress *string
	CreatedAt time.Time
}
