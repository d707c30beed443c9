package models

import "time"

// Member — запись участника внутри очереди. Отдельной таблицы нет:
// список участников хранится целиком в документе очереди, его порядок
// и есть порядок живой очереди (позиция = индекс + 1).
type Member struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	JoinedAt  time.Time `json:"joined_at"`
}

// Queue — очередь одного бизнеса.
//
// Version растёт ровно на единицу при каждой успешной мутации и служит
// условием compare-and-swap при записи: кто прочитал устаревшую версию,
// тот не запишет.
type Queue struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"business_id"`
	OwnerName         string    `json:"business_name"`
	Name              string    `json:"queue_name"`
	Description       string    `json:"description"`
	IsActive          bool      `json:"is_active"`
	WaitTimePerPerson int       `json:"estimated_wait_time"` // минут на человека
	MaxCapacity       int       `json:"max_capacity"`
	ServedCount       int       `json:"customers_served"`
	Members           []Member  `json:"users_in_queue"`
	Version           int64     `json:"version"`
	CreatedAt         time.Time `json:"created_at"`
}

// Clone возвращает глубокую копию очереди. Движок участников работает
// только над копиями, поэтому неудачная операция не трогает исходный снимок.
func (q *Queue) Clone() *Queue {
	cp := *q
	cp.Members = make([]Member, len(q.Members))
	copy(cp.Members, q.Members)
	return &cp
}

// HasMember сообщает, состоит ли пользователь в очереди.
func (q *Queue) HasMember(userID string) bool {
	for _, m := range q.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
