// Package engine содержит чистую логику членства в очереди.
//
// Все операции принимают снимок очереди, клонируют его и возвращают либо
// новый снимок с Version+1, либо типизированную ошибку. Сами функции ничего
// не сохраняют: фиксация результата в хранилище — забота вызывающего
// (internal/admission).
package engine

import (
	"time"

	"github.com/pkg/errors"

	"smartqueue/internal/models"
)

// Типизированные отказы движка. Обработчики сопоставляют их с HTTP-кодами,
// поэтому новые ошибки добавляются только сюда.
var (
	ErrQueueInactive          = errors.New("очередь не активна")
	ErrAlreadyMember          = errors.New("пользователь уже состоит в очереди")
	ErrQueueFull              = errors.New("очередь заполнена")
	ErrNotAMember             = errors.New("пользователь не состоит в очереди")
	ErrForbidden              = errors.New("нет прав на операцию с очередью")
	ErrCapacityBelowOccupancy = errors.New("лимит меньше текущего числа участников")
	ErrValidation             = errors.New("некорректные параметры очереди")
)

// Join добавляет пользователя в конец очереди.
//
// Проверки идут строго в этом порядке: активность, повторное вступление,
// лимит. Время вступления ставит движок, а не клиент — иначе порядок
// очереди можно было бы подделать.
func Join(snapshot *models.Queue, userID, userName, userEmail string) (*models.Queue, error) {
	if !snapshot.IsActive {
		return nil, ErrQueueInactive
	}
	if snapshot.HasMember(userID) {
		return nil, ErrAlreadyMember
	}
	if len(snapshot.Members) >= snapshot.MaxCapacity {
		return nil, ErrQueueFull
	}

	next := snapshot.Clone()
	next.Members = append(next.Members, models.Member{
		UserID:    userID,
		UserName:  userName,
		UserEmail: userEmail,
		JoinedAt:  time.Now(),
	})
	next.Version++
	return next, nil
}

// Leave убирает пользователя из очереди по его собственной инициативе.
// Счётчик обслуженных не меняется.
func Leave(snapshot *models.Queue, userID string) (*models.Queue, error) {
	next, err := remove(snapshot, userID)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// RemoveByOwner убирает пользователя по решению владельца очереди и
// засчитывает его как обслуженного.
func RemoveByOwner(snapshot *models.Queue, ownerID, userID string) (*models.Queue, error) {
	if snapshot.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	next, err := remove(snapshot, userID)
	if err != nil {
		return nil, err
	}
	next.ServedCount++
	return next, nil
}

// remove вырезает участника, сохраняя порядок остальных.
func remove(snapshot *models.Queue, userID string) (*models.Queue, error) {
	idx := -1
	for i, m := range snapshot.Members {
		if m.UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotAMember
	}

	next := snapshot.Clone()
	next.Members = append(next.Members[:idx], next.Members[idx+1:]...)
	next.Version++
	return next, nil
}

// Position возвращает позицию пользователя (с единицы). Позиция нигде не
// хранится, а каждый раз выводится из порядка Members — второго источника
// правды нет.
func Position(snapshot *models.Queue, userID string) (int, bool) {
	for i, m := range snapshot.Members {
		if m.UserID == userID {
			return i + 1, true
		}
	}
	return -1, false
}

// EstimatedWait возвращает ожидание в минутах для участника:
// (позиция - 1) * минут на человека.
func EstimatedWait(snapshot *models.Queue, userID string) (int, bool) {
	pos, ok := Position(snapshot, userID)
	if !ok {
		return 0, false
	}
	return (pos - 1) * snapshot.WaitTimePerPerson, true
}

// TotalWait — суммарное ожидание для вновь пришедшего: вся очередь целиком.
func TotalWait(snapshot *models.Queue) int {
	return len(snapshot.Members) * snapshot.WaitTimePerPerson
}

// Patch — изменяемые владельцем настройки. nil-поле означает «не трогать».
type Patch struct {
	Name              *string
	Description       *string
	IsActive          *bool
	WaitTimePerPerson *int
	MaxCapacity       *int
}

// UpdateSettings применяет изменения владельца. Снижение лимита ниже
// текущего числа участников запрещено: уже стоящих в очереди выкидывать
// нельзя.
func UpdateSettings(snapshot *models.Queue, ownerID string, patch Patch) (*models.Queue, error) {
	if snapshot.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, errors.Wrap(ErrValidation, "пустое название очереди")
	}
	if patch.WaitTimePerPerson != nil && *patch.WaitTimePerPerson <= 0 {
		return nil, errors.Wrap(ErrValidation, "время ожидания должно быть положительным")
	}
	if patch.MaxCapacity != nil {
		if *patch.MaxCapacity <= 0 {
			return nil, errors.Wrap(ErrValidation, "лимит должен быть положительным")
		}
		if *patch.MaxCapacity < len(snapshot.Members) {
			return nil, ErrCapacityBelowOccupancy
		}
	}

	next := snapshot.Clone()
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.IsActive != nil {
		next.IsActive = *patch.IsActive
	}
	if patch.WaitTimePerPerson != nil {
		next.WaitTimePerPerson = *patch.WaitTimePerPerson
	}
	if patch.MaxCapacity != nil {
		next.MaxCapacity = *patch.MaxCapacity
	}
	next.Version++
	return next, nil
}

// ValidateNew проверяет параметры создаваемой очереди.
func ValidateNew(q *models.Queue) error {
	if q.Name == "" {
		return errors.Wrap(ErrValidation, "пустое название очереди")
	}
	if q.WaitTimePerPerson <= 0 {
		return errors.Wrap(ErrValidation, "время ожидания должно быть положительным")
	}
	if q.MaxCapacity <= 0 {
		return errors.Wrap(ErrValidation, "лимит должен быть положительным")
	}
	return nil
}
