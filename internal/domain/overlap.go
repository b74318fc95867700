package domain

import "github.com/m04kA/SMC-TimeSlotService/pkg/types"

// Overlaps проверяет конфликт кандидата [candidateStart, candidateEnd) с существующим бронированием.
//
// Правило намеренно несимметрично:
//
//	(existingStart <= candidateStart AND existingEnd > candidateStart) OR
//	(existingStart < candidateEnd AND existingEnd >= candidateEnd)
//
// Касание по границе не считается пересечением. Кандидат, который строго
// охватывает существующий интервал, этим правилом НЕ отклоняется.
//
// Примеры:
// - существующий 10:00-10:30, кандидат 10:30-11:00 → НЕТ пересечения
// - существующий 10:00-10:30, кандидат 10:15-10:45 → ЕСТЬ пересечение
// - существующий 10:30-11:00, кандидат 10:00-11:30 → НЕТ пересечения
func Overlaps(candidateStart, candidateEnd, existingStart, existingEnd types.TimeString) bool {
	coversStart := !existingStart.IsAfter(candidateStart) && existingEnd.IsAfter(candidateStart)
	coversEnd := existingStart.IsBefore(candidateEnd) && !existingEnd.IsBefore(candidateEnd)
	return coversStart || coversEnd
}

// FindOverlapping возвращает заблокированные слоты, пересекающиеся с кандидатом.
// Слот с id == excludeID пропускается (0 означает "не исключать").
func FindOverlapping(start, end types.TimeString, existing []*TimeSlot, excludeID int64) []*TimeSlot {
	overlapping := make([]*TimeSlot, 0)

	for _, slot := range existing {
		if !slot.IsBlocked {
			continue
		}
		if excludeID != 0 && slot.ID == excludeID {
			continue
		}
		if slot.Overlaps(start, end) {
			overlapping = append(overlapping, slot)
		}
	}

	return overlapping
}
