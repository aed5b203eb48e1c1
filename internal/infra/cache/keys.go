package cache

import "time"

// SlotsKeyPrefix общий префикс ключей со списками доступных слотов
// Настройки расписания влияют на все даты сразу, поэтому их обновление
// инвалидирует кэш по префиксу
const SlotsKeyPrefix = "available-slots:"

// SlotsKey ключ кэша для списка доступных слотов на дату
// Общий для чтения (get_available_slots) и инвалидации (create_appointment,
// смена статуса записи)
func SlotsKey(date time.Time) string {
	return SlotsKeyPrefix + date.Format("2006-01-02")
}
