package domain

// SportType тип спорта, для которого предназначена площадка
type SportType string

const (
	SportSoccer SportType = "soccer"
	SportPadel  SportType = "padel"
)

// IsValid проверяет, что тип спорта поддерживается
func (s SportType) IsValid() bool {
	return s == SportSoccer || s == SportPadel
}

// City город, в котором расположены комплексы
type City struct {
	ID   int64
	Name string
}

// Complex спортивный комплекс с несколькими площадками
type Complex struct {
	ID     int64
	CityID int64
	Name   string
	// Контактные данные комплекса
	Address string
	Phone   *string
	Email   *string
}

// Court площадка комплекса
// Справочные данные: во время бронирования не изменяются
type Court struct {
	ID        int64
	ComplexID int64
	Name      string
	Sport     SportType
	// Цена за час аренды (в минимальных денежных единицах)
	HourlyPrice int64
	Active      bool
}

// IsBookable возвращает true, если площадку можно бронировать
func (c *Court) IsBookable() bool {
	return c.Active
}

// PriceFor возвращает стоимость аренды площадки на указанное количество минут
func (c *Court) PriceFor(durationMinutes int) int64 {
	return c.HourlyPrice * int64(durationMinutes) / 60
}
