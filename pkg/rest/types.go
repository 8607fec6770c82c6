// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// Person Сгенерированная персона
type Person struct {
	// Gender Пол: male или female
	Gender string `json:"gender"`

	FirstName  string `json:"firstName"`
	Patronymic string `json:"patronymic"`
	Surname    string `json:"surname"`
}

// PatronymicRequest Запрос на образование отчества
type PatronymicRequest struct {
	// Name Имя отца
	Name string `json:"name" validate:"required"`

	// Gender Пол носителя отчества
	Gender string `json:"gender" validate:"required,oneof=male female"`
}

// PatronymicResponse Образованное отчество
type PatronymicResponse struct {
	Patronymic string `json:"patronymic"`

	// Ending Категория окончания имени
	Ending string `json:"ending"`

	// Warning Заполняется, когда для окончания нет правила и имя возвращено без изменений
	Warning string `json:"warning,omitempty"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
