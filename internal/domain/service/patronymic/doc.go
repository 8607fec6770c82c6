// Package patronymic образует отчество от имени отца по правилам ЗАГС:
// классификация окончания, выбор суффикса, усечение последней буквы и
// словарь исключений.
//
// Правила покрывают только часть справочника. Окончания, для которых
// правила нет, не угадываются: имя возвращается без изменений вместе с
// UnclassifiedEndingWarning.
//
// Пакет не хранит состояния и безопасен для параллельного вызова.
package patronymic
