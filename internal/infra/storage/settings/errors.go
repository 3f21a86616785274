package settings

import "errors"

var (
	// ErrSettingsNotFound настройки с указанным ключом не найдены
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")
	// ErrDecodeValue ошибка декодирования JSON значения настроек
	ErrDecodeValue = errors.New("settings.repository: failed to decode value")
	// ErrEncodeValue ошибка кодирования JSON значения настроек
	ErrEncodeValue = errors.New("settings.repository: failed to encode value")
)
