package booking

import (
	"github.com/m04kA/KaraBox-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Поддерживает *sql.DB, *sql.Tx и обёртку с метриками
type DBExecutor = dbmetrics.DBExecutor
