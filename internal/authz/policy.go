// Package authz реализует проверку владения ресурсом: сравнение email
// из токена с email владельца запрошенного ресурса.
//
// Маршруты отказывают по-разному: флаговые маршруты ролей отвечают
// 200 с отрицательным булевым значением, маршрут списка корзины —
// явным 403. Вместо разбросанных по обработчикам сравнений режим отказа
// каждого маршрута задан одной явной таблицей политик.
package authz

// Mode определяет режим отказа при несовпадении email.
type Mode int

const (
	// DenyWithFalse — тихий отказ: 200 и отрицательный булев ответ.
	DenyWithFalse Mode = iota
	// DenyWithError — явный отказ: 403 с телом Forbidden access.
	DenyWithError
)

// Route — имя маршрута, к которому применяется политика владения.
type Route string

const (
	// RouteRoleFlag — GET /users/{role}/{email}
	RouteRoleFlag Route = "users.roleflag"
	// RouteSelectionList — GET /selectedProduct
	RouteSelectionList Route = "selections.list"
)

// policy — таблица политик: режим отказа для каждого маршрута с проверкой
// владения. Маршруты, отсутствующие в таблице, владения не проверяют
// (аутентифицированный вызов разрешён для любого email).
var policy = map[Route]Mode{
	RouteRoleFlag:      DenyWithFalse,
	RouteSelectionList: DenyWithError,
}

// Decision — результат проверки владения ресурсом.
type Decision struct {
	Allowed bool // совпал ли email токена с email владельца
	Mode    Mode // режим отказа, действующий на маршруте
}

// Decide сравнивает email из токена с email владельца ресурса по политике
// маршрута. Сравнение строгое, без нормализации регистра и пробелов.
// Для маршрута без записи в таблице доступ разрешён безусловно.
func Decide(route Route, claimEmail, ownerEmail string) Decision {
	mode, restricted := policy[route]
	if !restricted {
		return Decision{Allowed: true, Mode: mode}
	}
	return Decision{
		Allowed: claimEmail == ownerEmail,
		Mode:    mode,
	}
}
