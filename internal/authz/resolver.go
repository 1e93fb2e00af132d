package authz

import "strings"

// Classification - к какому виду относится путь.
type Classification string

const (
	ClassRestricted   Classification = "restricted"
	ClassPublic       Classification = "public"
	ClassUnclassified Classification = "unclassified"
)

// Resolution - результат поиска пути в таблице.
type Resolution struct {
	Path           string
	Pattern        string
	Requirement    Requirement
	Classification Classification
}

// Resolve ищет путь в таблице: сначала точное совпадение, затем шаблоны
// с тем же числом сегментов (сегмент на ":" совпадает с любым значением).
// Первая подходящая строка в порядке таблицы побеждает.
func (t *Table) Resolve(path string) Resolution {
	if idx, ok := t.exact[path]; ok {
		return resolved(path, t.entries[idx])
	}

	pathParts := strings.Split(path, "/")
	for _, e := range t.entries {
		if matchParts(strings.Split(e.Pattern, "/"), pathParts) {
			return resolved(path, e)
		}
	}
	return Resolution{Path: path, Classification: ClassUnclassified}
}

// RequiredPermissionsForRoute - список прав для пути. Пустой список значит
// "права не нужны" (в том числе для путей, которых нет в таблице).
func (t *Table) RequiredPermissionsForRoute(path string) []string {
	return t.Resolve(path).Requirement.Permissions
}

// RequiredPermissionsForRoute по таблице консоли.
func RequiredPermissionsForRoute(path string) []string {
	return DefaultTable.RequiredPermissionsForRoute(path)
}

// MatchPattern - подходит ли конкретный путь под шаблон вида /a/:id.
func MatchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}
	return matchParts(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

// Params достаёт значения сегментов-шаблонов (":id" -> "42").
func Params(pattern, path string) map[string]string {
	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if !matchParts(patternParts, pathParts) {
		return nil
	}
	params := make(map[string]string)
	for i, part := range patternParts {
		if strings.HasPrefix(part, ":") {
			params[strings.TrimPrefix(part, ":")] = pathParts[i]
		}
	}
	return params
}

func matchParts(patternParts, pathParts []string) bool {
	if len(patternParts) != len(pathParts) {
		return false
	}
	for i, part := range patternParts {
		if strings.HasPrefix(part, ":") {
			continue
		}
		if part != pathParts[i] {
			return false
		}
	}
	return true
}

func resolved(path string, e Entry) Resolution {
	req := e.Requirement.clone()
	class := ClassRestricted
	if req.Public || len(req.Permissions) == 0 {
		class = ClassPublic
	}
	return Resolution{Path: path, Pattern: e.Pattern, Requirement: req, Classification: class}
}
