package api

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/terraincognita07/brygady/internal/models"
)

func buildTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"t": func(messages map[string]string, key string) string {
			return translateMessage(messages, key)
		},
		"roleLabel": func(messages map[string]string, role models.Role) string {
			return translateMessage(messages, roleTranslationKey(role))
		},
		"isActiveRoute": isActiveTemplateRoute,
		"dict":          templateDict,
	}
}

func isActiveTemplateRoute(currentPath string, route string) bool {
	path := strings.TrimSpace(currentPath)
	if path == "" {
		return route == "/"
	}
	if route == "/" {
		return path == "/" || strings.HasPrefix(path, "/?")
	}
	trimmed := strings.TrimSuffix(route, "/")
	return path == route || path == trimmed || strings.HasPrefix(path, trimmed+"?") || strings.HasPrefix(path, trimmed+"/")
}

func templateDict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict requires key-value pairs")
	}
	result := make(map[string]any, len(values)/2)
	for index := 0; index < len(values); index += 2 {
		key, ok := values[index].(string)
		if !ok {
			return nil, fmt.Errorf("dict key at index %d is not a string", index)
		}
		result[key] = values[index+1]
	}
	return result, nil
}

func roleTranslationKey(role models.Role) string {
	switch role {
	case models.RoleSzef:
		return "role.szef"
	case models.RoleBrygadzista:
		return "role.brygadzista"
	default:
		return string(role)
	}
}
