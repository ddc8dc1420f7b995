package constants

import "strings"

// RouteAccess binds a path prefix to the roles allowed to reach it.
type RouteAccess struct {
	Prefix string
	Roles  []Role
}

// RouteAccessTable is the static route→role map. It is built once at
// process start and handed to the router by reference; nothing mutates it
// afterwards.
type RouteAccessTable []RouteAccess

func NewRouteAccessTable() *RouteAccessTable {
	t := RouteAccessTable{
		{Prefix: "/api/a", Roles: AdminOnly},
		{Prefix: "/api/t", Roles: StaffRoles},
		{Prefix: "/list/teachers", Roles: StaffRoles},
		{Prefix: "/list/students", Roles: AllRoles},
		{Prefix: "/list/subjects", Roles: AdminOnly},
		{Prefix: "/list/classes", Roles: StaffRoles},
		{Prefix: "/list/lessons", Roles: StaffRoles},
		{Prefix: "/list/exams", Roles: AllRoles},
		{Prefix: "/list/assignments", Roles: AllRoles},
		{Prefix: "/list/events", Roles: AllRoles},
		{Prefix: "/list/announcements", Roles: AllRoles},
	}
	return &t
}

// AllowedRoles returns the role set for the longest matching prefix,
// or nil when the path is not governed by the table.
func (t *RouteAccessTable) AllowedRoles(path string) []Role {
	var (
		best    int
		roles   []Role
		matched bool
	)
	for _, ra := range *t {
		if strings.HasPrefix(path, ra.Prefix) && len(ra.Prefix) > best {
			best = len(ra.Prefix)
			roles = ra.Roles
			matched = true
		}
	}
	if !matched {
		return nil
	}
	return roles
}
