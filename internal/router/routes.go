package router

// LoginPath is the only public route. Every other destination requires an
// authenticated session.
const LoginPath = "/login"

// Route describes one navigable destination.
type Route struct {
	// Path is the canonical navigation path.
	Path string

	// Name is the human readable view name.
	Name string

	// Public marks routes reachable without a session.
	Public bool
}

// Table is the full navigation surface of the client.
var Table = []Route{
	{Path: LoginPath, Name: "Login", Public: true},
	{Path: "/dashboard", Name: "Dashboard"},
	{Path: "/projects", Name: "Projects"},
	{Path: "/apis", Name: "APIs"},
	{Path: "/testcases", Name: "TestCases"},
	{Path: "/testsuites", Name: "TestSuites"},
	{Path: "/executions", Name: "Executions"},
	{Path: "/scheduler", Name: "Scheduler"},
	{Path: "/environments", Name: "Environments"},
	{Path: "/global-tokens", Name: "GlobalTokens"},
	{Path: "/performance/tests", Name: "PerformanceTests"},
	{Path: "/performance/reports", Name: "PerformanceReports"},
	{Path: "/system/users", Name: "UserManagement"},
	{Path: "/system/notifications", Name: "NotificationSettings"},
}

// Lookup finds a route by path.
func Lookup(path string) (Route, bool) {
	for _, r := range Table {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// isPublic classifies a destination. Unknown paths are private so a typo in a
// path can never widen access.
func isPublic(path string) bool {
	r, ok := Lookup(path)
	return ok && r.Public
}
