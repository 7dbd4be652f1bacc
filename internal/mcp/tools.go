package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LoginArgs are the arguments of the login tool.
type LoginArgs struct {
	Username string `json:"username" jsonschema:"Dashboard user name"`
	Password string `json:"password" jsonschema:"Dashboard password"`
}

// LoadArgs are the arguments of the load_tickets tool.
type LoadArgs struct {
	ContentBase64 string `json:"content_base64,omitempty" jsonschema:"Optional base64 GLPI export (semicolon CSV, optionally gzip). Without it the configured local file is read."`
	Reload        bool   `json:"reload,omitempty" jsonschema:"Discard the memoized load and read the source again"`
}

// FilterArgs are the arguments of the set_filters tool.
type FilterArgs struct {
	StartDate  string `json:"start_date,omitempty" jsonschema:"Start of the opening-date period (YYYY-MM-DD). Requires end_date."`
	EndDate    string `json:"end_date,omitempty" jsonschema:"End of the opening-date period (YYYY-MM-DD), inclusive"`
	Technician string `json:"technician,omitempty" jsonschema:"Exact technician or Todos"`
	Status     string `json:"status,omitempty" jsonschema:"Exact status or Todos"`
	Priority   string `json:"priority,omitempty" jsonschema:"Exact priority or Todas"`
	Category   string `json:"category,omitempty" jsonschema:"Exact clean category or Todas"`
}

// SelectArgs are the arguments of the select_chart_value tool.
type SelectArgs struct {
	Dimension string `json:"dimension" jsonschema:"One of technician, status, priority, category"`
	Value     string `json:"value" jsonschema:"The clicked chart value"`
}

// ViewArgs are the arguments of the view tools.
type ViewArgs struct {
	Name string `json:"name,omitempty" jsonschema:"View name from list_views"`
	Tab  string `json:"tab,omitempty" jsonschema:"Restrict to one tab (e.g. '1. KPIs')"`
}

// NoArgs is the input of tools without arguments.
type NoArgs struct{}

func (s *Server) registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "login",
		Description: "Authenticate against the dashboard credentials. Guidance: every other tool requires a successful login first.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LoginArgs) (*mcp.CallToolResult, any, error) {
		return call("login", func() (interface{}, error) { return s.handleLogin(args) })
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "logout",
		Description: "End the session and clear every filter.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return call("logout", s.handleLogout)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "load_tickets",
		Description: "Load a GLPI ticket export. Uploaded content takes precedence over the local file. Guidance: call 'filter_options' next to see the available filter values.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LoadArgs) (*mcp.CallToolResult, any, error) {
		return call("load_tickets", func() (interface{}, error) { return s.handleLoadTickets(args) })
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "filter_options",
		Description: "List the values available for each filter dropdown, the opening-date bounds and the current selection.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return call("filter_options", s.handleFilterOptions)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_filters",
		Description: "Replace the primary filters. Empty, 'Todos' or 'Todas' leave a dimension unconstrained. Tickets without an opening date never match a period.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args FilterArgs) (*mcp.CallToolResult, any, error) {
		return call("set_filters", func() (interface{}, error) { return s.handleSetFilters(args) })
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "select_chart_value",
		Description: "Narrow every view to one clicked chart value, on top of the primary filters.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SelectArgs) (*mcp.CallToolResult, any, error) {
		return call("select_chart_value", func() (interface{}, error) { return s.handleSelect(args) })
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "clear_interactive_filters",
		Description: "Remove every chart-click selection at once. Primary filters are kept.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return call("clear_interactive_filters", s.handleClearInteractive)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_views",
		Description: "List the named dashboard views grouped by tab.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ViewArgs) (*mcp.CallToolResult, any, error) {
		return call("list_views", func() (interface{}, error) { return s.handleListViews(args) })
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_view",
		Description: "Compute one view by name, or every view of a tab, over the filtered tickets. Guidance: values reported as null are undefined (e.g. a mean over no tickets), not zero.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ViewArgs) (*mcp.CallToolResult, any, error) {
		return call("get_view", func() (interface{}, error) { return s.handleGetView(args) })
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "describe_view",
		Description: "Return the JSON schema of a view's result.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ViewArgs) (*mcp.CallToolResult, any, error) {
		return call("describe_view", func() (interface{}, error) { return s.handleDescribeView(args) })
	})
}
