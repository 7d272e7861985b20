package project

const (
	Name    = "calculator-mcp"
	Version = "0.1.0"
)
