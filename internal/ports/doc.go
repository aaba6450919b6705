// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by the CLI.
// Client ports are implemented by the Power BI adapter and called by the
// application layer and the CLI.
package ports
