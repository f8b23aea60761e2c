// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of storage, the planner service, handlers,
// routers, and HTTP server instances, and hosts the one-shot batch conversion,
// keeping the main package focused on CLI parsing and orchestration.
package application
