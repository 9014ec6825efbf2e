// Package ports holds the interfaces that connect the layers of the front
// end. Handlers call the service ports (ResourceService, DashboardService);
// the app layer implements them and reaches the resource API through the
// client ports, which the acl adapter implements.
package ports
