// Package services implements the driving ports with the core
// assembly logic. Services depend only on domain types and driven
// ports, never on concrete adapters.
package services
