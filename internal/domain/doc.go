// Package domain contains shared domain types used across the Power BI record
// sub-packages. Records live in sub-packages (domain/report, domain/dataset,
// domain/group, domain/activity, domain/embed). This root package holds
// sentinel errors, the HTTPError kind and the map decoder every record
// factory uses.
package domain
