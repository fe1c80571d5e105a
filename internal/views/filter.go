// Package views holds the pure list helpers the screens apply to collections
// after fetching: text search, sorting and grouping happen here, never on
// the server, and never inside fetch logic.
package views

import (
	"sort"
	"strings"

	"github.com/CodeDreamers777/assettone-console/internal/models"
)

// Search keeps the items whose searchable text contains query,
// case-insensitively. An empty query keeps everything. fields extracts the
// visible columns for one item.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return items
	}
	var out []T
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// SortBy stable-sorts items by the given key without mutating the input.
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// TenantFields are the columns the tenant screens search across.
func TenantFields(t models.Tenant) []string {
	return []string{t.FirstName, t.LastName, t.Email, t.PhoneNumber, t.PropertyName, string(t.Status)}
}

// PropertyFields are the columns the property screen searches across.
func PropertyFields(p models.Property) []string {
	return []string{p.Name, p.AddressLine1, p.City, p.State, p.PostalCode, p.Country}
}

// UnitFields are the columns the unit screens search across.
func UnitFields(u models.Unit) []string {
	return []string{u.UnitNumber, u.PropertyName, string(u.UnitType), u.CustomUnitType, u.Floor}
}

// MaintenanceFields are the columns the maintenance screen searches across.
func MaintenanceFields(r models.MaintenanceRequest) []string {
	return []string{r.Title, r.Description, string(r.Status), string(r.Priority)}
}

// GroupTenantsByProperty regroups a flat tenant list the way the tenants
// screen displays it. Tenants with no property fall under "Unassigned".
func GroupTenantsByProperty(tenants []models.Tenant) map[string][]models.Tenant {
	out := make(map[string][]models.Tenant)
	for _, tenant := range tenants {
		key := tenant.PropertyName
		if key == "" {
			key = "Unassigned"
		}
		out[key] = append(out[key], tenant)
	}
	return out
}

// OccupancyRate is the dashboard's occupied-percentage arithmetic, rounded
// to two decimals the way the server reports it.
func OccupancyRate(occupied, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(int(float64(occupied)/float64(total)*100*100+0.5)) / 100
}

// CollectionRate is the rent-collected percentage for the financial cards.
func CollectionRate(collected, expected float64) float64 {
	if expected <= 0 {
		return 0
	}
	return float64(int(collected/expected*100*100+0.5)) / 100
}
