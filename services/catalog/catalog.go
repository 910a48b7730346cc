package catalog

import "glowstudio/models"

// Catalog provides read-only lookups over the studio reference data:
// categories, services and staff. It has no side effects and is safe to call
// freely and repeatedly from any goroutine.
type Catalog struct {
	categories []models.Category
	services   []models.Service
	staff      []models.StaffMember
}

func New(categories []models.Category, services []models.Service, staff []models.StaffMember) *Catalog {
	return &Catalog{categories: categories, services: services, staff: staff}
}

// Categories returns the browsable categories, without the "all" pseudo-category.
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// ServiceByID looks a service up by id.
func (c *Catalog) ServiceByID(id string) (models.Service, bool) {
	for _, svc := range c.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

// ServicesByCategory returns the services of one category in catalog order.
// The "all" pseudo-category returns every service; an unknown category
// returns an empty slice, not an error.
func (c *Catalog) ServicesByCategory(categoryID string) []models.Service {
	if categoryID == models.CategoryAll {
		out := make([]models.Service, len(c.services))
		copy(out, c.services)
		return out
	}
	out := []models.Service{}
	for _, svc := range c.services {
		if svc.Category == categoryID {
			out = append(out, svc)
		}
	}
	return out
}

// StaffByID looks a staff member up by id.
func (c *Catalog) StaffByID(id string) (models.StaffMember, bool) {
	for _, st := range c.staff {
		if st.ID == id {
			return st, true
		}
	}
	return models.StaffMember{}, false
}

// StaffForService returns every staff member whose specializations include
// the service's category. An unknown service yields an empty slice.
func (c *Catalog) StaffForService(serviceID string) []models.StaffMember {
	out := []models.StaffMember{}
	service, ok := c.ServiceByID(serviceID)
	if !ok {
		return out
	}
	for _, st := range c.staff {
		for _, spec := range st.Specialization {
			if spec == service.Category {
				out = append(out, st)
				break
			}
		}
	}
	return out
}
