package catalog

import (
	"testing"

	"glowstudio/models"
)

func TestServiceByID(t *testing.T) {
	c := Default()

	svc, ok := c.ServiceByID("haircut-women")
	if !ok {
		t.Fatal("expected haircut-women to exist")
	}
	if svc.Name != "Women's haircut" || svc.Price != 1500 || svc.Duration != 60 {
		t.Fatalf("unexpected service data: %+v", svc)
	}

	if _, ok := c.ServiceByID("non-existent"); ok {
		t.Fatal("expected lookup miss for unknown service id")
	}
}

func TestServicesByCategory(t *testing.T) {
	c := Default()

	all := c.ServicesByCategory(models.CategoryAll)
	if len(all) != len(c.ServicesByCategory("hair"))+len(c.ServicesByCategory("nails"))+len(c.ServicesByCategory("makeup")) {
		t.Fatalf("the all pseudo-category should cover every service, got %d", len(all))
	}

	hair := c.ServicesByCategory("hair")
	if len(hair) == 0 {
		t.Fatal("expected hair services")
	}
	for _, svc := range hair {
		if svc.Category != "hair" {
			t.Fatalf("service %s leaked into hair category", svc.ID)
		}
	}

	if got := c.ServicesByCategory("non-existent"); len(got) != 0 {
		t.Fatalf("unknown category should be empty, got %d services", len(got))
	}
}

func TestStaffByID(t *testing.T) {
	c := Default()

	staff, ok := c.StaffByID("staff-1")
	if !ok {
		t.Fatal("expected staff-1 to exist")
	}
	if staff.Name != "Anna Ivanova" {
		t.Fatalf("unexpected staff name %q", staff.Name)
	}

	if _, ok := c.StaffByID("non-existent"); ok {
		t.Fatal("expected lookup miss for unknown staff id")
	}
}

func TestStaffForService(t *testing.T) {
	c := Default()

	matched := c.StaffForService("haircut-women")
	if len(matched) == 0 {
		t.Fatal("expected at least one hair specialist")
	}
	for _, staff := range matched {
		found := false
		for _, spec := range staff.Specialization {
			if spec == "hair" {
				found = true
			}
		}
		if !found {
			t.Fatalf("staff %s does not specialize in hair", staff.ID)
		}
	}

	if got := c.StaffForService("non-existent"); len(got) != 0 {
		t.Fatalf("unknown service should match no staff, got %d", len(got))
	}
}

func TestSeedDataInvariants(t *testing.T) {
	c := Default()

	categoryIDs := map[string]bool{}
	for _, cat := range c.Categories() {
		if categoryIDs[cat.ID] {
			t.Fatalf("duplicate category id %s", cat.ID)
		}
		categoryIDs[cat.ID] = true
	}

	serviceIDs := map[string]bool{}
	for _, svc := range c.ServicesByCategory(models.CategoryAll) {
		if serviceIDs[svc.ID] {
			t.Fatalf("duplicate service id %s", svc.ID)
		}
		serviceIDs[svc.ID] = true
		if svc.Price <= 0 || svc.Duration <= 0 {
			t.Fatalf("service %s has non-positive price or duration", svc.ID)
		}
		if !categoryIDs[svc.Category] {
			t.Fatalf("service %s references unknown category %s", svc.ID, svc.Category)
		}
	}

	for _, staff := range seedStaff() {
		if len(staff.Specialization) == 0 {
			t.Fatalf("staff %s has no specialization", staff.ID)
		}
		if staff.Rating < 1 || staff.Rating > 5 {
			t.Fatalf("staff %s rating %v out of bounds", staff.ID, staff.Rating)
		}
		for _, spec := range staff.Specialization {
			if !categoryIDs[spec] {
				t.Fatalf("staff %s references unknown category %s", staff.ID, spec)
			}
		}
	}
}
