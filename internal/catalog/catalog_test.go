package catalog

import "testing"

func TestServicesReturnsCopy(t *testing.T) {
	a := Services()
	a[0].Name = "mutated"

	b := Services()
	if b[0].Name == "mutated" {
		t.Error("Services() exposes shared backing storage; callers can corrupt the catalog")
	}
}

func TestServicesUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Services() {
		if s.ID == "" {
			t.Errorf("service %q has empty id", s.Name)
		}
		if seen[s.ID] {
			t.Errorf("duplicate service id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Name == "" {
			t.Errorf("service %s has empty name", s.ID)
		}
	}
}
